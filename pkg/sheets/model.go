package sheets

import (
	"bytes"
	"context"
	"encoding/json"
)

// Fetcher is the transport boundary the mapper pulls raw data through.
type Fetcher interface {
	FetchSheetTitles(ctx context.Context, documentID string) ([]string, error)
	FetchRawGrids(ctx context.Context, documentID string, ranges []string) ([]RawSheetGrid, error)
}

// RawSheetGrid is one value range as returned by a batch get.
type RawSheetGrid struct {
	Range string
	Rows  [][]string
}

// SheetOption overrides how a single sheet is read. HeaderRowIndex is the
// zero-based row holding the field names.
type SheetOption struct {
	ID             string `json:"id"`
	HeaderRowIndex int    `json:"headerRowIndex,omitempty"`
}

type MappedSheet struct {
	ID   string   `json:"id"`
	Data []Record `json:"data"`
}

type Field struct {
	Name  string
	Value string
}

// Record is a decoded row. Fields keep the column order of the header row.
type Record struct {
	fields []Field
}

func newRecord(size int) Record {
	return Record{fields: make([]Field, 0, size)}
}

// set assigns value to name, keeping the position of an existing field.
func (r *Record) set(name, value string) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

func (r Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the record's fields in header order.
func (r Record) Fields() []Field {
	fields := make([]Field, len(r.fields))
	copy(fields, r.fields)
	return fields
}

func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
