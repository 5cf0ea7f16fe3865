package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSheetOption(t *testing.T) {
	tests := []struct {
		in   string
		want SheetOption
	}{
		{"Sheet1", SheetOption{ID: "Sheet1"}},
		{"Sheet1:2", SheetOption{ID: "Sheet1", HeaderRowIndex: 2}},
		{"My Sheet:0", SheetOption{ID: "My Sheet"}},
		{"Time 10:30", SheetOption{ID: "Time 10", HeaderRowIndex: 30}},
		{"Notes:abc", SheetOption{ID: "Notes:abc"}},
		{"Neg:-1", SheetOption{ID: "Neg:-1"}},
		{":3", SheetOption{ID: ":3"}},
		{"Trailing:", SheetOption{ID: "Trailing:"}},
	}
	for _, tt := range tests {
		got := ParseSheetOption(tt.in)
		if got != tt.want {
			t.Errorf("ParseSheetOption(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseSheetOptionsSkipsBlank(t *testing.T) {
	got := ParseSheetOptions([]string{"A", " ", "", "B:1"})
	assert.Equal(t, []SheetOption{{ID: "A"}, {ID: "B", HeaderRowIndex: 1}}, got)
}

func TestDefaultSheetOptions(t *testing.T) {
	got := DefaultSheetOptions([]string{"Sheet1", "Sheet2"})
	assert.Equal(t, []SheetOption{{ID: "Sheet1"}, {ID: "Sheet2"}}, got)
	assert.Empty(t, DefaultSheetOptions(nil))
}
