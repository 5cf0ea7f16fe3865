package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"sheetmapper/pkg/sheets"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// sheetParam is repeated once per sheet, as "Name" or "Name:<headerRowIndex>".
const sheetParam = "sheet"

type handler struct {
	fetcher sheets.Fetcher
}

type errorResponse struct {
	Error      string `json:"error"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
	URL        string `json:"url,omitempty"`
}

type titlesResponse struct {
	ID     string   `json:"id"`
	Titles []string `json:"titles"`
}

func getIndex(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getRecords(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	options := sheets.ParseSheetOptions(r.URL.Query()[sheetParam])

	logger := log.WithFields(log.Fields{
		"document": documentID,
		"sheets":   len(options),
	})
	logger.Debug("Mapping spreadsheet")

	mapped, err := sheets.MapSheetsToRecords(r.Context(), h.fetcher, documentID, options)
	if err != nil {
		logger.Errorf("Failed to map spreadsheet: %v", err)
		sendError(w, err)
		return
	}

	logger.Infof("Mapped %d sheets", len(mapped))
	sendJSON(w, http.StatusOK, mapped)
}

func (h *handler) getTitles(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	titles, err := h.fetcher.FetchSheetTitles(r.Context(), documentID)
	if err != nil {
		log.WithField("document", documentID).Errorf("Failed to fetch sheet titles: %v", err)
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, titlesResponse{ID: documentID, Titles: titles})
}

// sendError reports upstream Sheets failures as 502 and everything else as 500.
func sendError(w http.ResponseWriter, err error) {
	var transportErr *sheets.TransportError
	if errors.As(err, &transportErr) {
		sendJSON(w, http.StatusBadGateway, errorResponse{
			Error:      transportErr.Error(),
			Status:     transportErr.Status,
			StatusText: transportErr.StatusText,
			URL:        transportErr.URL,
		})
		return
	}
	sendJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Failed to encode response: %v", err)
		sendResponse(w, http.StatusInternalServerError, []byte(`{"error":"failed to encode response"}`))
		return
	}
	sendResponse(w, status, body)
}

func sendResponse(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
