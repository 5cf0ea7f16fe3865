package api

import (
	"net/http"

	"sheetmapper/pkg/sheets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// GetRouter initialises a new http router and applies all routes
func GetRouter(fetcher sheets.Fetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	return applyRoutes(r, &handler{fetcher: fetcher})
}

func applyRoutes(r chi.Router, h *handler) chi.Router {
	r.Route("/", func(r chi.Router) {
		r.Get("/", getIndex)
		r.Route("/spreadsheets/{documentID}", func(r chi.Router) {
			r.Get("/", h.getRecords)
			r.Get("/titles", h.getTitles)
		})
	})

	return r
}
