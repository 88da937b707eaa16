package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	router.Get("/", h.live)
	router.Get("/test_auth", h.testAuth)

	router.Route("/webflow", func(r chi.Router) {
		r.Post("/", h.createItem)

		r.Route("/pages/{pageID}", func(r chi.Router) {
			r.Get("/meta", h.pageMetadata)
			r.Put("/meta", h.updatePageMetadata)
			r.Get("/content", h.pageContent)
			r.Post("/content", h.updatePageContent)
			r.Get("/custom_code", h.pageCustomCode)
			r.Put("/custom_code", h.upsertPageCustomCode)
		})

		r.Get("/collections/{collectionID}/items/live", h.liveItems)
		r.Patch("/collections/{collectionID}/items/live", h.updateLiveItems)
	})

	router.Get("/cms/collection/items", h.collectionItems)
	router.Get("/airtable/ping", h.recordsPing)

	// catch-all relays accept every method
	router.Handle("/foxycart/*", http.HandlerFunc(h.checkoutForward))
	router.Handle("/proxy/*", http.HandlerFunc(h.relayForward))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
