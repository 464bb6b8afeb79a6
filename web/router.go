package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/xSunnyyy/VetoCity/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// A cold cache means walking the whole season chain, which can take a
	// while against the real API. The timeout cancels every in-flight
	// upstream fetch through the request context.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/awards", awardsHandler(ctrl, render))
		r.Get("/records", recordsHandler(ctrl, render))
		r.Get("/managers", managersHandler(ctrl, render))
		r.Get("/rivalry", rivalryHandler(ctrl, render))
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/matchups", matchupsHandler(ctrl, render))
		r.Get("/draftboard", draftBoardHandler(ctrl, render))
	})

	return r
}
