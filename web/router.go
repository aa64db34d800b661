package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
	"github.com/zjm/league_manager/controller"
	"github.com/zjm/league_manager/model"
)

func getRouter(ctrl controller.C, render *render.Render, cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", standingsHandler(ctrl, render, cfg))
	r.Get("/standings", standingsHandler(ctrl, render, cfg))

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", matchesHandler(ctrl, render, cfg))
		r.Get("/{matchID:\\d+}", getMatchHandler(ctrl, render))
	})

	r.Get("/players/{playerID}", getPlayerHandler(ctrl, render))

	r.Route("/bids", func(r chi.Router) {
		r.Get("/", bidsHandler(ctrl, render))
		r.Post("/", placeBidHandler(ctrl, render))
		r.Post("/{bidID}/cancel", cancelBidHandler(ctrl, render))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/standings", apiStandingsHandler(ctrl, render, cfg))
		r.Get("/standings/conferences", apiConferenceStandingsHandler(ctrl, render, cfg))
		r.Get("/matches", apiMatchesHandler(ctrl, render, cfg))
		r.Get("/bids", apiBidsHandler(ctrl, render))
	})

	if cfg.AdminCreds != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth("league", cfg.AdminCreds))
			r.Use(requireRole(ctrl, model.RoleAdmin))
			r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

			r.Post("/matches/{matchID:\\d+}/result", recordResultHandler(ctrl, render))
			r.Post("/schedule/import", importScheduleHandler(ctrl, render, cfg))
			r.Post("/settlement", runSettlementHandler(ctrl, render))
		})
	}

	return r
}

// requireRole checks the authenticated username against the users table and
// rejects anyone whose role does not grant the required one. It runs after
// basic auth, so an empty username never gets this far.
func requireRole(ctrl controller.C, required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, _, ok := r.BasicAuth()
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			u, err := ctrl.GetUser(r.Context(), username)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			if !u.Role.HasRole(required) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
