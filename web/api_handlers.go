package web

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/zjm/league_manager/controller"
)

// The /api/v1 handlers return the same plain data structures the HTML pages
// are built from, for consumers that do their own rendering.

func apiStandingsHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		standings, err := ctrl.GetStandings(r.Context(), seasonID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, standings)
	}
}

func apiConferenceStandingsHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		grouped, err := ctrl.GetConferenceStandings(r.Context(), seasonID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, grouped)
	}
}

func apiMatchesHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		matches, err := ctrl.ListMatches(r.Context(), seasonID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, matches)
	}
}

func apiBidsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bids, err := ctrl.ListActiveBids(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, bids)
	}
}
