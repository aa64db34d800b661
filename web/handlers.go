package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
	"github.com/zjm/league_manager/controller"
	"github.com/zjm/league_manager/db"
)

// seasonFromQuery reads the optional season query parameter, falling back to
// the deployment's current season.
func seasonFromQuery(r *http.Request, cfg Config) (int32, error) {
	s := r.URL.Query().Get("season")
	if s == "" {
		return cfg.DefaultSeasonID, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("error parsing season: %w", err)
	}
	return int32(id), nil
}

func standingsHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		grouped, err := ctrl.GetConferenceStandings(r.Context(), seasonID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"season":      seasonID,
			"conferences": grouped,
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func matchesHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		matches, err := ctrl.ListMatches(r.Context(), seasonID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"season":  seasonID,
			"matches": matches,
		}
		render.HTML(w, http.StatusOK, "matches", data)
	}
}

func getMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		id, err := strconv.Atoi(matchID)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing match id: %v", err))
			return
		}

		m, err := ctrl.GetMatch(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "match not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "match", m)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		bids, err := ctrl.ListBidsForPlayer(r.Context(), playerID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"player": p,
			"bids":   bids,
		}
		render.HTML(w, http.StatusOK, "player", data)
	}
}

func bidsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bids, err := ctrl.ListActiveBids(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "bids", bids)
	}
}

func placeBidHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		playerID := r.PostForm.Get("player_id")
		teamID, err := strconv.Atoi(r.PostForm.Get("team_id"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing team id: %v", err))
			return
		}
		amount, err := strconv.ParseInt(r.PostForm.Get("amount"), 10, 64)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing amount: %v", err))
			return
		}

		if _, err := ctrl.PlaceBid(r.Context(), playerID, int32(teamID), amount); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/players/%s", playerID), http.StatusSeeOther)
	}
}

func cancelBidHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bidID := chi.URLParam(r, "bidID")
		if err := ctrl.CancelBid(r.Context(), bidID); err != nil {
			if errors.Is(err, db.ErrBidNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "bid not found")
			} else {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			}
			return
		}

		http.Redirect(w, r, "/bids", http.StatusSeeOther)
	}
}

func recordResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		matchID, err := strconv.Atoi(chi.URLParam(r, "matchID"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing match id: %v", err))
			return
		}
		homeScore, err := strconv.Atoi(r.PostForm.Get("home_score"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing home score: %v", err))
			return
		}
		awayScore, err := strconv.Atoi(r.PostForm.Get("away_score"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing away score: %v", err))
			return
		}
		overtime := r.PostForm.Get("overtime") == "true"

		err = ctrl.RecordMatchResult(r.Context(), int32(matchID), int32(homeScore), int32(awayScore), overtime)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "match not found")
			} else {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/matches/%d", matchID), http.StatusSeeOther)
	}
}

func importScheduleHandler(ctrl controller.C, render *render.Render, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := seasonFromQuery(r, cfg)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		count, err := ctrl.ImportSchedule(r.Context(), seasonID)
		if err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error importing schedule: %v", err))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("imported %d matches", count))
	}
}

func runSettlementHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.RunBidSettlement(r.Context())
		if err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error running settlement: %v", err))
			return
		}

		render.HTML(w, http.StatusOK, "settlement", report)
	}
}
