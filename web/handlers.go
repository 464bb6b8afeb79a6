package web

import (
	"net/http"
	"strconv"

	"github.com/unrolled/render"

	"github.com/xSunnyyy/VetoCity/controller"
)

// Failures are reported as {"error": msg} with a non-2xx status; callers key
// off the error field, not just the transport status.
func renderError(render *render.Render, w http.ResponseWriter, status int, err error) {
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "veto city league engine")
	}
}

func awardsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.GetSeasonAwards(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func recordsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.GetRecordBook(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func managersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.GetManagerCareers(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func rivalryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerA := r.URL.Query().Get("a")
		ownerB := r.URL.Query().Get("b")
		if ownerA == "" || ownerB == "" {
			render.JSON(w, http.StatusBadRequest, map[string]string{
				"error": "query parameters a and b are required",
			})
			return
		}

		payload, err := ctrl.GetRivalry(r.Context(), ownerA, ownerB)
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.GetStandings(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// No week parameter means the current NFL week.
		week := 0
		if raw := r.URL.Query().Get("week"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{
					"error": "week must be a number",
				})
				return
			}
			week = parsed
		}

		payload, err := ctrl.GetWeekMatchups(r.Context(), week)
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}

func draftBoardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.GetDraftBoard(r.Context())
		if err != nil {
			renderError(render, w, http.StatusBadGateway, err)
			return
		}
		render.JSON(w, http.StatusOK, payload)
	}
}
