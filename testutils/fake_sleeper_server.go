package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// FakeSleeperServer serves a small two-season league: league 1111 (2024)
// whose previous_league_id points at league 2222 (2023), which ends the
// chain. Weeks and endpoints without a fixture file return the same empty
// bodies the real API does.
type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", fileHandler("state_nfl.json", "null"))

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueFileHandler("users_%s.json", "[]"))
			r.Get("/rosters", leagueFileHandler("rosters_%s.json", "[]"))
			r.Get("/matchups/{week}", weeklyFileHandler("matchups_%s_w%s.json"))
			r.Get("/transactions/{week}", weeklyFileHandler("transactions_%s_w%s.json"))
			r.Get("/winners_bracket", leagueFileHandler("winners_%s.json", "[]"))
			r.Get("/losers_bracket", leagueFileHandler("losers_%s.json", "[]"))
			r.Get("/drafts", leagueFileHandler("drafts_%s.json", "[]"))
		})

		r.Route("/draft/{draftID}", func(r chi.Router) {
			r.Get("/", draftHandler)
			r.Get("/picks", draftPicksHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	// requesting a league that doesn't exist returns a 200 with "null"
	serveFile(w, fmt.Sprintf("league_%s.json", leagueID), "null")
}

func leagueFileHandler(pattern, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		serveFile(w, fmt.Sprintf(pattern, leagueID), fallback)
	}
}

func weeklyFileHandler(pattern string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		week := chi.URLParam(r, "week")
		serveFile(w, fmt.Sprintf(pattern, leagueID, week), "[]")
	}
}

func draftHandler(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")
	serveFile(w, fmt.Sprintf("draft_%s.json", draftID), "null")
}

func draftPicksHandler(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")
	serveFile(w, fmt.Sprintf("picks_%s.json", draftID), "[]")
}

func fileHandler(name, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, name, fallback)
	}
}

func serveFile(w http.ResponseWriter, name, fallback string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fallback))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
