package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	wl, err := words.New([]string{"CRANE", "SLATE"})
	if err != nil {
		t.Fatal(err)
	}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, r := range []store.Record{
		{ID: "g1", Secret: "CRANE", Outcome: store.OutcomeWon, Guesses: 3, DailyDate: "2024-05-01"},
		{ID: "g2", Secret: "SLATE", Outcome: store.OutcomeLost, Guesses: 5},
		{ID: "g3", Secret: "CRANE", Outcome: store.OutcomeWon, Guesses: 2},
	} {
		r.StartedAt = base.Add(time.Duration(i) * time.Hour)
		r.FinishedAt = r.StartedAt.Add(time.Minute)
		if err := st.Save(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}
	return New(st, wl), st
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Errorf("GET /health = %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestStats(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /stats = %d", rec.Code)
	}
	var st store.Stats
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	if st.Played != 3 || st.Wins != 2 || st.Streak != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestGames(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/games?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /games = %d", rec.Code)
	}
	var rs []store.Record
	if err := json.NewDecoder(rec.Body).Decode(&rs); err != nil {
		t.Fatal(err)
	}
	if len(rs) != 2 || rs[0].ID != "g3" {
		t.Errorf("games = %+v", rs)
	}

	if rec := get(t, s, "/games?limit=zero"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit = %d, want 400", rec.Code)
	}
}

func TestGameByID(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/games/g2")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /games/g2 = %d", rec.Code)
	}
	var r store.Record
	if err := json.NewDecoder(rec.Body).Decode(&r); err != nil {
		t.Fatal(err)
	}
	if r.Secret != "SLATE" || r.Outcome != store.OutcomeLost {
		t.Errorf("record = %+v", r)
	}
	if rec := get(t, s, "/games/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("missing game = %d, want 404", rec.Code)
	}
}

func TestDaily(t *testing.T) {
	s, _ := newTestServer(t)
	var body struct {
		Date   string `json:"date"`
		Played bool   `json:"played"`
	}
	rec := get(t, s, "/daily?date=2024-05-01")
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Played || body.Date != "2024-05-01" {
		t.Errorf("daily = %+v", body)
	}
	if rec := get(t, s, "/daily?date=yesterday"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", rec.Code)
	}
}

func TestWordsAndNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := get(t, s, "/words"); rec.Body.String() != "{\"words\":2}\n" {
		t.Errorf("GET /words = %q", rec.Body.String())
	}
	if rec := get(t, s, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, want 404", rec.Code)
	}
}
