package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/clubfeed/pkg/domain"
)

func intPtr(v int) *int { return &v }

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Upcoming: []domain.MatchRecord{{
			ID: 1, HomeTeam: "Man United", AwayTeam: "Chelsea", Date: "Sat, Nov 22, 2025", Time: "3:00 PM",
			Status: domain.MatchUpcoming, Competition: "Premier League",
		}},
		Results: []domain.MatchRecord{{
			ID: 2, HomeTeam: "Arsenal", AwayTeam: "Man United", Time: "FT", Status: domain.MatchFinished,
			HomeScore: intPtr(1), AwayScore: intPtr(2),
		}},
		Standings: []domain.StandingRow{{Position: 1, Team: "Arsenal", Played: 12, Won: 9, Drawn: 2, Lost: 1, Points: 29}},
		Squad:     []domain.SquadMember{{ID: 7, Name: "Bruno Fernandes", Position: domain.PositionMidfield, ShirtNumber: intPtr(8)}},
		News:      []domain.FeedItem{{ID: 0, Title: "United win", Summary: "A late goal", Published: "19 Nov", Link: "https://example.com/1"}},
		NewsState: "done",
		UpdatedAt: time.Date(2025, 11, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(configMock(":8080"), schedulerMock(testSnapshot()), "1.2.3", false)

	w := httptest.NewRecorder()
	srv.statusHandler(w, httptest.NewRequest("GET", "/api/v1/status", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
	assert.Equal(t, "done", resp["news_state"])
	assert.Equal(t, "2025-11-19T12:00:00Z", resp["updated_at"])
	assert.NotEmpty(t, resp["time"])
}

func TestServer_CategoryHandlers(t *testing.T) {
	srv := New(configMock(":8080"), schedulerMock(testSnapshot()), "1.0.0", false)

	t.Run("upcoming", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.upcomingHandler(w, httptest.NewRequest("GET", "/api/v1/matches/upcoming", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		var res []domain.MatchRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "Chelsea", res[0].AwayTeam)
		assert.Nil(t, res[0].HomeScore)
	})

	t.Run("results", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.resultsHandler(w, httptest.NewRequest("GET", "/api/v1/matches/results", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		var res []domain.MatchRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "FT", res[0].Time)
		require.NotNil(t, res[0].AwayScore)
		assert.Equal(t, 2, *res[0].AwayScore)
	})

	t.Run("standings", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.standingsHandler(w, httptest.NewRequest("GET", "/api/v1/standings", http.NoBody))
		var res []domain.StandingRow
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, 29, res[0].Points)
	})

	t.Run("squad", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.squadHandler(w, httptest.NewRequest("GET", "/api/v1/squad", http.NoBody))
		var res []domain.SquadMember
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, domain.PositionMidfield, res[0].Position)
	})

	t.Run("news", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.newsHandler(w, httptest.NewRequest("GET", "/api/v1/news", http.NoBody))
		var res struct {
			Items []domain.FeedItem `json:"items"`
			State string            `json:"state"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Items, 1)
		assert.Equal(t, "United win", res.Items[0].Title)
		assert.Equal(t, "done", res.State)
	})

	t.Run("snapshot", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.snapshotHandler(w, httptest.NewRequest("GET", "/api/v1/snapshot", http.NoBody))
		var res domain.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Upcoming, 1)
		assert.Len(t, res.Results, 1)
		assert.Len(t, res.Standings, 1)
		assert.Len(t, res.Squad, 1)
		assert.Len(t, res.News, 1)
	})
}

func TestServer_CategoryHandlers_Empty(t *testing.T) {
	snap := domain.Snapshot{
		Upcoming: []domain.MatchRecord{}, Results: []domain.MatchRecord{}, Standings: []domain.StandingRow{},
		Squad: []domain.SquadMember{}, News: []domain.FeedItem{},
	}
	srv := New(configMock(":8080"), schedulerMock(snap), "1.0.0", false)

	w := httptest.NewRecorder()
	srv.standingsHandler(w, httptest.NewRequest("GET", "/api/v1/standings", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String(), "empty category is an empty list, not null")
}

func TestServer_refreshHandler(t *testing.T) {
	sched := schedulerMock(domain.Snapshot{})
	srv := New(configMock(":8080"), sched, "1.0.0", false)

	w := httptest.NewRecorder()
	srv.refreshHandler(w, httptest.NewRequest("POST", "/api/v1/refresh", http.NoBody))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, sched.RefreshNowCalls(), 1)
	assert.JSONEq(t, `{"status":"refresh started"}`, w.Body.String())
}
