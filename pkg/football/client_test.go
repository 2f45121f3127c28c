package football

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchesJSON = `{
  "matches": [
    {
      "id": 537785,
      "utcDate": "2025-11-24T20:00:00Z",
      "status": "FINISHED",
      "homeTeam": {"id": 66, "name": "Manchester United FC", "shortName": "Man United"},
      "awayTeam": {"id": 76, "name": "Wolverhampton Wanderers FC", "shortName": null},
      "score": {"fullTime": {"home": 2, "away": 0}},
      "competition": {"id": 2021, "name": "Premier League"}
    }
  ]
}`

func testClient(url string) *Client {
	return NewClient(Params{BaseURL: url, Token: "secret", TeamID: 66, CompetitionID: 2021, Timeout: 5 * time.Second})
}

func TestClient_Matches(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/teams/66/matches", r.URL.Path)
		assert.Equal(t, "FINISHED", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth-Token"))
		_, _ = w.Write([]byte(matchesJSON))
	}))
	defer ts.Close()

	matches, err := testClient(ts.URL+"/v4/").Matches(context.Background(), StatusFinished, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 537785, m.ID)
	assert.Equal(t, "2025-11-24T20:00:00Z", m.UTCDate)
	assert.Equal(t, "Man United", m.HomeTeam.DisplayName())
	assert.Equal(t, "Wolverhampton Wanderers FC", m.AwayTeam.DisplayName())
	require.NotNil(t, m.Score.FullTime.Home)
	assert.Equal(t, 2, *m.Score.FullTime.Home)
	assert.Equal(t, 0, *m.Score.FullTime.Away)
	assert.Equal(t, "Premier League", m.Competition.Name)
}

func TestClient_Matches_Limit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("status"))
		_, _ = w.Write([]byte(`{"matches": []}`))
	}))
	defer ts.Close()

	matches, err := testClient(ts.URL).Matches(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClient_Standings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/competitions/2021/standings", r.URL.Path)
		_, _ = w.Write([]byte(`{"standings": [
			{"stage": "REGULAR_SEASON", "type": "TOTAL", "table": [
				{"position": 1, "team": {"name": "Arsenal FC", "shortName": "Arsenal"},
				 "playedGames": 12, "won": 8, "draw": 3, "lost": 1, "points": 27, "goalDifference": 16}
			]},
			{"stage": "REGULAR_SEASON", "type": "HOME", "table": []}
		]}`))
	}))
	defer ts.Close()

	tables, err := testClient(ts.URL).Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "TOTAL", tables[0].Type)
	require.Len(t, tables[0].Table, 1)
	row := tables[0].Table[0]
	assert.Equal(t, 1, row.Position)
	assert.Equal(t, "Arsenal", row.Team.DisplayName())
	assert.Equal(t, 12, row.PlayedGames)
	assert.Equal(t, 3, row.Draw)
	assert.Equal(t, 16, row.GoalDifference)
	assert.Equal(t, 27, row.Points)
}

func TestClient_Squad(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/66", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 66, "name": "Manchester United FC", "squad": [
			{"id": 1, "name": "Altay Bayındır", "position": "Goalkeeper", "dateOfBirth": "1998-04-14", "nationality": "Turkey", "shirtNumber": null},
			{"id": 2, "name": "Harry Maguire", "position": "Centre-Back", "dateOfBirth": "1993-03-05", "nationality": "England", "shirtNumber": 5}
		]}`))
	}))
	defer ts.Close()

	players, err := testClient(ts.URL).Squad(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Altay Bayındır", players[0].Name)
	assert.Nil(t, players[0].ShirtNumber)
	require.NotNil(t, players[1].ShirtNumber)
	assert.Equal(t, 5, *players[1].ShirtNumber)
	assert.Equal(t, "Centre-Back", players[1].Position)
}

func TestClient_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "The resource you are looking for is restricted."}`))
		}))
		defer ts.Close()

		_, err := testClient(ts.URL).Squad(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStatus))
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"matches": [`))
		}))
		defer ts.Close()

		_, err := testClient(ts.URL).Matches(context.Background(), StatusScheduled, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("transport", func(t *testing.T) {
		_, err := testClient("http://127.0.0.1:1").Standings(context.Background())
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrStatus))
	})
}

func TestClient_Retries(t *testing.T) {
	t.Run("server error retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(matchesJSON))
		}))
		defer ts.Close()

		c := NewClient(Params{BaseURL: ts.URL, TeamID: 66, Timeout: time.Second, Retries: 3, RetryDelay: time.Millisecond})
		matches, err := c.Matches(context.Background(), StatusFinished, 10)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		c := NewClient(Params{BaseURL: ts.URL, TeamID: 66, Timeout: time.Second, Retries: 2, RetryDelay: time.Millisecond})
		_, err := c.Squad(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStatus))
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("client error not retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		c := NewClient(Params{BaseURL: ts.URL, TeamID: 66, Timeout: time.Second, Retries: 5, RetryDelay: time.Millisecond})
		_, err := c.Squad(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStatus))
		assert.False(t, errors.Is(err, errNoRetry))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("bad json not retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, _ = w.Write([]byte(`{"standings": [`))
		}))
		defer ts.Close()

		c := NewClient(Params{BaseURL: ts.URL, CompetitionID: 2021, Timeout: time.Second, Retries: 5, RetryDelay: time.Millisecond})
		_, err := c.Standings(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestTeam_DisplayName(t *testing.T) {
	assert.Equal(t, "Man United", Team{Name: "Manchester United FC", ShortName: "Man United"}.DisplayName())
	assert.Equal(t, "Chelsea FC", Team{Name: "Chelsea FC"}.DisplayName())
	assert.Equal(t, "Chelsea FC", Team{Name: "Chelsea FC", ShortName: ""}.DisplayName(), "empty short name falls back")
}
