// Package club turns football api responses and news feeds into view models of a single club.
// Every category operation absorbs failures: callers get an empty list (or fallback news), never an error.
package club

import (
	"context"
	"slices"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/clubfeed/pkg/domain"
	"github.com/umputun/clubfeed/pkg/feed"
	"github.com/umputun/clubfeed/pkg/football"
)

//go:generate moq -out mocks/football.go -pkg mocks -skip-ensure -fmt goimports . FootballAPI
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsSource

const (
	upcomingCount = 3
	resultsCount  = 5
	apiMatchLimit = 10
)

// FootballAPI is the subset of the football api used by the service
type FootballAPI interface {
	Matches(ctx context.Context, status string, limit int) ([]football.Match, error)
	Standings(ctx context.Context) ([]football.StandingTable, error)
	Squad(ctx context.Context) ([]football.Player, error)
}

// NewsSource provides news with fallback
type NewsSource interface {
	Refresh(ctx context.Context) feed.Result
}

// Service provides view models for each data category
type Service struct {
	api  FootballAPI
	news NewsSource
}

// NewService makes a club service
func NewService(api FootballAPI, news NewsSource) *Service {
	return &Service{api: api, news: news}
}

// UpcomingMatches returns the next scheduled matches, at most 3
func (s *Service) UpcomingMatches(ctx context.Context) []domain.MatchRecord {
	matches, err := s.api.Matches(ctx, football.StatusScheduled, apiMatchLimit)
	if err != nil {
		lgr.Printf("[WARN] can't get upcoming matches: %v", err)
		return []domain.MatchRecord{}
	}

	res := make([]domain.MatchRecord, 0, upcomingCount)
	for _, m := range matches[:min(upcomingCount, len(matches))] {
		res = append(res, upcomingMatch(m))
	}
	return res
}

// RecentResults returns finished matches, most recent first, at most 5.
// The api lists matches in date order, so the list is reversed.
func (s *Service) RecentResults(ctx context.Context) []domain.MatchRecord {
	matches, err := s.api.Matches(ctx, football.StatusFinished, apiMatchLimit)
	if err != nil {
		lgr.Printf("[WARN] can't get recent results: %v", err)
		return []domain.MatchRecord{}
	}

	recent := slices.Clone(matches)
	slices.Reverse(recent)
	res := make([]domain.MatchRecord, 0, resultsCount)
	for _, m := range recent[:min(resultsCount, len(recent))] {
		res = append(res, finishedMatch(m))
	}
	return res
}

// Standings returns the overall league table
func (s *Service) Standings(ctx context.Context) []domain.StandingRow {
	tables, err := s.api.Standings(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't get standings: %v", err)
		return []domain.StandingRow{}
	}
	return standingRows(tables)
}

// Squad returns the first team squad with standardized positions
func (s *Service) Squad(ctx context.Context) []domain.SquadMember {
	players, err := s.api.Squad(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't get squad: %v", err)
		return []domain.SquadMember{}
	}

	res := make([]domain.SquadMember, 0, len(players))
	for _, p := range players {
		res = append(res, squadMember(p))
	}
	return res
}

// News returns latest news items, static placeholders if no feed could be used
func (s *Service) News(ctx context.Context) feed.Result {
	return s.news.Refresh(ctx)
}
