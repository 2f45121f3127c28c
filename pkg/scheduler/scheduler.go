package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/clubfeed/pkg/domain"
	"github.com/umputun/clubfeed/pkg/feed"
)

//go:generate moq -out mocks/club.go -pkg mocks -skip-ensure -fmt goimports . Club

// Club provides data of every category, all methods degrade to empty or fallback lists instead of failing
type Club interface {
	UpcomingMatches(ctx context.Context) []domain.MatchRecord
	RecentResults(ctx context.Context) []domain.MatchRecord
	Standings(ctx context.Context) []domain.StandingRow
	Squad(ctx context.Context) []domain.SquadMember
	News(ctx context.Context) feed.Result
}

// Scheduler refreshes all data categories periodically and on demand, keeping the latest result of each.
// Categories are refreshed concurrently and independently, whichever completes last wins its slot.
// A refresh never cancels one already in flight.
type Scheduler struct {
	club            Club
	refreshInterval time.Duration

	lock     sync.RWMutex
	snapshot domain.Snapshot

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(club Club, cfg Config) *Scheduler {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 15 * time.Minute
	}
	return &Scheduler{
		club:            club,
		refreshInterval: cfg.RefreshInterval,
		baseCtx:         context.Background(),
		snapshot: domain.Snapshot{
			Upcoming:  []domain.MatchRecord{},
			Results:   []domain.MatchRecord{},
			Standings: []domain.StandingRow{},
			Squad:     []domain.SquadMember{},
			News:      []domain.FeedItem{},
		},
	}
}

// Start begins periodic refreshes, the first one runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.lock.Lock()
	s.baseCtx, s.cancel = ctx, cancel
	s.lock.Unlock()

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with refresh interval %v", s.refreshInterval)
}

// Stop cancels periodic refreshes and waits for running ones
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.lock.Lock()
	if s.cancel != nil {
		s.cancel() // under the lock, so RefreshNow either sees the cancelled context or is already counted
	}
	s.lock.Unlock()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RefreshNow triggers a refresh in background and returns immediately.
// It does nothing once the scheduler is stopped.
func (s *Scheduler) RefreshNow() {
	s.lock.Lock()
	ctx := s.baseCtx
	if ctx.Err() != nil {
		s.lock.Unlock()
		lgr.Printf("[DEBUG] refresh skipped, scheduler stopped")
		return
	}
	s.wg.Add(1)
	s.lock.Unlock()

	go func() {
		defer s.wg.Done()
		s.Refresh(ctx)
	}()
}

// Snapshot returns the latest data of all categories
func (s *Scheduler) Snapshot() domain.Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snapshot
}

// Refresh updates all five categories concurrently and returns when all of them are done.
// Each category stores its result as soon as it completes.
func (s *Scheduler) Refresh(ctx context.Context) {
	st := time.Now()
	var g errgroup.Group

	g.Go(func() error {
		res := s.club.UpcomingMatches(ctx)
		s.update(func(snap *domain.Snapshot) { snap.Upcoming = res })
		return nil
	})
	g.Go(func() error {
		res := s.club.RecentResults(ctx)
		s.update(func(snap *domain.Snapshot) { snap.Results = res })
		return nil
	})
	g.Go(func() error {
		res := s.club.Standings(ctx)
		s.update(func(snap *domain.Snapshot) { snap.Standings = res })
		return nil
	})
	g.Go(func() error {
		res := s.club.Squad(ctx)
		s.update(func(snap *domain.Snapshot) { snap.Squad = res })
		return nil
	})
	g.Go(func() error {
		res := s.club.News(ctx)
		s.update(func(snap *domain.Snapshot) {
			snap.News = res.Items
			snap.NewsState = string(res.State)
		})
		return nil
	})

	_ = g.Wait() // category refreshes never fail
	lgr.Printf("[DEBUG] refresh completed in %v", time.Since(st))
}

func (s *Scheduler) update(fn func(snap *domain.Snapshot)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	fn(&s.snapshot)
	s.snapshot.UpdatedAt = time.Now()
}

// refreshWorker runs refresh on start and then on every tick
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	s.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
