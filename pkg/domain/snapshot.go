package domain

import "time"

// Snapshot is the latest known result of every data category.
// Each category is replaced as a whole when its refresh completes.
type Snapshot struct {
	Upcoming  []MatchRecord `json:"upcoming"`
	Results   []MatchRecord `json:"results"`
	Standings []StandingRow `json:"standings"`
	Squad     []SquadMember `json:"squad"`
	News      []FeedItem    `json:"news"`
	NewsState string        `json:"news_state,omitempty"` // "done" or "fallback"
	UpdatedAt time.Time     `json:"updated_at"`
}
