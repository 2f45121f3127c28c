package domain

import "strconv"

// MatchStatus is the state of a fixture as shown to clients
type MatchStatus string

// enum of match statuses
const (
	MatchUpcoming MatchStatus = "UPCOMING"
	MatchLive     MatchStatus = "LIVE"
	MatchFinished MatchStatus = "FINISHED"
)

// MatchRecord is a fixture or a result of the club
type MatchRecord struct {
	ID          int         `json:"id"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	HomeCrest   string      `json:"home_crest"`
	AwayCrest   string      `json:"away_crest"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Status      MatchStatus `json:"status"`
	HomeScore   *int        `json:"home_score,omitempty"`
	AwayScore   *int        `json:"away_score,omitempty"`
	Score       string      `json:"score,omitempty"` // "h - a" label of a finished match
	Competition string      `json:"competition"`
}

// ScoreLabel returns "h - a" for matches with both scores known, empty string otherwise
func (m MatchRecord) ScoreLabel() string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return ""
	}
	return strconv.Itoa(*m.HomeScore) + " - " + strconv.Itoa(*m.AwayScore)
}
