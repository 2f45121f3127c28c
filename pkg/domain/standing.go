package domain

// StandingRow is one line of a league table.
// Played is expected to be Won+Drawn+Lost, the upstream source guarantees it.
type StandingRow struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Crest          string `json:"crest"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}
