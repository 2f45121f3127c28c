package football

// Team as returned inside matches and standings
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}

// DisplayName is the short name when the api provides one, the full name otherwise
func (t Team) DisplayName() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

// Match is a single fixture of the team
type Match struct {
	ID          int         `json:"id"`
	UTCDate     string      `json:"utcDate"`
	Status      string      `json:"status"`
	HomeTeam    Team        `json:"homeTeam"`
	AwayTeam    Team        `json:"awayTeam"`
	Score       Score       `json:"score"`
	Competition Competition `json:"competition"`
}

// Score of a match, values are nil until known
type Score struct {
	FullTime ScoreDetail `json:"fullTime"`
}

// ScoreDetail is a pair of goals
type ScoreDetail struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Competition a match belongs to
type Competition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StandingTable is one of TOTAL, HOME or AWAY tables of a competition
type StandingTable struct {
	Stage string          `json:"stage"`
	Type  string          `json:"type"`
	Table []TablePosition `json:"table"`
}

// TablePosition is a row of a standing table
type TablePosition struct {
	Position       int  `json:"position"`
	Team           Team `json:"team"`
	PlayedGames    int  `json:"playedGames"`
	Won            int  `json:"won"`
	Draw           int  `json:"draw"`
	Lost           int  `json:"lost"`
	Points         int  `json:"points"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	GoalDifference int  `json:"goalDifference"`
}

// Player of the squad
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	ShirtNumber *int   `json:"shirtNumber"`
}

type matchesResponse struct {
	Matches []Match `json:"matches"`
}

type standingsResponse struct {
	Standings []StandingTable `json:"standings"`
}

type teamResponse struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Squad []Player `json:"squad"`
}
