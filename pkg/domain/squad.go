package domain

// Position is a standardized playing position
type Position string

// enum of standardized positions
const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefence    Position = "Defence"
	PositionMidfield   Position = "Midfield"
	PositionOffence    Position = "Offence"
)

// SquadMember is a player of the first team squad
type SquadMember struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Position    Position `json:"position"`
	ShirtNumber *int     `json:"shirt_number,omitempty"`
	Nationality string   `json:"nationality"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
}
