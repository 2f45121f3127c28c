package club

import (
	"strings"
	"time"

	"github.com/umputun/clubfeed/pkg/domain"
	"github.com/umputun/clubfeed/pkg/football"
)

const (
	apiTimeLayout  = "2006-01-02T15:04:05Z"
	dateLabel      = "Mon, Jan 2, 2006"
	timeLabel      = "3:04 PM"
	finishedLabel  = "FT"
	totalTableType = "TOTAL"
)

// FormatDate turns api UTC timestamp into "Sat, Nov 22, 2025", unparsable input is cut at "T"
func FormatDate(isoDate string) string {
	t, err := time.Parse(apiTimeLayout, isoDate)
	if err != nil {
		date, _, _ := strings.Cut(isoDate, "T")
		return date
	}
	return t.Format(dateLabel)
}

// FormatTime turns api UTC timestamp into "3:00 PM", unparsable input gives empty string
func FormatTime(isoDate string) string {
	t, err := time.Parse(apiTimeLayout, isoDate)
	if err != nil {
		return ""
	}
	return t.Format(timeLabel)
}

// upcomingMatch converts a scheduled api match
func upcomingMatch(m football.Match) domain.MatchRecord {
	rec := matchRecord(m)
	rec.Time = FormatTime(m.UTCDate)
	rec.Status = domain.MatchUpcoming
	return rec
}

// finishedMatch converts a finished api match, the time label is replaced with "FT"
func finishedMatch(m football.Match) domain.MatchRecord {
	rec := matchRecord(m)
	rec.Time = finishedLabel
	rec.Status = domain.MatchFinished
	rec.HomeScore = m.Score.FullTime.Home
	rec.AwayScore = m.Score.FullTime.Away
	rec.Score = rec.ScoreLabel()
	return rec
}

func matchRecord(m football.Match) domain.MatchRecord {
	home, away := m.HomeTeam.DisplayName(), m.AwayTeam.DisplayName()
	return domain.MatchRecord{
		ID:          m.ID,
		HomeTeam:    home,
		AwayTeam:    away,
		HomeCrest:   CrestURL(home),
		AwayCrest:   CrestURL(away),
		Date:        FormatDate(m.UTCDate),
		Competition: m.Competition.Name,
	}
}

// standingRows converts the TOTAL table, other tables (HOME, AWAY) are ignored
func standingRows(tables []football.StandingTable) []domain.StandingRow {
	res := []domain.StandingRow{}
	for _, table := range tables {
		if table.Type != totalTableType {
			continue
		}
		for _, pos := range table.Table {
			name := pos.Team.DisplayName()
			res = append(res, domain.StandingRow{
				Position:       pos.Position,
				Team:           name,
				Crest:          CrestURL(name),
				Played:         pos.PlayedGames,
				Won:            pos.Won,
				Drawn:          pos.Draw,
				Lost:           pos.Lost,
				GoalDifference: pos.GoalDifference,
				Points:         pos.Points,
			})
		}
		break
	}
	return res
}

func squadMember(p football.Player) domain.SquadMember {
	return domain.SquadMember{
		ID:          p.ID,
		Name:        p.Name,
		Position:    StandardPosition(p.Position),
		ShirtNumber: ShirtNumber(p.Name, p.ShirtNumber),
		Nationality: p.Nationality,
		DateOfBirth: p.DateOfBirth,
	}
}
