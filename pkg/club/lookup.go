package club

import (
	"strings"

	"github.com/umputun/clubfeed/pkg/domain"
)

// positionRule maps free-text api positions to a standardized one, first match wins
type positionRule struct {
	terms    []string
	position domain.Position
}

var positionRules = []positionRule{
	{terms: []string{"goalkeeper"}, position: domain.PositionGoalkeeper},
	{terms: []string{"back", "defence"}, position: domain.PositionDefence},
	{terms: []string{"midfield"}, position: domain.PositionMidfield},
}

// shirtNumbers overrides squad numbers the api doesn't know or reports wrong
var shirtNumbers = []struct {
	name   string
	number int
}{
	{"Bruno Fernandes", 8},
	{"Casemiro", 18},
	{"Harry Maguire", 5},
	{"Lisandro Martínez", 6},
	{"Diogo Dalot", 20},
	{"Luke Shaw", 23},
	{"Matthijs de Ligt", 4},
	{"Noussair Mazraoui", 3},
	{"Tyrell Malacia", 12},
	{"Mason Mount", 7},
	{"Manuel Ugarte", 25},
	{"Kobbie Mainoo", 37},
	{"Amad Diallo", 16},
	{"Joshua Zirkzee", 11},
	{"Tom Heaton", 22},
	{"Altay Bayındır", 1},
	{"Patrick Dorgu", 19},
	{"Leny Yoro", 15},
	{"Benjamin Šeško", 9},
	{"Bryan Mbeumo", 10},
	{"Matheus Cunha", 14},
}

const crestBase = "https://crests.football-data.org/"

// defaultCrest is a generic football icon
const defaultCrest = crestBase + "1.png"

// crestRule matches a team name containing any of terms and none of excludes, case-insensitive
type crestRule struct {
	terms    []string
	excludes []string
	crest    string
}

var crestRules = []crestRule{
	{terms: []string{"man united", "manchester united"}, crest: "66.png"},
	{terms: []string{"arsenal"}, crest: "57.png"},
	{terms: []string{"liverpool"}, crest: "64.png"},
	{terms: []string{"chelsea"}, crest: "61.png"},
	{terms: []string{"man city", "manchester city"}, crest: "65.png"},
	{terms: []string{"tottenham", "spurs"}, crest: "73.png"},
	{terms: []string{"newcastle"}, crest: "67.png"},
	{terms: []string{"aston villa"}, crest: "58.png"},
	{terms: []string{"brighton"}, crest: "397.png"},
	{terms: []string{"west ham"}, crest: "563.png"},
	{terms: []string{"everton"}, crest: "62.png"},
	{terms: []string{"brentford"}, crest: "402.png"},
	{terms: []string{"fulham"}, crest: "63.png"},
	{terms: []string{"crystal palace"}, crest: "354.png"},
	{terms: []string{"wolves", "wolverhampton"}, crest: "76.png"},
	{terms: []string{"bournemouth"}, crest: "1044.png"},
	{terms: []string{"nottingham", "nott'm forest"}, crest: "351.png"},
	{terms: []string{"leicester"}, crest: "338.png"},
	{terms: []string{"leeds"}, crest: "341.png"},
	{terms: []string{"southampton"}, crest: "340.png"},
	{terms: []string{"ipswich"}, crest: "349.png"},
	// european opponents
	{terms: []string{"barcelona"}, crest: "81.png"},
	{terms: []string{"real madrid"}, crest: "86.png"},
	{terms: []string{"bayern"}, crest: "5.png"},
	{terms: []string{"psg", "paris"}, crest: "524.png"},
	{terms: []string{"juventus"}, crest: "109.png"},
	{terms: []string{"inter"}, excludes: []string{"united"}, crest: "108.png"},
	{terms: []string{"milan"}, excludes: []string{"inter"}, crest: "98.png"},
	{terms: []string{"atletico"}, crest: "78.png"},
	{terms: []string{"galatasaray"}, crest: "610.png"},
	{terms: []string{"porto"}, crest: "503.png"},
	{terms: []string{"copenhagen"}, crest: "263.png"},
}

// StandardPosition reduces a free-text position ("Centre-Back", "Defensive Midfield") to one of four groups
func StandardPosition(position string) domain.Position {
	p := strings.ToLower(position)
	for _, rule := range positionRules {
		if containsAny(p, rule.terms) {
			return rule.position
		}
	}
	return domain.PositionOffence
}

// ShirtNumber returns the known shirt number of the player, or the api one if the player isn't listed
func ShirtNumber(name string, apiNumber *int) *int {
	for _, s := range shirtNumbers {
		if s.name == name {
			n := s.number
			return &n
		}
	}
	return apiNumber
}

// CrestURL returns crest image url for a team name
func CrestURL(team string) string {
	t := strings.ToLower(team)
	for _, rule := range crestRules {
		if containsAny(t, rule.terms) && !containsAny(t, rule.excludes) {
			return crestBase + rule.crest
		}
	}
	return defaultCrest
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
