package board

import (
	"strconv"
	"strings"
)

// Leaving is the sentinel the BART API reports in place of a minutes count
// when a train is at the platform. It is preserved as-is, never coerced to
// a number.
const Leaving = "Leaving"

// Estimate is one predicted departure for a destination.
type Estimate struct {
	Minutes   string // numeric string, or the Leaving sentinel
	Platform  string
	Direction string
	Cars      int
	Color     string // line color name, e.g. "YELLOW"
	HexColor  string // e.g. "#ffff33"
	BikeFlag  bool
	Delay     int
}

// Leaving reports whether the train is currently at or leaving the platform.
func (e Estimate) Leaving() bool {
	return strings.EqualFold(e.Minutes, Leaving)
}

// MinutesValue returns the numeric minutes-until-departure. The Leaving
// sentinel counts as zero. ok is false when Minutes is neither numeric nor
// the sentinel.
func (e Estimate) MinutesValue() (mins int, ok bool) {
	if e.Leaving() {
		return 0, true
	}
	n, err := strconv.Atoi(e.Minutes)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Destination groups the estimates for one terminus, soonest first.
type Destination struct {
	Name         string
	Abbreviation string
	Estimates    []Estimate
}

// Board is one station's departure board as of a single poll. It is built
// fresh from each response and never mutated afterwards.
type Board struct {
	StationName  string
	StationAbbr  string
	AsOf         string // opaque timestamp string from the API
	Destinations []Destination
}

// Destination returns the destination with the given abbreviation,
// case-insensitively.
func (b *Board) Destination(abbr string) (Destination, bool) {
	for _, d := range b.Destinations {
		if strings.EqualFold(d.Abbreviation, abbr) {
			return d, true
		}
	}
	return Destination{}, false
}
