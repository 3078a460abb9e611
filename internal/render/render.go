package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mschuldt/bart-mode/internal/board"
)

const banner = "BART Estimated Departures"

// abbrevWidth is the label width when destination abbreviations are shown.
const abbrevWidth = 4

var (
	bannerStyle  = color.New(color.Bold)
	summaryStyle = color.New(color.Faint)
	glyphColors  = map[string]*color.Color{
		"RED":    color.New(color.FgRed),
		"ORANGE": color.New(color.FgHiRed),
		"YELLOW": color.New(color.FgYellow),
		"GREEN":  color.New(color.FgGreen),
		"BLUE":   color.New(color.FgBlue),
		"PURPLE": color.New(color.FgMagenta),
		"WHITE":  color.New(color.FgWhite),
	}
	defaultGlyphColor = color.New(color.FgWhite)
)

// Lines renders a departure board as terminal lines. Pure: the same board
// and flag always produce the same lines, so repainting is a total replace.
func Lines(b *board.Board, abbreviate bool) []string {
	lines := make([]string, 0, len(b.Destinations)+3)
	lines = append(lines,
		bannerStyle.Sprint(banner),
		summaryStyle.Sprintf("%s, as of %s", b.StationName, b.AsOf),
		"",
	)

	width := labelWidth(b, abbreviate)
	for _, dst := range b.Destinations {
		lines = append(lines, destinationLine(dst, abbreviate, width))
	}

	return lines
}

// Unavailable is the board shown before the first successful poll.
func Unavailable() []string {
	return []string{
		bannerStyle.Sprint(banner),
		summaryStyle.Sprint("waiting for departure data, will retry"),
	}
}

func labelWidth(b *board.Board, abbreviate bool) int {
	if abbreviate {
		return abbrevWidth
	}
	width := abbrevWidth
	for _, dst := range b.Destinations {
		if len(dst.Name) > width {
			width = len(dst.Name)
		}
	}
	return width
}

func destinationLine(dst board.Destination, abbreviate bool, width int) string {
	label := dst.Name
	if abbreviate {
		label = dst.Abbreviation
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", width, label)
	for _, est := range dst.Estimates {
		sb.WriteString("  ")
		sb.WriteString(segment(est))
	}
	return sb.String()
}

// segment formats one estimate as a fixed-width cell: a colored glyph, the
// minutes field padded so Leaving and numeric entries line up, and the car
// count.
func segment(est board.Estimate) string {
	minutes := est.Minutes
	if !est.Leaving() {
		minutes = minutes + " min"
	}

	c, ok := glyphColors[strings.ToUpper(est.Color)]
	if !ok {
		c = defaultGlyphColor
	}

	return fmt.Sprintf("%s %7s (%2d car)", c.Sprint("██"), minutes, est.Cars)
}
