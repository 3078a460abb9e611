package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschuldt/bart-mode/internal/board"
)

func init() {
	// Plain output regardless of the test environment's terminal
	color.NoColor = true
}

func sampleBoard() *board.Board {
	return &board.Board{
		StationName: "Richmond",
		StationAbbr: "RICH",
		AsOf:        "08/31/2026 09:15:01 AM PDT",
		Destinations: []board.Destination{
			{
				Name:         "Berryessa",
				Abbreviation: "BERY",
				Estimates: []board.Estimate{
					{Minutes: "7", Cars: 10, Color: "ORANGE", HexColor: "#ff9933"},
					{Minutes: "27", Cars: 10, Color: "ORANGE", HexColor: "#ff9933"},
				},
			},
			{
				Name:         "Millbrae",
				Abbreviation: "MLBR",
				Estimates: []board.Estimate{
					{Minutes: "Leaving", Cars: 9, Color: "RED", HexColor: "#ff0000"},
					{Minutes: "14", Cars: 9, Color: "RED", HexColor: "#ff0000"},
				},
			},
		},
	}
}

func TestLinesIdempotent(t *testing.T) {
	b := sampleBoard()
	first := Lines(b, false)
	second := Lines(b, false)
	assert.Equal(t, first, second)

	first = Lines(b, true)
	second = Lines(b, true)
	assert.Equal(t, first, second)
}

func TestLinesLayout(t *testing.T) {
	lines := Lines(sampleBoard(), false)
	require.Len(t, lines, 5)

	assert.Equal(t, banner, lines[0])
	assert.Contains(t, lines[1], "Richmond")
	assert.Contains(t, lines[1], "08/31/2026 09:15:01 AM PDT")
	assert.Empty(t, lines[2])

	assert.True(t, strings.HasPrefix(lines[3], "Berryessa"))
	assert.True(t, strings.HasPrefix(lines[4], "Millbrae"))
	assert.Contains(t, lines[3], "7 min")
	assert.Contains(t, lines[3], "(10 car)")
	assert.Contains(t, lines[4], "Leaving")
	assert.NotContains(t, lines[4], "Leaving min")
}

func TestLeavingAlignsWithNumericRows(t *testing.T) {
	lines := Lines(sampleBoard(), false)
	require.Len(t, lines, 5)

	// Both destinations carry two estimates, so with padded labels and
	// fixed-width segments the rows must land on the same length and the
	// second estimate must start at the same column.
	assert.Equal(t, len(lines[3]), len(lines[4]))
	assert.Equal(t, strings.Index(lines[3], "(10 car)"), strings.Index(lines[4], "( 9 car)"))
}

func TestAbbreviateChangesOnlyLabels(t *testing.T) {
	b := sampleBoard()
	full := Lines(b, false)
	abbr := Lines(b, true)
	require.Len(t, abbr, len(full))

	// Header lines unaffected
	assert.Equal(t, full[0], abbr[0])
	assert.Equal(t, full[1], abbr[1])

	fullWidth := labelWidth(b, false)
	abbrWidth := labelWidth(b, true)

	for i := 3; i < len(full); i++ {
		assert.Equal(t, full[i][fullWidth:], abbr[i][abbrWidth:], "row %d estimates differ", i)
	}

	assert.True(t, strings.HasPrefix(abbr[3], "BERY"))
	assert.True(t, strings.HasPrefix(abbr[4], "MLBR"))
}

func TestUnavailable(t *testing.T) {
	lines := Unavailable()
	require.NotEmpty(t, lines)
	assert.Equal(t, banner, lines[0])
}
