package notify

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschuldt/bart-mode/internal/board"
)

type recordingSender struct {
	calls []string
}

func (r *recordingSender) SendDepartureAlert(station, destination, minutes string) error {
	r.calls = append(r.calls, minutes)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func boardWithMinutes(minutes string) *board.Board {
	return &board.Board{
		StationName: "Richmond",
		Destinations: []board.Destination{
			{
				Name:         "Daly City",
				Abbreviation: "DALY",
				Estimates:    []board.Estimate{{Minutes: minutes}},
			},
		},
	}
}

func TestWatcherFiresOncePerApproach(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "daly", 5, testLogger())

	w.Observe(boardWithMinutes("10")) // above threshold, armed, quiet
	w.Observe(boardWithMinutes("4"))  // crosses threshold, fires
	w.Observe(boardWithMinutes("3"))  // still below, disarmed, quiet
	w.Observe(boardWithMinutes("Leaving"))

	require.Equal(t, []string{"4"}, sender.calls)
}

func TestWatcherRearmsAfterTrainLeaves(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "DALY", 5, testLogger())

	w.Observe(boardWithMinutes("2"))  // fires immediately
	w.Observe(boardWithMinutes("12")) // next train, rearms
	w.Observe(boardWithMinutes("5"))  // fires again

	require.Equal(t, []string{"2", "5"}, sender.calls)
}

func TestWatcherTreatsLeavingAsZero(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "daly", 0, testLogger())

	w.Observe(boardWithMinutes("Leaving"))

	require.Equal(t, []string{"Leaving"}, sender.calls)
}

func TestWatcherIgnoresOtherDestinations(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "mlbr", 5, testLogger())

	w.Observe(boardWithMinutes("1"))

	assert.Empty(t, sender.calls)
}

func TestWatcherSkipsUnparseableEstimates(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "daly", 5, testLogger())

	w.Observe(boardWithMinutes("soon"))

	assert.Empty(t, sender.calls)
}

func TestWatcherHandlesEmptyBoard(t *testing.T) {
	sender := &recordingSender{}
	w := NewWatcher(sender, "daly", 5, testLogger())

	w.Observe(&board.Board{StationName: "Richmond"})

	assert.Empty(t, sender.calls)
}
