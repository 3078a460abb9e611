package notify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mschuldt/bart-mode/internal/board"
)

// AlertSender sends a single departure alert. *Notifier satisfies it.
type AlertSender interface {
	SendDepartureAlert(station, destination, minutes string) error
}

// Watcher observes successive departure boards and fires one alert each
// time the watched destination's soonest train drops to or below the
// threshold. It re-arms once the estimate climbs back above the threshold,
// so every approaching train alerts at most once.
type Watcher struct {
	sender      AlertSender
	destination string // destination abbreviation, e.g. "DALY"
	threshold   int    // minutes
	logger      *logrus.Logger

	mu    sync.Mutex
	armed bool
}

func NewWatcher(sender AlertSender, destination string, thresholdMinutes int, logger *logrus.Logger) *Watcher {
	return &Watcher{
		sender:      sender,
		destination: destination,
		threshold:   thresholdMinutes,
		logger:      logger,
		armed:       true,
	}
}

// Observe inspects one board. Suitable as a poller OnBoard hook.
func (w *Watcher) Observe(b *board.Board) {
	dst, ok := b.Destination(w.destination)
	if !ok || len(dst.Estimates) == 0 {
		return
	}

	soonest := dst.Estimates[0]
	mins, ok := soonest.MinutesValue()
	if !ok {
		w.logger.WithField("minutes", soonest.Minutes).Debug("unparseable estimate, skipping alert check")
		return
	}

	w.mu.Lock()
	fire := w.armed && mins <= w.threshold
	if fire {
		w.armed = false
	} else if mins > w.threshold {
		w.armed = true
	}
	w.mu.Unlock()

	if !fire {
		return
	}

	w.logger.WithFields(logrus.Fields{
		"destination": dst.Name,
		"minutes":     soonest.Minutes,
	}).Info("departure alert")

	if err := w.sender.SendDepartureAlert(b.StationName, dst.Name, soonest.Minutes); err != nil {
		w.logger.WithField("error", err).Warn("failed to send departure alert")
	}
}
