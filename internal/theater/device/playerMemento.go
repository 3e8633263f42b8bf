package device

import (
	"github.com/sirupsen/logrus"
)

// Memento is an immutable snapshot of the player's essential state,
// captured by value. Later player mutations never alter a taken snapshot.
type Memento struct {
	item            string
	positionSeconds int
	state           PlayerState
}

// Save captures the current item, position and state. Capturing never
// mutates the player.
func (p *Player) Save() *Memento {
	logrus.Infof("Save %s snapshot: item=%q pos=%ds state=%s", p.name, p.currentItem, p.positionSeconds, p.state)
	return &Memento{
		item:            p.currentItem,
		positionSeconds: p.positionSeconds,
		state:           p.state,
	}
}

// Restore applies a snapshot. The tagged state is always entered afresh and
// the matching notification fires, even when the tag equals the current
// state. A nil snapshot is ignored.
func (p *Player) Restore(m *Memento) {
	if m == nil {
		logrus.Debugf("No snapshot to restore for %s", p.name)
		return
	}
	p.currentItem = m.item
	p.positionSeconds = m.positionSeconds
	switch m.state {
	case StatePlaying:
		p.state = StatePlaying
		p.notifyPlay(p.currentItem)
	case StatePaused:
		p.state = StatePaused
		p.notifyPause(p.currentItem)
	default:
		p.state = StateStopped
		p.notifyStop(p.currentItem)
	}
	logrus.Infof("Restored %s snapshot: item=%q pos=%ds state=%s", p.name, p.currentItem, p.positionSeconds, p.state)
}
