package device

import (
	"github.com/cinebox/cinebox/internal/theater/event"
	"github.com/sirupsen/logrus"
)

// Player is the streaming player device. It owns the current item, the
// playback position and the playback state, and notifies registered
// listeners on every state entry. All transitions go through Play, Stop,
// Pause and Resume; callers never mutate the fields directly.
type Player struct {
	name string

	currentItem     string
	positionSeconds int
	state           PlayerState

	listeners []event.PlayerListener
}

func NewPlayer(name string) *Player {
	player := Player{
		name:  name,
		state: StateStopped,
	}
	return &player
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) CurrentItem() string {
	return p.currentItem
}

func (p *Player) Position() int {
	return p.positionSeconds
}

func (p *Player) State() PlayerState {
	return p.state
}

// AddListener registers a listener. Notification order follows
// registration order.
func (p *Player) AddListener(listener event.PlayerListener) {
	p.listeners = append(p.listeners, listener)
}

// RemoveListener unregisters a previously added listener.
func (p *Player) RemoveListener(listener event.PlayerListener) {
	for i, l := range p.listeners {
		if l == listener {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// Play starts playing the given item from the beginning. When something is
// already playing or paused, the player switches to the new item.
func (p *Player) Play(item string) {
	switch p.state {
	case StateStopped:
		logrus.Infof("%s now playing: %s", p.name, item)
	case StatePlaying:
		logrus.Infof("%s already playing, switching to: %s", p.name, item)
	case StatePaused:
		logrus.Infof("%s leaving pause, playing: %s", p.name, item)
	}
	p.currentItem = item
	p.positionSeconds = 0
	p.state = StatePlaying
	p.notifyPlay(item)
}

// Stop stops playback. Stopping an already stopped player still notifies.
func (p *Player) Stop() {
	switch p.state {
	case StateStopped:
		logrus.Infof("%s already stopped", p.name)
	default:
		logrus.Infof("%s stopping", p.name)
	}
	p.state = StateStopped
	p.notifyStop(p.currentItem)
}

// Pause pauses playback. Pausing while stopped or already paused is
// rejected without notification.
func (p *Player) Pause() {
	switch p.state {
	case StatePlaying:
		logrus.Infof("%s pausing", p.name)
		p.state = StatePaused
		p.notifyPause(p.currentItem)
	case StatePaused:
		logrus.Infof("%s already paused", p.name)
	case StateStopped:
		logrus.Infof("Cannot pause %s: player is stopped", p.name)
	}
}

// Resume continues playback of the current item after a pause. Resuming
// while stopped or already playing is rejected without notification.
func (p *Player) Resume() {
	switch p.state {
	case StatePaused:
		logrus.Infof("%s resuming", p.name)
		p.state = StatePlaying
		p.notifyPlay(p.currentItem)
	case StatePlaying:
		logrus.Infof("%s already playing", p.name)
	case StateStopped:
		logrus.Infof("Cannot resume %s: player is stopped", p.name)
	}
}

// Seek moves the playback position. Rejected while stopped.
func (p *Player) Seek(seconds int) {
	if !p.state.IsActive() {
		logrus.Infof("Cannot seek %s: player is stopped", p.name)
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	logrus.Infof("%s seeking to %ds", p.name, seconds)
	p.positionSeconds = seconds
}

func (p *Player) notifyPlay(item string) {
	for _, l := range p.listeners {
		l.OnPlay(item)
	}
}

func (p *Player) notifyPause(item string) {
	for _, l := range p.listeners {
		l.OnPause(item)
	}
}

func (p *Player) notifyStop(item string) {
	for _, l := range p.listeners {
		l.OnStop(item)
	}
}
