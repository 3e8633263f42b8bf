package device

import (
	"github.com/sirupsen/logrus"
)

const volumeStep = 4

// Amplifier drives the theater sound. Volume is clamped to 0..100.
type Amplifier struct {
	name   string
	on     bool
	volume int
	player *Player
}

func NewAmplifier(name string) *Amplifier {
	amplifier := Amplifier{name: name}
	return &amplifier
}

func (a *Amplifier) Name() string {
	return a.name
}

func (a *Amplifier) On() {
	a.on = true
	logrus.Infof("%s on", a.name)
}

func (a *Amplifier) Off() {
	a.on = false
	logrus.Infof("%s off", a.name)
}

func (a *Amplifier) IsOn() bool {
	return a.on
}

// ConnectPlayer selects the streaming player as the active input.
func (a *Amplifier) ConnectPlayer(player *Player) {
	a.player = player
	logrus.Infof("%s connected to player %s", a.name, player.Name())
}

func (a *Amplifier) Player() *Player {
	return a.player
}

func (a *Amplifier) Volume() int {
	return a.volume
}

func (a *Amplifier) SetVolume(volume int) {
	a.setVolume(volume)
}

func (a *Amplifier) IncreaseVolume() {
	a.setVolume(a.volume + volumeStep)
}

func (a *Amplifier) DecreaseVolume() {
	a.setVolume(a.volume - volumeStep)
}

func (a *Amplifier) setVolume(volume int) {
	if volume > 100 {
		volume = 100
	}
	if volume < 0 {
		volume = 0
	}
	a.volume = volume
	logrus.Infof("%s volume set to %d%%", a.name, a.volume)
}
