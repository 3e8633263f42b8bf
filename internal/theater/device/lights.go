package device

import (
	"github.com/sirupsen/logrus"
)

// Lights dims between 0 (off) and 100 (full on).
type Lights struct {
	name  string
	level int
}

func NewLights(name string) *Lights {
	lights := Lights{name: name, level: 100}
	return &lights
}

func (l *Lights) Name() string {
	return l.name
}

func (l *Lights) On() {
	l.level = 100
	logrus.Infof("%s on", l.name)
}

func (l *Lights) Off() {
	l.level = 0
	logrus.Infof("%s off", l.name)
}

func (l *Lights) Dim(percent int) {
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	l.level = percent
	logrus.Infof("%s dimming to %d%%", l.name, percent)
}

func (l *Lights) Level() int {
	return l.level
}
