package device

import (
	"github.com/sirupsen/logrus"
)

type Screen struct {
	name string
	down bool
}

func NewScreen(name string) *Screen {
	screen := Screen{name: name}
	return &screen
}

func (s *Screen) Name() string {
	return s.name
}

func (s *Screen) Down() {
	if s.down {
		logrus.Infof("%s already down", s.name)
		return
	}
	s.down = true
	logrus.Infof("%s lowered", s.name)
}

func (s *Screen) Up() {
	if !s.down {
		logrus.Infof("%s already up", s.name)
		return
	}
	s.down = false
	logrus.Infof("%s raised", s.name)
}

func (s *Screen) IsDown() bool {
	return s.down
}
