package device

import (
	"github.com/sirupsen/logrus"
)

// VideoMode is a display policy applied by the projector. The variant set
// is closed: widescreen and standard.
type VideoMode interface {
	Name() string
	Apply(p *Projector)
}

type WidescreenMode struct{}

func (WidescreenMode) Name() string {
	return "WIDESCREEN (2.39:1)"
}

func (WidescreenMode) Apply(p *Projector) {
	logrus.Infof("%s set to widescreen mode, letterboxing applied", p.Name())
}

type StandardMode struct{}

func (StandardMode) Name() string {
	return "STANDARD (16:9)"
}

func (StandardMode) Apply(p *Projector) {
	logrus.Infof("%s set to standard 16:9 mode", p.Name())
}
