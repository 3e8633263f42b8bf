package device

import (
	"github.com/sirupsen/logrus"
)

type Popper struct {
	name string
	on   bool
}

func NewPopper(name string) *Popper {
	popper := Popper{name: name}
	return &popper
}

func (p *Popper) Name() string {
	return p.name
}

func (p *Popper) On() {
	p.on = true
	logrus.Infof("%s on", p.name)
}

func (p *Popper) Off() {
	p.on = false
	logrus.Infof("%s off", p.name)
}

func (p *Popper) IsOn() bool {
	return p.on
}

// Pop only works while the popper is on.
func (p *Popper) Pop() {
	if !p.on {
		logrus.Infof("%s is off, cannot pop", p.name)
		return
	}
	logrus.Infof("%s popping popcorn!", p.name)
}
