package device

import (
	"github.com/sirupsen/logrus"
)

type Projector struct {
	name string
	on   bool
	mode VideoMode
}

func NewProjector(name string, mode VideoMode) *Projector {
	projector := Projector{name: name, mode: mode}
	return &projector
}

func (p *Projector) Name() string {
	return p.name
}

func (p *Projector) On() {
	p.on = true
	logrus.Infof("%s powered on", p.name)
}

func (p *Projector) Off() {
	p.on = false
	logrus.Infof("%s powered off", p.name)
}

func (p *Projector) IsOn() bool {
	return p.on
}

// SetMode switches the display policy and applies it immediately.
func (p *Projector) SetMode(mode VideoMode) {
	p.mode = mode
	p.mode.Apply(p)
}

func (p *Projector) Mode() VideoMode {
	return p.mode
}

func (p *Projector) Info() {
	logrus.Infof("%s mode=%s", p.name, p.mode.Name())
}
