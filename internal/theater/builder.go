package theater

import (
	"github.com/cinebox/cinebox/internal/theater/device"
)

// Builder assembles a Theater. Any omitted device is replaced by a named
// default at build time.
type Builder struct {
	amplifier *device.Amplifier
	player    *device.Player
	projector *device.Projector
	screen    *device.Screen
	lights    *device.Lights
	popper    *device.Popper
}

func NewBuilder() *Builder {
	builder := Builder{}
	return &builder
}

func (b *Builder) WithAmplifier(amplifier *device.Amplifier) *Builder {
	b.amplifier = amplifier
	return b
}

func (b *Builder) WithPlayer(player *device.Player) *Builder {
	b.player = player
	return b
}

func (b *Builder) WithProjector(projector *device.Projector) *Builder {
	b.projector = projector
	return b
}

func (b *Builder) WithScreen(screen *device.Screen) *Builder {
	b.screen = screen
	return b
}

func (b *Builder) WithLights(lights *device.Lights) *Builder {
	b.lights = lights
	return b
}

func (b *Builder) WithPopper(popper *device.Popper) *Builder {
	b.popper = popper
	return b
}

func (b *Builder) Build() *Theater {
	if b.amplifier == nil {
		b.amplifier = device.NewAmplifier("Default Amp")
	}
	if b.player == nil {
		b.player = device.NewPlayer("Default Player")
	}
	if b.projector == nil {
		b.projector = device.NewProjector("Default Projector", device.WidescreenMode{})
	}
	if b.screen == nil {
		b.screen = device.NewScreen("Default Screen")
	}
	if b.lights == nil {
		b.lights = device.NewLights("Default Lights")
	}
	if b.popper == nil {
		b.popper = device.NewPopper("Default Popper")
	}
	return &Theater{
		amplifier: b.amplifier,
		player:    b.player,
		projector: b.projector,
		screen:    b.screen,
		lights:    b.lights,
		popper:    b.popper,
	}
}
