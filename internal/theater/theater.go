package theater

import (
	"github.com/cinebox/cinebox/internal/theater/device"
)

// Theater groups the six devices of the installation.
type Theater struct {
	amplifier *device.Amplifier
	player    *device.Player
	projector *device.Projector
	screen    *device.Screen
	lights    *device.Lights
	popper    *device.Popper
}

func (t *Theater) Amplifier() *device.Amplifier {
	return t.amplifier
}

func (t *Theater) Player() *device.Player {
	return t.player
}

func (t *Theater) Projector() *device.Projector {
	return t.projector
}

func (t *Theater) Screen() *device.Screen {
	return t.screen
}

func (t *Theater) Lights() *device.Lights {
	return t.lights
}

func (t *Theater) Popper() *device.Popper {
	return t.popper
}
