package theater

import (
	"github.com/cinebox/cinebox/internal/theater/config"
	"github.com/cinebox/cinebox/internal/theater/device"
	"github.com/cinebox/cinebox/internal/theater/remote"
	"github.com/cinebox/cinebox/internal/version"
	"github.com/sirupsen/logrus"
)

// TheaterApp wires the theater, its facade and the remote control from the
// configuration.
type TheaterApp struct {
	*config.Config

	theater       *Theater
	facade        *Facade
	remoteControl *remote.Remote
}

func NewTheaterApp(configDir string, debugMode bool) *TheaterApp {

	logrus.Debugf("Creation of cinebox controller %s ...", version.AppVersion.String())

	app := &TheaterApp{
		Config: config.NewConfig(configDir, debugMode),
	}

	app.theater = NewBuilder().
		WithAmplifier(device.NewAmplifier(app.Devices.Amplifier)).
		WithPlayer(device.NewPlayer(app.Devices.Player)).
		WithProjector(device.NewProjector(app.Devices.Projector, device.WidescreenMode{})).
		WithScreen(device.NewScreen(app.Devices.Screen)).
		WithLights(device.NewLights(app.Devices.Lights)).
		WithPopper(device.NewPopper(app.Devices.Popper)).
		Build()

	app.facade = NewFacade(app.theater, app.DefaultVolume())
	app.remoteControl = remote.New()

	logrus.Debugln("Controller created")

	return app
}

func (a *TheaterApp) Theater() *Theater {
	return a.theater
}

func (a *TheaterApp) Facade() *Facade {
	return a.facade
}

func (a *TheaterApp) RemoteControl() *remote.Remote {
	return a.remoteControl
}
