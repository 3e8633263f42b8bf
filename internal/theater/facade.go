package theater

import (
	"github.com/cinebox/cinebox/internal/theater/device"
	"github.com/sirupsen/logrus"
)

// Facade sequences the devices for the usual movie-night operations. The
// call order within each operation is fixed.
type Facade struct {
	theater       *Theater
	defaultVolume int
}

func NewFacade(theater *Theater, defaultVolume int) *Facade {
	facade := Facade{
		theater:       theater,
		defaultVolume: defaultVolume,
	}
	return &facade
}

func (f *Facade) WatchMovie(movie string) {
	logrus.Infof("Get ready to watch a movie ...")
	f.theater.Popper().On()
	f.theater.Popper().Pop()
	f.theater.Lights().Dim(20)
	f.theater.Screen().Down()
	f.theater.Projector().On()
	f.theater.Projector().SetMode(device.WidescreenMode{})
	f.theater.Amplifier().On()
	f.theater.Amplifier().ConnectPlayer(f.theater.Player())
	f.theater.Amplifier().SetVolume(f.defaultVolume)
	f.theater.Player().Play(movie)
}

func (f *Facade) EndMovie() {
	logrus.Infof("Shutting movie theater down ...")
	f.theater.Popper().Off()
	f.theater.Lights().On()
	f.theater.Screen().Up()
	f.theater.Projector().Off()
	f.theater.Amplifier().Off()
	f.theater.Player().Stop()
}

func (f *Facade) PauseMovie() {
	f.theater.Player().Pause()
	f.theater.Lights().Dim(50)
}

func (f *Facade) ResumeMovie() {
	f.theater.Player().Resume()
	f.theater.Lights().Dim(10)
}
