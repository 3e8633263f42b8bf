package theater

import (
	"github.com/cinebox/cinebox/internal/theater/device"
	"github.com/cinebox/cinebox/internal/theater/remote"
	"github.com/sirupsen/logrus"
)

var (
	_ remote.Command = (*WatchMovieCommand)(nil)
	_ remote.Command = (*EndMovieCommand)(nil)
	_ remote.Command = (*PauseMovieCommand)(nil)
	_ remote.Command = (*ResumeMovieCommand)(nil)
	_ remote.Command = (*PopcornOnCommand)(nil)
	_ remote.Command = (*ScreenDownCommand)(nil)
)

type WatchMovieCommand struct {
	facade *Facade
	movie  string
}

func NewWatchMovieCommand(facade *Facade, movie string) *WatchMovieCommand {
	return &WatchMovieCommand{facade: facade, movie: movie}
}

func (c *WatchMovieCommand) Execute() {
	c.facade.WatchMovie(c.movie)
}

func (c *WatchMovieCommand) Undo() {
	c.facade.EndMovie()
}

type EndMovieCommand struct {
	facade *Facade
}

func NewEndMovieCommand(facade *Facade) *EndMovieCommand {
	return &EndMovieCommand{facade: facade}
}

func (c *EndMovieCommand) Execute() {
	c.facade.EndMovie()
}

func (c *EndMovieCommand) Undo() {
	logrus.Infof("Cannot undo ending the movie")
}

type PauseMovieCommand struct {
	facade *Facade
}

func NewPauseMovieCommand(facade *Facade) *PauseMovieCommand {
	return &PauseMovieCommand{facade: facade}
}

func (c *PauseMovieCommand) Execute() {
	c.facade.PauseMovie()
}

func (c *PauseMovieCommand) Undo() {
	c.facade.ResumeMovie()
}

type ResumeMovieCommand struct {
	facade *Facade
}

func NewResumeMovieCommand(facade *Facade) *ResumeMovieCommand {
	return &ResumeMovieCommand{facade: facade}
}

func (c *ResumeMovieCommand) Execute() {
	c.facade.ResumeMovie()
}

func (c *ResumeMovieCommand) Undo() {
	c.facade.PauseMovie()
}

type PopcornOnCommand struct {
	popper *device.Popper
}

func NewPopcornOnCommand(popper *device.Popper) *PopcornOnCommand {
	return &PopcornOnCommand{popper: popper}
}

func (c *PopcornOnCommand) Execute() {
	c.popper.On()
	c.popper.Pop()
}

func (c *PopcornOnCommand) Undo() {
	c.popper.Off()
}

type ScreenDownCommand struct {
	screen *device.Screen
}

func NewScreenDownCommand(screen *device.Screen) *ScreenDownCommand {
	return &ScreenDownCommand{screen: screen}
}

func (c *ScreenDownCommand) Execute() {
	c.screen.Down()
}

func (c *ScreenDownCommand) Undo() {
	c.screen.Up()
}
