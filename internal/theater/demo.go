package theater

import (
	"fmt"

	"github.com/cinebox/cinebox/internal/theater/device"
	"github.com/cinebox/cinebox/internal/theater/remote"
	"github.com/sirupsen/logrus"
)

// Remote slot assignment for the demo sequence.
const (
	watchMovieSlot = iota
	endMovieSlot
	pauseMovieSlot
	resumeMovieSlot
	popcornSlot
	screenDownSlot
)

// Run executes the scripted movie-night sequence and prints the final
// theater status. The sequence is fixed; there is no interactive input.
func (a *TheaterApp) Run() {
	logrus.Printf("Starting cinebox demo ...")

	a.registerCommands()
	a.theater.Player().AddListener(NewLogListener())

	banner("Pressing remote slot 0 (watch movie)")
	a.remoteControl.PressButton(watchMovieSlot)

	banner("Switching projector to standard mode")
	a.theater.Projector().SetMode(device.StandardMode{})
	a.theater.Projector().Info()

	banner("Pressing remote slot 2 (pause)")
	a.remoteControl.PressButton(pauseMovieSlot)

	banner("Pressing remote slot 3 (resume)")
	a.remoteControl.PressButton(resumeMovieSlot)

	banner("Pressing remote slot 4 (popcorn)")
	a.remoteControl.PressButton(popcornSlot)

	banner("Saving player snapshot and ending movie")
	snapshot := a.theater.Player().Save()
	a.remoteControl.PressButton(endMovieSlot)

	banner("Restoring player snapshot")
	a.theater.Player().Restore(snapshot)

	banner("Pressing remote slot 5 (screen down), then undo")
	a.remoteControl.PressButton(screenDownSlot)
	a.remoteControl.PressUndo()

	a.printStatus()

	logrus.Printf("Demo finished")
}

func (a *TheaterApp) registerCommands() {
	assignments := []struct {
		slot    int
		command remote.Command
	}{
		{watchMovieSlot, NewWatchMovieCommand(a.facade, a.Movie)},
		{endMovieSlot, NewEndMovieCommand(a.facade)},
		{pauseMovieSlot, NewPauseMovieCommand(a.facade)},
		{resumeMovieSlot, NewResumeMovieCommand(a.facade)},
		{popcornSlot, NewPopcornOnCommand(a.theater.Popper())},
		{screenDownSlot, NewScreenDownCommand(a.theater.Screen())},
	}
	for _, assignment := range assignments {
		if err := a.remoteControl.SetCommand(assignment.slot, assignment.command); err != nil {
			logrus.Fatalf("Unable to register command: %v", err)
		}
	}
}

func banner(message string) {
	fmt.Println(bannerStyle.Render(">>> " + message))
}

func (a *TheaterApp) printStatus() {
	player := a.theater.Player()
	status := fmt.Sprintf(
		"Player:    %s (%s, item=%q, pos=%ds)\n"+
			"Amplifier: on=%t volume=%d%%\n"+
			"Projector: on=%t mode=%s\n"+
			"Screen:    down=%t\n"+
			"Lights:    level=%d%%\n"+
			"Popper:    on=%t",
		player.Name(), player.State(), player.CurrentItem(), player.Position(),
		a.theater.Amplifier().IsOn(), a.theater.Amplifier().Volume(),
		a.theater.Projector().IsOn(), a.theater.Projector().Mode().Name(),
		a.theater.Screen().IsDown(),
		a.theater.Lights().Level(),
		a.theater.Popper().IsOn(),
	)
	fmt.Println(statusTitleStyle.Render("Theater status"))
	fmt.Println(statusBoxStyle.Render(status))
}
