package theater

import (
	"github.com/cinebox/cinebox/internal/theater/event"
	"github.com/sirupsen/logrus"
)

var _ event.PlayerListener = (*LogListener)(nil)

// LogListener traces player notifications on the console.
type LogListener struct{}

func NewLogListener() *LogListener {
	return &LogListener{}
}

func (l *LogListener) OnPlay(item string) {
	logrus.Infof("Player event: started %q", item)
}

func (l *LogListener) OnPause(item string) {
	logrus.Infof("Player event: paused %q", item)
}

func (l *LogListener) OnStop(item string) {
	logrus.Infof("Player event: stopped %q", item)
}
