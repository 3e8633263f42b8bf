package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind string
	item string
}

type recorderListener struct {
	events []recordedEvent
}

func (r *recorderListener) OnPlay(item string) {
	r.events = append(r.events, recordedEvent{"play", item})
}

func (r *recorderListener) OnPause(item string) {
	r.events = append(r.events, recordedEvent{"pause", item})
}

func (r *recorderListener) OnStop(item string) {
	r.events = append(r.events, recordedEvent{"stop", item})
}

func newRecordedPlayer() (*Player, *recorderListener) {
	player := NewPlayer("Test Player")
	recorder := &recorderListener{}
	player.AddListener(recorder)
	return player, recorder
}

func TestPlayer_TransitionTable(t *testing.T) {
	tests := []struct {
		name       string
		ops        func(p *Player)
		wantState  PlayerState
		wantItem   string
		wantPos    int
		wantEvents []recordedEvent
	}{
		{
			name:       "initial state is stopped",
			ops:        func(p *Player) {},
			wantState:  StateStopped,
			wantEvents: nil,
		},
		{
			name:       "play from stopped",
			ops:        func(p *Player) { p.Play("Matrix") },
			wantState:  StatePlaying,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}},
		},
		{
			name:       "stop while stopped still notifies",
			ops:        func(p *Player) { p.Stop() },
			wantState:  StateStopped,
			wantEvents: []recordedEvent{{"stop", ""}},
		},
		{
			name:       "pause while stopped is rejected",
			ops:        func(p *Player) { p.Pause() },
			wantState:  StateStopped,
			wantEvents: nil,
		},
		{
			name:       "resume while stopped is rejected",
			ops:        func(p *Player) { p.Resume() },
			wantState:  StateStopped,
			wantEvents: nil,
		},
		{
			name: "play while playing switches item and resets position",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Seek(42)
				p.Play("Inception")
			},
			wantState:  StatePlaying,
			wantItem:   "Inception",
			wantPos:    0,
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"play", "Inception"}},
		},
		{
			name: "stop while playing",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Stop()
			},
			wantState:  StateStopped,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"stop", "Matrix"}},
		},
		{
			name: "pause while playing",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Pause()
			},
			wantState:  StatePaused,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}},
		},
		{
			name: "resume while playing is rejected",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Resume()
			},
			wantState:  StatePlaying,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}},
		},
		{
			name: "play while paused switches item",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Pause()
				p.Play("Inception")
			},
			wantState:  StatePlaying,
			wantItem:   "Inception",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}, {"play", "Inception"}},
		},
		{
			name: "stop while paused",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Pause()
				p.Stop()
			},
			wantState:  StateStopped,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}, {"stop", "Matrix"}},
		},
		{
			name: "pause while paused is rejected",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Pause()
				p.Pause()
			},
			wantState:  StatePaused,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}},
		},
		{
			name: "resume while paused",
			ops: func(p *Player) {
				p.Play("Matrix")
				p.Pause()
				p.Resume()
			},
			wantState:  StatePlaying,
			wantItem:   "Matrix",
			wantEvents: []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}, {"play", "Matrix"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, recorder := newRecordedPlayer()
			tt.ops(player)
			assert.Equal(t, tt.wantState, player.State())
			assert.Equal(t, tt.wantItem, player.CurrentItem())
			assert.Equal(t, tt.wantPos, player.Position())
			assert.Equal(t, tt.wantEvents, recorder.events)
		})
	}
}

func TestPlayer_Seek(t *testing.T) {
	player, recorder := newRecordedPlayer()

	// Rejected while stopped
	player.Seek(30)
	assert.Equal(t, 0, player.Position())

	player.Play("Matrix")
	player.Seek(30)
	assert.Equal(t, 30, player.Position())

	// Paused keeps the position seekable
	player.Pause()
	player.Seek(45)
	assert.Equal(t, 45, player.Position())

	// Negative positions clamp to zero
	player.Seek(-5)
	assert.Equal(t, 0, player.Position())

	// Seeking never notifies
	assert.Equal(t, []recordedEvent{{"play", "Matrix"}, {"pause", "Matrix"}}, recorder.events)
}

func TestPlayer_ListenerOrder(t *testing.T) {
	player := NewPlayer("Test Player")

	var order []string
	first := &orderListener{id: "first", order: &order}
	second := &orderListener{id: "second", order: &order}
	player.AddListener(first)
	player.AddListener(second)

	player.Play("Matrix")
	require.Equal(t, []string{"first", "second"}, order)

	order = order[:0]
	player.RemoveListener(first)
	player.Pause()
	assert.Equal(t, []string{"second"}, order)
}

type orderListener struct {
	id    string
	order *[]string
}

func (l *orderListener) OnPlay(string)  { *l.order = append(*l.order, l.id) }
func (l *orderListener) OnPause(string) { *l.order = append(*l.order, l.id) }
func (l *orderListener) OnStop(string)  { *l.order = append(*l.order, l.id) }

func TestPlayer_RemoveUnknownListener(t *testing.T) {
	player, recorder := newRecordedPlayer()
	player.RemoveListener(&recorderListener{})
	player.Play("Matrix")
	assert.Equal(t, []recordedEvent{{"play", "Matrix"}}, recorder.events)
}

func TestPlayer_SaveDoesNotMutate(t *testing.T) {
	player, recorder := newRecordedPlayer()
	player.Play("Matrix")
	player.Seek(12)

	_ = player.Save()

	assert.Equal(t, StatePlaying, player.State())
	assert.Equal(t, "Matrix", player.CurrentItem())
	assert.Equal(t, 12, player.Position())
	assert.Equal(t, []recordedEvent{{"play", "Matrix"}}, recorder.events)
}

func TestPlayer_RestoreImmediatelyIsIdempotent(t *testing.T) {
	player, recorder := newRecordedPlayer()
	player.Play("Matrix")
	player.Seek(12)
	player.Pause()

	snapshot := player.Save()
	player.Restore(snapshot)

	assert.Equal(t, StatePaused, player.State())
	assert.Equal(t, "Matrix", player.CurrentItem())
	assert.Equal(t, 12, player.Position())

	// Restore always fires the notification matching the tag, even when the
	// player is already in that state.
	assert.Equal(t, []recordedEvent{
		{"play", "Matrix"},
		{"pause", "Matrix"},
		{"pause", "Matrix"},
	}, recorder.events)
}

func TestPlayer_SnapshotIsolation(t *testing.T) {
	player, _ := newRecordedPlayer()
	player.Play("Matrix")
	player.Seek(10)

	snapshot := player.Save()
	require.NotNil(t, snapshot)

	player.Play("Inception")
	player.Seek(99)
	player.Pause()

	assert.Equal(t, "Matrix", snapshot.item)
	assert.Equal(t, 10, snapshot.positionSeconds)
	assert.Equal(t, StatePlaying, snapshot.state)
}

func TestPlayer_RestorePausedSnapshotAfterStop(t *testing.T) {
	player, recorder := newRecordedPlayer()
	player.Play("Matrix")
	player.Pause()

	snapshot := player.Save()
	player.Stop()

	recorder.events = nil
	player.Restore(snapshot)

	assert.Equal(t, StatePaused, player.State())
	assert.Equal(t, "Matrix", player.CurrentItem())
	assert.Equal(t, 0, player.Position())
	assert.Equal(t, []recordedEvent{{"pause", "Matrix"}}, recorder.events)
}

func TestPlayer_RestoreStoppedSnapshotNotifiesStop(t *testing.T) {
	player, recorder := newRecordedPlayer()
	snapshot := player.Save()
	player.Play("Matrix")

	recorder.events = nil
	player.Restore(snapshot)

	assert.Equal(t, StateStopped, player.State())
	assert.Equal(t, "", player.CurrentItem())
	assert.Equal(t, []recordedEvent{{"stop", ""}}, recorder.events)
}

func TestPlayer_RestoreNilIsNoop(t *testing.T) {
	player, recorder := newRecordedPlayer()
	player.Play("Matrix")

	recorder.events = nil
	player.Restore(nil)

	assert.Equal(t, StatePlaying, player.State())
	assert.Equal(t, "Matrix", player.CurrentItem())
	assert.Empty(t, recorder.events)
}
