package event

// PlayerListener receives playback notifications from the streaming player.
// Listeners are notified synchronously, in registration order.
type PlayerListener interface {
	OnPlay(item string)
	OnPause(item string)
	OnStop(item string)
}
