package device

// PlayerState represents the playback state of the streaming player.
type PlayerState int

const (
	StateStopped PlayerState = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s PlayerState) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
