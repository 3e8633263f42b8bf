package remote

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SlotCount is the fixed number of command slots on the remote.
const SlotCount = 10

// Command is a reversible action assigned to a remote slot.
type Command interface {
	Execute()
	Undo()
}

// Remote maps slot indexes to commands. Undo history is exactly one deep:
// only the most recently executed command can be undone.
type Remote struct {
	slots       [SlotCount]Command
	lastCommand Command
}

func New() *Remote {
	remote := Remote{}
	return &remote
}

// SetCommand assigns a command to a slot. An out-of-range slot is the only
// hard failure on the remote.
func (r *Remote) SetCommand(slot int, command Command) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("invalid slot %d: must be within [0,%d)", slot, SlotCount)
	}
	r.slots[slot] = command
	return nil
}

// PressButton executes the command assigned to the slot. Pressing an
// out-of-range or unassigned slot logs and continues.
func (r *Remote) PressButton(slot int) {
	if slot < 0 || slot >= SlotCount {
		logrus.Infof("Remote: slot %d is out of range", slot)
		return
	}
	command := r.slots[slot]
	if command == nil {
		logrus.Infof("Remote: no command assigned to slot %d", slot)
		return
	}
	command.Execute()
	r.lastCommand = command
}

// PressUndo reverses the last executed command, if any.
func (r *Remote) PressUndo() {
	if r.lastCommand == nil {
		logrus.Infof("Remote: nothing to undo")
		return
	}
	r.lastCommand.Undo()
	r.lastCommand = nil
}
