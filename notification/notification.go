// Package notification implements the Notification kernel object: a
// one-shot, lossy asynchronous signal with an optional bound TCB (spec.md
// §4.2). Unlike an Endpoint, a Notification's queue only ever holds
// receivers — senders never block.
package notification

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// State is the Notification's state-machine tag (spec.md §3 "Notification").
type State uint8

const (
	StateIdle State = iota
	StateWaiting
	StateActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWaiting:
		return "Waiting"
	case StateActive:
		return "Active"
	default:
		return "State(invalid)"
	}
}

// ntfnCore holds the fields and methods common to both MCS and non-MCS
// builds. The build-tag files (notification_mcs.go / notification_nomcs.go)
// embed it into the exported Notification type, adding only the MCS
// scheduling-context field.
type ntfnCore struct {
	id    uint64
	state State
	badge sel4ipc.Badge
	queue tcb.Queue

	boundTCB *tcb.TCB

	sel4ipc.Logger
}

// State returns the notification's current state.
func (n *ntfnCore) State() State { return n.state }

// Badge returns the pending signal badge. Only meaningful in StateActive.
func (n *ntfnCore) Badge() sel4ipc.Badge { return n.badge }

// Empty reports whether the notification's queue holds no TCBs.
func (n *ntfnCore) Empty() bool { return n.queue.Empty() }

// IsActive implements tcb.BoundNotification (§4.3 complete_signal).
func (n *ntfnCore) IsActive() bool { return n.state == StateActive }

// ActiveBadge implements tcb.BoundNotification: the badge complete_signal
// delivers to a bound TCB's badge register.
func (n *ntfnCore) ActiveBadge() sel4ipc.Badge { return n.badge }

// ClearToIdle implements tcb.BoundNotification: complete_signal's consuming
// side effect once it has copied ActiveBadge() out.
func (n *ntfnCore) ClearToIdle() {
	n.state = StateIdle
	n.badge = 0
}

// active sets state Active and stores badge as the pending message
// identifier (spec.md §4.2 "active(badge)").
func (n *ntfnCore) active(badge sel4ipc.Badge) {
	n.state = StateActive
	n.badge = badge
}
