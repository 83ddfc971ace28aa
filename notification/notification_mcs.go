//go:build mcs

package notification

import "github.com/reL4team2/sel4-ipc/tcb"

// Notification adds the MCS scheduling-context field to ntfnCore: an
// optional scheduling context donated to whichever TCB eventually consumes
// this notification's signal via complete_signal (spec.md §3 "(MCS)
// Scheduling context").
type Notification struct {
	ntfnCore

	schedContext tcb.SchedContextRef
}

// New returns an Idle notification identified by id.
func New(id uint64) *Notification {
	n := &Notification{}
	n.id = id
	n.state = StateIdle
	return n
}

// SchedContext returns the scheduling context available for donation, or
// nil.
func (n *Notification) SchedContext() tcb.SchedContextRef { return n.schedContext }

// SetSchedContext attaches sc as the scheduling context this notification
// offers on signal delivery (fixture/binding hook; no dedicated operation
// name in spec.md beyond "(MCS) Scheduling context").
func (n *Notification) SetSchedContext(sc tcb.SchedContextRef) { n.schedContext = sc }

// DonatedSchedContext implements tcb.NotificationSchedDonor.
func (n *Notification) DonatedSchedContext() tcb.SchedContextRef { return n.schedContext }

// TakeBackSchedContext implements tcb.NotificationSchedDonor: once
// complete_signal has attached n.schedContext to the consuming TCB, the
// notification no longer offers it.
func (n *Notification) TakeBackSchedContext() { n.schedContext = nil }
