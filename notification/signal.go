package notification

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
	"github.com/reL4team2/sel4-ipc/transfer"
)

// SendSignal delivers badge to this notification (spec.md §4.2
// "send_signal(badge)"):
//   - Idle: if a bound TCB exists and is BlockedOnReceive, deliver directly
//     (cancel its IPC, wake it, write the badge); otherwise go Active(badge).
//   - Waiting: wake the queue head.
//   - Active: OR badge into the stored message identifier.
func (n *Notification) SendSignal(badge sel4ipc.Badge) {
	switch n.state {
	case StateIdle:
		if n.boundTCB != nil && n.boundTCB.State() == tcb.ThreadStateBlockedOnReceive {
			dest := n.boundTCB
			transfer.CancelIPC(dest)
			dest.SetState(tcb.ThreadStateRunning)
			dest.Scheduler().SetThreadState(dest, tcb.ThreadStateRunning)
			dest.SetBadgeReg(badge)
			dest.Scheduler().PossibleSwitchTo(dest)
			n.Trace("notification:send:bound-deliver")
			return
		}
		n.active(badge)
		n.Debug("notification:send:active")

	case StateWaiting:
		dest := n.queue.PopFront()
		sel4ipc.Assert(dest != nil, "send_signal: Waiting notification has empty queue")
		if n.queue.Empty() {
			n.state = StateIdle
		}
		dest.SetState(tcb.ThreadStateRunning)
		dest.Scheduler().SetThreadState(dest, tcb.ThreadStateRunning)
		dest.SetBadgeReg(badge)
		dest.Scheduler().PossibleSwitchTo(dest)
		n.Trace("notification:send:rendezvous")

	case StateActive:
		n.badge |= badge
	}
}

// ReceiveSignal blocks or completes recv's wait on this notification
// (spec.md §4.2 "receive_signal(recv, is_blocking)").
func (n *Notification) ReceiveSignal(recv *tcb.TCB, isBlocking bool) {
	switch n.state {
	case StateIdle, StateWaiting:
		if !isBlocking {
			recv.SetBadgeReg(0)
			return
		}
		recv.BlockOnNotification(n)
		recv.Scheduler().SetThreadState(recv, tcb.ThreadStateBlockedOnNotification)
		n.queue.PushBack(recv)
		n.state = StateWaiting

	case StateActive:
		recv.SetBadgeReg(n.badge)
		n.state = StateIdle
	}
}

// CancelIPC implements tcb.BlockingObject for Notification: it is the
// notification-side half of cancel_ipc's BlockedOnNotification case
// (spec.md §4.3), and is also directly the spec's named cancel_signal
// operation (§4.2).
func (n *Notification) CancelIPC(t *tcb.TCB) {
	n.queue.Remove(t)
	if n.queue.Empty() {
		n.state = StateIdle
	}
	t.SetState(tcb.ThreadStateInactive)
	t.Scheduler().SetThreadState(t, tcb.ThreadStateInactive)
}

// CancelAllSignal drains every TCB waiting on this notification and
// restarts each one (§4.2 "cancel_all_signal()"). A no-op outside Waiting.
func (n *Notification) CancelAllSignal() {
	if n.state != StateWaiting {
		return
	}
	n.state = StateIdle
	waiters := n.queue.Drain()
	var sched tcb.Scheduler
	for _, t := range waiters {
		sched = t.Scheduler()
		t.SetState(tcb.ThreadStateRestart)
		t.Scheduler().SetThreadState(t, tcb.ThreadStateRestart)
		t.Scheduler().ScheduleTCB(t)
	}
	if sched != nil {
		sched.RescheduleRequired()
	}
}
