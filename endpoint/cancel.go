package endpoint

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// CancelIPC implements tcb.BlockingObject for Endpoint: it unlinks t from
// whichever side of the queue it is on and leaves it Inactive (spec.md
// §4.3 "cancel_ipc" BlockedOnSend/BlockedOnReceive case).
func (e *Endpoint) CancelIPC(t *tcb.TCB) {
	e.queue.Remove(t)
	if e.queue.Empty() {
		e.state = StateIdle
	}
	unlinkReplyOnCancel(t)
	t.SetState(tcb.ThreadStateInactive)
	t.Scheduler().SetThreadState(t, tcb.ThreadStateInactive)
}

// CancelAllIPC drains every TCB queued on this endpoint, regardless of
// whether they were sending or receiving, and hands each one to
// restartFromCancel (§4.1 "cancel_all_ipc"): Restart, except that the MCS
// build leaves a thread with a pending fault Inactive. The endpoint is flipped to Idle before the walk so a
// concurrent observer never sees a partially-drained non-Idle endpoint.
func (e *Endpoint) CancelAllIPC() {
	if e.state == StateIdle {
		return
	}
	e.state = StateIdle
	waiters := e.queue.Drain()
	var sched tcb.Scheduler
	for _, t := range waiters {
		sched = t.Scheduler()
		restartFromCancel(t)
	}
	if sched != nil {
		sched.RescheduleRequired()
	}
}

// CancelBadgedSends cancels only the blocked senders whose stored badge
// equals badge, leaving unrelated senders queued (§4.1
// "cancel_badged_sends"). A no-op outside the Send state (spec.md: "Only
// meaningful in Send").
func (e *Endpoint) CancelBadgedSends(badge sel4ipc.Badge) {
	if e.state != StateSend {
		return
	}
	waiters := e.queue.Drain()
	e.state = StateIdle

	var sched tcb.Scheduler
	kept := waiters[:0]
	for _, t := range waiters {
		sched = t.Scheduler()
		if t.BlockingIPCBadge() == badge {
			restartFromCancel(t)
			continue
		}
		kept = append(kept, t)
	}
	for _, t := range kept {
		e.queue.PushBack(t)
	}
	if !e.queue.Empty() {
		e.state = StateSend
	}
	if sched != nil {
		sched.RescheduleRequired()
	}
}
