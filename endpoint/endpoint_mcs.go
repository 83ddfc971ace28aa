//go:build mcs

package endpoint

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
	"github.com/reL4team2/sel4-ipc/transfer"
)

// SendIPC is the MCS send_ipc syscall. canDonate records whether the
// caller's scheduling context should follow the message to the receiver,
// either immediately (Recv branch, no existing reply-push) or later, once
// the blocked sender is eventually picked up by a receiver (spec.md §4.1,
// original_source/endpoint.rs's MCS send_ipc trait signature).
func (e *Endpoint) SendIPC(src *tcb.TCB, blocking, doCall, canGrant bool, badge sel4ipc.Badge, canGrantReply, canDonate bool) {
	switch e.state {
	case StateIdle, StateSend:
		if !blocking {
			e.Trace("endpoint:send:nb-drop")
			return
		}
		src.BlockOnSend(e, badge, canGrant, canGrantReply, doCall)
		src.SetBlockingIPCCanDonate(canDonate)
		src.Scheduler().SetThreadState(src, tcb.ThreadStateBlockedOnSend)
		e.queue.PushBack(src)
		e.state = StateSend
		e.Debug("endpoint:send:block")

	case StateRecv:
		dest := e.queue.PopFront()
		if e.queue.Empty() {
			e.state = StateIdle
		}
		transfer.DoIPCTransfer(src, dest, e, badge, canGrant)

		// dest arrived here via a plain receive, not a call-wait: any
		// reply object it was holding gets unlinked before it is
		// (possibly) handed to the new src/dest reply-push below
		// (spec.md §4.1 MCS send_ipc: "if dest had a replyObject,
		// unlink it").
		reply := dest.ReplyObject()
		if reply != nil {
			reply.Unlink(dest)
		}

		if doCall || !src.Fault().IsNull() {
			if reply != nil && (canGrant || canGrantReply) {
				reply.Push(src, dest, canDonate)
				src.SetReplyObject(reply)
				src.SetState(tcb.ThreadStateBlockedOnReply)
				src.Scheduler().SetThreadState(src, tcb.ThreadStateBlockedOnReply)
			} else {
				src.SetState(tcb.ThreadStateInactive)
				src.Scheduler().SetThreadState(src, tcb.ThreadStateInactive)
				e.Trace("endpoint:send:rendezvous-no-reply")
				return
			}
		} else if canDonate && dest.SchedContext() == nil {
			src.DonateSchedContextTo(dest)
		}

		sc := dest.SchedContext()
		sel4ipc.Assert(sc == nil || (sc.RefillReady() && sc.RefillSufficient(0)), "send_ipc: dest scheduling context not ready")
		dest.SetState(tcb.ThreadStateRunning)
		dest.Scheduler().SetThreadState(dest, tcb.ThreadStateRunning)
		if sc != nil && sc.Sporadic() && !sc.IsCurrent() {
			sc.RefillUnblockCheck()
		}
		dest.Scheduler().PossibleSwitchTo(dest)
		e.Trace("endpoint:send:rendezvous")
	}
}

// ReceiveIPC is the MCS receive_ipc syscall. reply is the reply object the
// caller looked up from its reply cap, or nil for a Recv with no reply cap
// (e.g. seL4_NBRecv). The preamble runs in the order spec.md §4.1 lists:
// cancel a stale reply, try complete_signal, then (only if isBlocking) give
// back any scheduling context a bound notification is holding. thread's own
// replyObject/back-link are only stamped once thread actually blocks below.
func (e *Endpoint) ReceiveIPC(thread *tcb.TCB, isBlocking, canGrant bool, reply tcb.ReplyRef) {
	if reply != nil {
		if stale := reply.ReplyTCB(); stale != nil && stale != thread {
			transfer.CancelIPC(stale)
		}
	}

	if transfer.CompleteSignal(thread) {
		return
	}

	if isBlocking {
		if donor, ok := thread.BoundNotification().(tcb.NotificationSchedDonor); ok && donor != nil {
			if sc := donor.DonatedSchedContext(); sc != nil {
				donor.TakeBackSchedContext()
			}
		}
	}

	switch e.state {
	case StateIdle, StateRecv:
		if !isBlocking {
			thread.SetBadgeReg(0)
			return
		}
		thread.BlockOnReceive(e, canGrant)
		if reply != nil {
			thread.SetReplyObject(reply)
			reply.Bind(thread)
		}
		thread.Scheduler().SetThreadState(thread, tcb.ThreadStateBlockedOnReceive)
		e.queue.PushBack(thread)
		e.state = StateRecv

	case StateSend:
		sender := e.queue.PopFront()
		if e.queue.Empty() {
			e.state = StateIdle
		}
		badge := sender.BlockingIPCBadge()
		senderCanGrant := sender.BlockingIPCCanGrant()
		canGrantReply := sender.BlockingIPCCanGrantReply()
		doCall := sender.BlockingIPCIsCall()
		canDonate := sender.BlockingIPCCanDonate()

		transfer.DoIPCTransfer(sender, thread, e, badge, senderCanGrant)

		if doCall || !sender.Fault().IsNull() {
			if reply != nil && (senderCanGrant || canGrantReply) {
				reply.Push(sender, thread, canDonate)
				sender.SetReplyObject(reply)
				sender.SetState(tcb.ThreadStateBlockedOnReply)
				sender.Scheduler().SetThreadState(sender, tcb.ThreadStateBlockedOnReply)
				e.Trace("endpoint:recv:rendezvous")
			} else {
				sender.SetState(tcb.ThreadStateInactive)
				sender.Scheduler().SetThreadState(sender, tcb.ThreadStateInactive)
				e.Trace("endpoint:recv:rendezvous-no-reply")
			}
			return
		}
		if canDonate && thread.SchedContext() == nil {
			sender.DonateSchedContextTo(thread)
		}

		// Non-call, non-fault send: wake the sender. The refill assertion
		// and unblock check apply on this branch only.
		sc := sender.SchedContext()
		sel4ipc.Assert(sc == nil || sc.RefillSufficient(0), "receive_ipc: sender scheduling context not sufficient")
		sender.SetState(tcb.ThreadStateRunning)
		sender.Scheduler().SetThreadState(sender, tcb.ThreadStateRunning)
		if sc != nil && sc.Sporadic() && !sc.IsCurrent() {
			sc.RefillUnblockCheck()
		}
		sender.Scheduler().PossibleSwitchTo(sender)
		e.Trace("endpoint:recv:rendezvous")
	}
}
