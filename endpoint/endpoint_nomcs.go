//go:build !mcs

package endpoint

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
	"github.com/reL4team2/sel4-ipc/transfer"
)

// SendIPC is the non-MCS send_ipc syscall (spec.md §4.1). src is the thread
// currently executing the syscall.
func (e *Endpoint) SendIPC(src *tcb.TCB, blocking, doCall, canGrant bool, badge sel4ipc.Badge, canGrantReply bool) {
	switch e.state {
	case StateIdle, StateSend:
		if !blocking {
			// A non-blocking send against an endpoint with no waiting
			// receiver is a silent drop (spec.md §9 open question: this is
			// the intended semantics, preserved verbatim).
			e.Trace("endpoint:send:nb-drop")
			return
		}
		src.BlockOnSend(e, badge, canGrant, canGrantReply, doCall)
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

		dest.SetState(tcb.ThreadStateRunning)
		dest.Scheduler().SetThreadState(dest, tcb.ThreadStateRunning)
		dest.Scheduler().PossibleSwitchTo(dest)

		if doCall {
			if canGrant || canGrantReply {
				dest.CSpace().SetupCallerCap(src, dest, dest.BlockingIPCCanGrant())
				src.SetState(tcb.ThreadStateBlockedOnReply)
				src.Scheduler().SetThreadState(src, tcb.ThreadStateBlockedOnReply)
			} else {
				src.SetState(tcb.ThreadStateInactive)
				src.Scheduler().SetThreadState(src, tcb.ThreadStateInactive)
			}
		}
		e.Trace("endpoint:send:rendezvous")
	}
}

// ReceiveIPC is the non-MCS receive_ipc syscall.
func (e *Endpoint) ReceiveIPC(thread *tcb.TCB, isBlocking, canGrant bool) {
	if transfer.CompleteSignal(thread) {
		return
	}

	switch e.state {
	case StateIdle, StateRecv:
		if !isBlocking {
			thread.SetBadgeReg(0) // NBReceive with no message (§7).
			return
		}
		thread.BlockOnReceive(e, canGrant)
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

		transfer.DoIPCTransfer(sender, thread, e, badge, senderCanGrant)

		if doCall {
			if senderCanGrant || canGrantReply {
				thread.CSpace().SetupCallerCap(sender, thread, canGrant)
				sender.SetState(tcb.ThreadStateBlockedOnReply)
				sender.Scheduler().SetThreadState(sender, tcb.ThreadStateBlockedOnReply)
			} else {
				sender.SetState(tcb.ThreadStateInactive)
				sender.Scheduler().SetThreadState(sender, tcb.ThreadStateInactive)
			}
		} else {
			sender.SetState(tcb.ThreadStateRunning)
			sender.Scheduler().SetThreadState(sender, tcb.ThreadStateRunning)
			sender.Scheduler().PossibleSwitchTo(sender)
		}
		e.Trace("endpoint:recv:rendezvous")
	}
}
