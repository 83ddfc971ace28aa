//go:build mcs

package transfer

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// cancelReply implements the MCS BlockedOnReply branch of cancel_ipc: hand
// off to the reply object's own removal (reply_remove_tcb, §4.3).
func cancelReply(self *tcb.TCB) {
	reply := self.ReplyObject()
	if reply == nil {
		return
	}
	reply.Remove(self)
	self.SetReplyObject(nil)
	self.ClearFault()
}

// DoReply is the MCS reply syscall. self is the thread invoking reply() (the
// callee holding the reply cap); reply is the reply object it holds. A
// reply whose replyTCB has already gone away (or isn't BlockedOnReply) is a
// silent no-op (§8 scenario S6).
func DoReply(self *tcb.TCB, reply tcb.ReplyRef, grant bool) {
	receiver := reply.ReplyTCB()
	if receiver == nil || receiver.State() != tcb.ThreadStateBlockedOnReply {
		return
	}
	reply.Remove(receiver)

	if sc := receiver.SchedContext(); sc != nil && sc.Sporadic() && !sc.IsCurrent() {
		sc.RefillUnblockCheck()
	}

	var runnable bool
	if receiver.Fault().IsNull() {
		DoNormalTransfer(self, receiver, nil, 0, grant)
		receiver.SetState(tcb.ThreadStateRunning)
		receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateRunning)
		runnable = true
	} else {
		runnable = DoFaultReplyTransfer(self, receiver)
		if runnable {
			receiver.SetState(tcb.ThreadStateRestart)
			receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateRestart)
		} else {
			receiver.SetState(tcb.ThreadStateInactive)
			receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateInactive)
		}
	}
	receiver.ClearFault()

	if !runnable {
		return
	}

	sc := receiver.SchedContext()
	switch {
	case sc != nil && sc.RefillReady() && sc.RefillSufficient(0):
		receiver.Scheduler().PossibleSwitchTo(receiver)
	case sc != nil && receiver.ValidTimeoutHandler() && self.Fault().Tag != sel4ipc.FaultTimeout:
		receiver.SetFault(sel4ipc.Fault{Tag: sel4ipc.FaultTimeout, TimeoutBadge: sc.Badge(), ScConsumed: sc.ScheduledConsumed()})
		receiver.TimeoutHandler().HandleTimeout(receiver)
	case sc != nil:
		sc.Postpone()
	}
}
