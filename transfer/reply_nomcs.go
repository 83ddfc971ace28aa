//go:build !mcs

package transfer

import "github.com/reL4team2/sel4-ipc/tcb"

// cancelReply implements the non-MCS BlockedOnReply branch of cancel_ipc:
// clear the fault, then delete whatever caller-cap slot is installed for
// self, if any (§4.3 "locate the caller-slot via the TCB's reply-cap mdb-
// next link; delete that slot if present").
func cancelReply(self *tcb.TCB) {
	self.ClearFault()
	self.CSpace().DeleteCallerCap(self)
}

// DoReply is the non-MCS reply syscall: sender (the replying thread) sends
// its current message to receiver, which must be BlockedOnReply
// (§4.3 "do_reply(sender, ...)").
func DoReply(sender, receiver *tcb.TCB, replySlot tcb.CapSlot, grant bool) {
	assertBlockedOnReply(receiver)

	if receiver.Fault().IsNull() {
		DoNormalTransfer(sender, receiver, nil, 0, grant)
		receiver.CSpace().DeleteOne(replySlot)
		receiver.SetState(tcb.ThreadStateRunning)
		receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateRunning)
		receiver.Scheduler().PossibleSwitchTo(receiver)
		return
	}

	receiver.CSpace().DeleteOne(replySlot)
	if DoFaultReplyTransfer(sender, receiver) {
		receiver.SetState(tcb.ThreadStateRestart)
		receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateRestart)
		receiver.Scheduler().PossibleSwitchTo(receiver)
	} else {
		receiver.SetState(tcb.ThreadStateInactive)
		receiver.Scheduler().SetThreadState(receiver, tcb.ThreadStateInactive)
	}
}
