package transfer

import "github.com/reL4team2/sel4-ipc/tcb"

// CompleteSignal consumes a pending signal on self's bound notification, if
// any, writing its badge to self's badge register and clearing the
// notification back to Idle (§4.3 "complete_signal(self) -> bool"). It
// reports whether a signal was actually consumed.
func CompleteSignal(self *tcb.TCB) bool {
	bn := self.BoundNotification()
	if bn == nil || !bn.IsActive() {
		return false
	}
	self.SetBadgeReg(bn.ActiveBadge())
	bn.ClearToIdle()
	completeSignalSchedDonation(self, bn)
	return true
}
