//go:build mcs

package transfer

import "github.com/reL4team2/sel4-ipc/tcb"

// completeSignalSchedDonation implements complete_signal's MCS donation
// step: if the notification carries a scheduling context and self has none
// of its own, donate it; then, if the (possibly newly-attached) scheduling
// context is sporadic and not the currently-running one, refresh its
// refill-unblock accounting (§4.3 "consider donating the notification's
// scheduling context to self, then on sporadic refill refresh if
// applicable").
func completeSignalSchedDonation(self *tcb.TCB, bn tcb.BoundNotification) {
	donor, ok := bn.(tcb.NotificationSchedDonor)
	if !ok {
		return
	}
	if sc := donor.DonatedSchedContext(); sc != nil && self.SchedContext() == nil {
		donor.TakeBackSchedContext() // detach from the notification first
		self.SetSchedContext(sc)
	}
	if sc := self.SchedContext(); sc != nil && sc.Sporadic() && !sc.IsCurrent() {
		sc.RefillUnblockCheck()
	}
}
