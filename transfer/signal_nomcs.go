//go:build !mcs

package transfer

import "github.com/reL4team2/sel4-ipc/tcb"

// completeSignalSchedDonation is a no-op outside MCS: there is no
// scheduling context to donate.
func completeSignalSchedDonation(self *tcb.TCB, bn tcb.BoundNotification) {}
