package transfer

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// CancelIPC is the central cleanup dispatch invoked when a thread is being
// destroyed or restarted (§4.3 "cancel_ipc(self)"). It dispatches purely on
// self's current thread state; a thread not currently blocked is a no-op.
func CancelIPC(self *tcb.TCB) {
	switch self.State() {
	case tcb.ThreadStateBlockedOnSend, tcb.ThreadStateBlockedOnReceive:
		bo := self.BlockingObject()
		sel4ipc.Assert(bo != nil, "cancel_ipc: send/receive-blocked thread has no blocking object")
		bo.CancelIPC(self)
	case tcb.ThreadStateBlockedOnNotification:
		bo := self.BlockingObject()
		sel4ipc.Assert(bo != nil, "cancel_ipc: notification-blocked thread has no blocking object")
		bo.CancelIPC(self)
	case tcb.ThreadStateBlockedOnReply:
		cancelReply(self)
	default:
		// Running, Restart, Inactive: nothing queued anywhere, no-op.
	}
}
