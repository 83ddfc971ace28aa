package transfer

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

func assertBlockedOnReply(receiver *tcb.TCB) {
	sel4ipc.Assert(receiver.State() == tcb.ThreadStateBlockedOnReply, "do_reply: receiver is not BlockedOnReply")
}
