//go:build mcs

package endpoint

import "github.com/reL4team2/sel4-ipc/tcb"

// unlinkReplyOnCancel severs any reply object bound to t as part of
// cancel_ipc (spec.md §4.1 "cancel_ipc(tcb): ... (MCS) unlink any reply
// object bound to tcb").
func unlinkReplyOnCancel(t *tcb.TCB) {
	if reply := t.ReplyObject(); reply != nil {
		reply.Unlink(t)
		t.SetReplyObject(nil)
	}
}
