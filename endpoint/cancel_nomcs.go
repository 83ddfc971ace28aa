//go:build !mcs

package endpoint

import "github.com/reL4team2/sel4-ipc/tcb"

// unlinkReplyOnCancel is a no-op outside MCS: there is no reply object to
// unlink.
func unlinkReplyOnCancel(t *tcb.TCB) {}
