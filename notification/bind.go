package notification

import "github.com/reL4team2/sel4-ipc/tcb"

// BindTCB sets the bound-TCB pointer (spec.md §4.2 "bind_tcb"). The
// reciprocal pointer on t (t.SetBoundNotification) is the caller's
// responsibility, mirroring bind_notification's two independent writes.
func (n *Notification) BindTCB(t *tcb.TCB) {
	n.boundTCB = t
}

// UnbindTCB clears the bound-TCB pointer (§4.2 "unbind_tcb").
func (n *Notification) UnbindTCB() {
	n.boundTCB = nil
}

// SafeUnbindTCB clears the bound-TCB pointer and, if one was set, also
// clears that TCB's reciprocal bound-notification pointer (§4.2
// "safe_unbind_tcb").
func (n *Notification) SafeUnbindTCB() {
	t := n.boundTCB
	n.UnbindTCB()
	if t != nil {
		t.UnbindNotification()
	}
}

// BoundTCB returns the currently bound TCB, or nil.
func (n *Notification) BoundTCB() *tcb.TCB { return n.boundTCB }
