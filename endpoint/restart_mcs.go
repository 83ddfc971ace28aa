//go:build mcs

package endpoint

import "github.com/reL4team2/sel4-ipc/tcb"

// restartFromCancel applies MCS's fault-vs-null restart policy to a thread
// pulled out of a wholesale-cancelled queue (cancel_all_ipc/
// cancel_badged_sends, §4.1): a thread with no pending fault restarts and is
// given a scheduling chance; a thread with a pending fault is left Inactive
// for its fault handler to deal with instead.
func restartFromCancel(t *tcb.TCB) {
	if !t.Fault().IsNull() {
		t.SetState(tcb.ThreadStateInactive)
		t.Scheduler().SetThreadState(t, tcb.ThreadStateInactive)
		return
	}
	t.SetState(tcb.ThreadStateRestart)
	t.Scheduler().SetThreadState(t, tcb.ThreadStateRestart)
	if sc := t.SchedContext(); sc != nil && sc.Sporadic() && !sc.IsCurrent() {
		sc.RefillUnblockCheck()
	}
	t.Scheduler().PossibleSwitchTo(t)
}
