//go:build !mcs

package endpoint

import "github.com/reL4team2/sel4-ipc/tcb"

// restartFromCancel restarts a thread that was waiting in a queue cancelled
// wholesale (cancel_all_ipc/cancel_badged_sends, §4.1): outside MCS, every
// such thread simply becomes Restart and re-joins the scheduler's ready
// queue.
func restartFromCancel(t *tcb.TCB) {
	t.SetState(tcb.ThreadStateRestart)
	t.Scheduler().SetThreadState(t, tcb.ThreadStateRestart)
	t.Scheduler().ScheduleTCB(t)
}
