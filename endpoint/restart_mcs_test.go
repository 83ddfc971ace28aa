//go:build mcs

package endpoint_test

import (
	"testing"

	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/endpoint"
	"github.com/reL4team2/sel4-ipc/internal/ktest"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// CancelAllIPC's restart policy (spec.md §4.1 "cancel_all_ipc"): a queued
// thread with no pending fault is restarted and given a scheduling chance,
// while a thread with a pending fault is left Inactive for its fault
// handler.
func TestCancelAllIPCRestartsNullFaultInactivatesFaulted(t *testing.T) {
	sched, cs, _, _ := newMCSPair(t)
	ep := endpoint.New(1)
	clean := ktest.NewTCBWithIPCBuffer(sched, cs)
	faulted := ktest.NewTCBWithIPCBuffer(sched, cs)
	faulted.SetFault(sel4ipc.Fault{Tag: sel4ipc.FaultUserException})

	ep.SendIPC(clean, true, false, false, 7, false, false)
	ep.SendIPC(faulted, true, false, false, 7, false, false)

	ep.CancelAllIPC()

	if clean.State() != tcb.ThreadStateRestart {
		t.Fatalf("clean state = %v, want Restart", clean.State())
	}
	if faulted.State() != tcb.ThreadStateInactive {
		t.Fatalf("faulted state = %v, want Inactive", faulted.State())
	}
	if sched.CountOp("PossibleSwitchTo") != 1 {
		t.Fatalf("exactly the non-faulted restart must be switched to, got %d PossibleSwitchTo", sched.CountOp("PossibleSwitchTo"))
	}
	if sched.RescheduleRequests != 1 {
		t.Fatalf("CancelAllIPC must request a reschedule once, got %d", sched.RescheduleRequests)
	}
}

// CancelBadgedSends only restarts senders whose blocking badge matches;
// unrelated senders stay queued (§4.1 "cancel_badged_sends").
func TestCancelBadgedSendsOnlyRestartsMatchingBadge(t *testing.T) {
	sched, cs, _, _ := newMCSPair(t)
	ep := endpoint.New(1)
	match := ktest.NewTCBWithIPCBuffer(sched, cs)
	other := ktest.NewTCBWithIPCBuffer(sched, cs)

	ep.SendIPC(match, true, false, false, 9, false, false)
	ep.SendIPC(other, true, false, false, 10, false, false)

	ep.CancelBadgedSends(9)

	if match.State() != tcb.ThreadStateRestart {
		t.Fatalf("match state = %v, want Restart", match.State())
	}
	if other.State() != tcb.ThreadStateBlockedOnSend {
		t.Fatalf("other state = %v, want still BlockedOnSend", other.State())
	}
}

// ReorderEP moves a thread to its priority-ordered slot without dropping it
// from the queue (spec.md §4.1 "reorder_EP").
func TestReorderEPRepositionsWithoutLosingThread(t *testing.T) {
	sched, cs, _, _ := newMCSPair(t)
	ep := endpoint.New(1)
	low := ktest.NewTCBWithIPCBuffer(sched, cs)
	high := ktest.NewTCBWithIPCBuffer(sched, cs)

	ep.SendIPC(low, true, false, false, 1, false, false)
	ep.SendIPC(high, true, false, false, 1, false, false)

	priority := map[*tcb.TCB]int{low: 1, high: 10}
	ep.ReorderEP(high, func(t *tcb.TCB) int { return priority[t] })

	ep.CancelAllIPC()
	if low.State() != tcb.ThreadStateRestart || high.State() != tcb.ThreadStateRestart {
		t.Fatal("reordering must not drop either thread from the endpoint's queue")
	}
}
