//go:build !mcs

package endpoint_test

import (
	"testing"

	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/endpoint"
	"github.com/reL4team2/sel4-ipc/internal/ktest"
	"github.com/reL4team2/sel4-ipc/tcb"
)

func newPair(t *testing.T) (sched *ktest.FakeScheduler, cs *ktest.FakeCSpace, sender, receiver *tcb.TCB) {
	t.Helper()
	sched = ktest.NewFakeScheduler()
	cs = ktest.NewFakeCSpace()
	sender = ktest.NewTCBWithIPCBuffer(sched, cs)
	receiver = ktest.NewTCBWithIPCBuffer(sched, cs)
	return
}

// Property 1 (spec.md §8): state == Idle iff queue empty.
func TestEndpointIdleQueueInvariant(t *testing.T) {
	ep := endpoint.New(1)
	if ep.State() != endpoint.StateIdle || !ep.Empty() {
		t.Fatal("fresh endpoint must be Idle with an empty queue")
	}
}

func TestSendBlocksWhenNoReceiver(t *testing.T) {
	sched, _, sender, _ := newPair(t)
	ep := endpoint.New(1)

	ep.SendIPC(sender, true, false, false, 42, false)

	if ep.State() != endpoint.StateSend {
		t.Fatalf("endpoint state = %v, want Send", ep.State())
	}
	if ep.Empty() {
		t.Fatal("endpoint queue should hold the blocked sender")
	}
	if sender.State() != tcb.ThreadStateBlockedOnSend {
		t.Fatalf("sender state = %v, want BlockedOnSend", sender.State())
	}
	if sender.BlockingIPCBadge() != 42 {
		t.Fatalf("sender blockingIPCBadge = %v, want 42", sender.BlockingIPCBadge())
	}
	if sched.CountOp("SetThreadState") != 1 {
		t.Fatalf("expected exactly one SetThreadState call, got %d", sched.CountOp("SetThreadState"))
	}
}

func TestNonBlockingSendWithNoReceiverDrops(t *testing.T) {
	_, _, sender, _ := newPair(t)
	ep := endpoint.New(1)

	ep.SendIPC(sender, false, false, false, 7, false)

	if ep.State() != endpoint.StateIdle {
		t.Fatalf("non-blocking send against an idle endpoint must leave it Idle, got %v", ep.State())
	}
	if sender.State() != tcb.ThreadStateInactive {
		t.Fatal("a silently-dropped non-blocking send must not touch the sender's thread state")
	}
}

func TestSendReceiveRendezvousTransfersBadgeAndMRs(t *testing.T) {
	sched, _, sender, receiver := newPair(t)
	ep := endpoint.New(1)

	sender.SetMsgInfo(sel4ipc.MessageInfo{Label: 1, Length: 2})
	sender.SetMR(0, 0xAAAA)
	sender.SetMR(1, 0xBBBB)

	ep.ReceiveIPC(receiver, true, true)
	if ep.State() != endpoint.StateRecv {
		t.Fatalf("endpoint state after blocking receive = %v, want Recv", ep.State())
	}

	ep.SendIPC(sender, true, false, true, 99, false)

	if !ep.Empty() || ep.State() != endpoint.StateIdle {
		t.Fatal("rendezvous must drain the queue back to Idle")
	}
	if receiver.BadgeReg() != 99 {
		t.Fatalf("receiver badge register = %v, want 99", receiver.BadgeReg())
	}
	if receiver.MR(0) != 0xAAAA || receiver.MR(1) != 0xBBBB {
		t.Fatalf("receiver MRs = [%x %x], want [aaaa bbbb]", receiver.MR(0), receiver.MR(1))
	}
	if receiver.State() != tcb.ThreadStateRunning {
		t.Fatalf("receiver state = %v, want Running", receiver.State())
	}
	if sched.CountOp("PossibleSwitchTo") != 1 {
		t.Fatal("a non-call rendezvous must call PossibleSwitchTo on the woken receiver")
	}
}

// FIFO ordering: the first blocked sender is always the one a receiver
// rendezvouses with (spec.md §4.1 "Ordering / tie-breaks").
func TestSendQueueIsFIFO(t *testing.T) {
	sched, cs, s1, _ := newPair(t)
	s2 := ktest.NewTCBWithIPCBuffer(sched, cs)
	receiver := ktest.NewTCBWithIPCBuffer(sched, cs)
	ep := endpoint.New(1)

	s1.SetMsgInfo(sel4ipc.MessageInfo{Length: 0})
	s2.SetMsgInfo(sel4ipc.MessageInfo{Length: 0})

	ep.SendIPC(s1, true, false, false, 1, false)
	ep.SendIPC(s2, true, false, false, 2, false)

	ep.ReceiveIPC(receiver, true, false)

	if receiver.BadgeReg() != 1 {
		t.Fatalf("receiver badge = %v, want 1 (must rendezvous with the first blocked sender)", receiver.BadgeReg())
	}
	if s1.State() != tcb.ThreadStateRunning {
		t.Fatalf("s1 state = %v, want Running", s1.State())
	}
	if s2.State() != tcb.ThreadStateBlockedOnSend {
		t.Fatal("s2 must remain queued")
	}
}

func TestCallSetsUpCallerCapAndBlocksSenderOnReply(t *testing.T) {
	sched, cs, sender, receiver := newPair(t)
	ep := endpoint.New(1)

	sender.SetMsgInfo(sel4ipc.MessageInfo{Length: 0})
	ep.ReceiveIPC(receiver, true, true)
	ep.SendIPC(sender, true, true, true, 5, false)

	if sender.State() != tcb.ThreadStateBlockedOnReply {
		t.Fatalf("caller state = %v, want BlockedOnReply", sender.State())
	}
	if _, ok := cs.CallerCaps[receiver.ID()]; !ok {
		t.Fatal("SetupCallerCap must be invoked on a granting call rendezvous")
	}
	if sched.CountOp("PossibleSwitchTo") != 1 {
		t.Fatal("only the receiver should be switched to on a call; the caller blocks")
	}
}

func TestCancelIPCRemovesFromQueue(t *testing.T) {
	sched, _, sender, _ := newPair(t)
	ep := endpoint.New(1)
	ep.SendIPC(sender, true, false, false, 1, false)

	ep.CancelIPC(sender)

	if !ep.Empty() || ep.State() != endpoint.StateIdle {
		t.Fatal("cancelling the only queued sender must return the endpoint to Idle")
	}
	if sender.State() != tcb.ThreadStateInactive {
		t.Fatalf("cancelled sender state = %v, want Inactive", sender.State())
	}
	if sched.LastEvent().Op != "SetThreadState" || sched.LastEvent().ToState != tcb.ThreadStateInactive {
		t.Fatal("CancelIPC must notify the scheduler of the Inactive transition")
	}
}

func TestCancelAllIPCDrainsAndRestartsEveryone(t *testing.T) {
	sched, cs, s1, _ := newPair(t)
	s2 := ktest.NewTCBWithIPCBuffer(sched, cs)
	ep := endpoint.New(1)

	ep.SendIPC(s1, true, false, false, 1, false)
	ep.SendIPC(s2, true, false, false, 2, false)

	ep.CancelAllIPC()

	if !ep.Empty() || ep.State() != endpoint.StateIdle {
		t.Fatal("cancel_all_ipc must drain the queue and leave the endpoint Idle")
	}
	if s1.State() != tcb.ThreadStateRestart || s2.State() != tcb.ThreadStateRestart {
		t.Fatalf("cancelled threads must be Restart (non-MCS): s1=%v s2=%v", s1.State(), s2.State())
	}
	if sched.RescheduleRequests != 1 {
		t.Fatalf("CancelAllIPC must call RescheduleRequired exactly once, got %d", sched.RescheduleRequests)
	}
}

// S4 from spec.md §8: cancel_badged_sends only removes matching senders.
func TestCancelBadgedSendsSelectivity(t *testing.T) {
	sched, cs, s1, _ := newPair(t)
	s2 := ktest.NewTCBWithIPCBuffer(sched, cs)
	s3 := ktest.NewTCBWithIPCBuffer(sched, cs)
	ep := endpoint.New(1)

	ep.SendIPC(s1, true, false, false, 1, false)
	ep.SendIPC(s2, true, false, false, 2, false)
	ep.SendIPC(s3, true, false, false, 1, false)

	ep.CancelBadgedSends(1)

	if ep.State() != endpoint.StateSend {
		t.Fatalf("endpoint state = %v, want Send (s2 remains queued)", ep.State())
	}
	if s1.State() != tcb.ThreadStateRestart || s3.State() != tcb.ThreadStateRestart {
		t.Fatal("badge-1 senders must become Restart")
	}
	if s2.State() != tcb.ThreadStateBlockedOnSend {
		t.Fatal("badge-2 sender must remain queued and blocked")
	}
}
