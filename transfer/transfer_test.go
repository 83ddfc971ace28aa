package transfer_test

import (
	"testing"

	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/internal/ktest"
	"github.com/reL4team2/sel4-ipc/tcb"
	"github.com/reL4team2/sel4-ipc/transfer"
)

func newPair() (sender, receiver *tcb.TCB, cs *ktest.FakeCSpace) {
	sched := ktest.NewFakeScheduler()
	cs = ktest.NewFakeCSpace()
	sender = ktest.NewTCBWithIPCBuffer(sched, cs)
	receiver = ktest.NewTCBWithIPCBuffer(sched, cs)
	return
}

func TestDoNormalTransferCopiesMRsAndBadge(t *testing.T) {
	sender, receiver, _ := newPair()
	sender.SetMsgInfo(sel4ipc.MessageInfo{Label: 3, Length: 2})
	sender.SetMR(0, 111)
	sender.SetMR(1, 222)

	transfer.DoNormalTransfer(sender, receiver, nil, 55, false)

	if receiver.MR(0) != 111 || receiver.MR(1) != 222 {
		t.Fatalf("receiver MRs = [%d %d], want [111 222]", receiver.MR(0), receiver.MR(1))
	}
	if receiver.BadgeReg() != 55 {
		t.Fatalf("receiver badge = %v, want 55", receiver.BadgeReg())
	}
	if receiver.MsgInfo().Label != 3 || receiver.MsgInfo().Length != 2 {
		t.Fatalf("receiver MsgInfo = %+v, want Label=3 Length=2", receiver.MsgInfo())
	}
}

func TestDoIPCTransferRoutesFaultedSenderToFaultTransfer(t *testing.T) {
	sender, receiver, _ := newPair()
	sender.SetFault(sel4ipc.Fault{Tag: sel4ipc.FaultUserException, Number: 4, Code: 2})
	sender.SetMsgInfo(sel4ipc.MessageInfo{Label: 99})

	transfer.DoIPCTransfer(sender, receiver, nil, 0, false)

	if receiver.MsgInfo().Label != sel4ipc.MessageLabelUserException {
		t.Fatalf("receiver message label = %v, want MessageLabelUserException", receiver.MsgInfo().Label)
	}
	if receiver.MR(0) != 4 || receiver.MR(1) != 2 {
		t.Fatalf("receiver fault MRs = [%d %d], want [4 2]", receiver.MR(0), receiver.MR(1))
	}
}

func TestSetTransferCapsUnwrapsOwnEndpointBadge(t *testing.T) {
	_, receiver, _ := newPair()
	ep := fakeEndpoint{id: 42}
	caps := []tcb.Cap{{IsEndpoint: true, EndpointID: 42, Badge: 7}}

	unwrapped, n := transfer.SetTransferCaps(receiver, ep, caps)

	if unwrapped != 1 || n != 1 {
		t.Fatalf("unwrapped=%d n=%d, want 1 1", unwrapped, n)
	}
	buf, ok := receiver.LookupMutIPCBuffer()
	if !ok || buf.CapsOrBadges[0] != 7 {
		t.Fatal("the endpoint's own badge should be written directly into CapsOrBadges[0]")
	}
}

func TestSetTransferCapsStopsOnExhaustedReceiveSlots(t *testing.T) {
	_, receiver, cs := newPair()
	caps := []tcb.Cap{{Badge: 1}, {Badge: 2}}
	_ = cs // no free slots configured: ReceiveSlot fails immediately

	_, n := transfer.SetTransferCaps(receiver, nil, caps)
	if n != 0 {
		t.Fatalf("transferred = %d, want 0 when no receive slots are available", n)
	}
}

func TestSetTransferCapsNoIPCBufferIsSilent(t *testing.T) {
	sched := ktest.NewFakeScheduler()
	cs := ktest.NewFakeCSpace()
	receiver := ktest.NewTCB(sched, cs) // no MapIPCBuffer call
	caps := []tcb.Cap{{Badge: 1}}

	unwrapped, n := transfer.SetTransferCaps(receiver, nil, caps)
	if unwrapped != 0 || n != 0 {
		t.Fatalf("unwrapped=%d n=%d, want 0 0 for a receiver with no mapped IPC buffer", unwrapped, n)
	}
}

type fakeEndpoint struct{ id uint64 }

func (f fakeEndpoint) EndpointID() uint64 { return f.id }
