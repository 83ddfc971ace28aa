//go:build mcs

package transfer_test

import (
	"testing"

	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/internal/ktest"
	"github.com/reL4team2/sel4-ipc/tcb"
	"github.com/reL4team2/sel4-ipc/transfer"
)

// CompleteSignal's MCS donation step (§4.3 "complete_signal"): consuming a
// signal on a notification that carries a scheduling context donates that
// context to self when self has none of its own.
func TestCompleteSignalDonatesNotificationSchedContext(t *testing.T) {
	sched := ktest.NewFakeScheduler()
	cs := ktest.NewFakeCSpace()
	self := ktest.NewTCBWithIPCBuffer(sched, cs)
	sc := ktest.NewFakeSchedContext()
	donor := &fakeSignalDonor{active: true, badge: 0x7, sc: sc}

	self.SetBoundNotification(donor)

	if !transfer.CompleteSignal(self) {
		t.Fatal("CompleteSignal must consume the active signal")
	}
	if self.BadgeReg() != sel4ipc.Badge(0x7) {
		t.Fatalf("self badge reg = %v, want 0x7", self.BadgeReg())
	}
	if donor.active {
		t.Fatal("CompleteSignal must clear the notification back to Idle")
	}
	if self.SchedContext() != sc {
		t.Fatal("self must end up holding the notification's donated scheduling context")
	}
	if donor.takeBackCalls != 1 {
		t.Fatalf("TakeBackSchedContext calls = %d, want 1", donor.takeBackCalls)
	}
}

// When self already owns a scheduling context, CompleteSignal must not
// steal the notification's.
func TestCompleteSignalSkipsDonationWhenSelfAlreadyScheduled(t *testing.T) {
	sched := ktest.NewFakeScheduler()
	cs := ktest.NewFakeCSpace()
	self := ktest.NewTCBWithIPCBuffer(sched, cs)
	own := ktest.NewFakeSchedContext()
	self.SetSchedContext(own)
	donor := &fakeSignalDonor{active: true, badge: 0x1, sc: ktest.NewFakeSchedContext()}
	self.SetBoundNotification(donor)

	transfer.CompleteSignal(self)

	if self.SchedContext() != own {
		t.Fatal("self must keep its own scheduling context, not the notification's")
	}
	if donor.takeBackCalls != 0 {
		t.Fatal("a scheduling context that is not donated must not be reclaimed")
	}
}

type fakeSignalDonor struct {
	active        bool
	badge         sel4ipc.Badge
	sc            tcb.SchedContextRef
	takeBackCalls int
}

func (f *fakeSignalDonor) IsActive() bool                           { return f.active }
func (f *fakeSignalDonor) ActiveBadge() sel4ipc.Badge               { return f.badge }
func (f *fakeSignalDonor) ClearToIdle()                             { f.active = false }
func (f *fakeSignalDonor) DonatedSchedContext() tcb.SchedContextRef { return f.sc }
func (f *fakeSignalDonor) TakeBackSchedContext()                    { f.takeBackCalls++; f.sc = nil }
