//go:build mcs

package ktest

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// FakeSchedContext implements tcb.SchedContextRef with plain fields instead
// of real refill-queue accounting; tests set Ready/Sufficient/IsSporadic
// directly to drive the branches transfer/endpoint/notification take under
// MCS (spec.md §6 "(MCS) Scheduling context" row).
type FakeSchedContext struct {
	Ready      bool
	Sufficient bool
	IsSporadic bool
	Current    bool
	Consumed   uint64
	SCBadge    sel4ipc.Badge

	DonateCount   int
	UnblockChecks int
	Postponed     int
}

func NewFakeSchedContext() *FakeSchedContext {
	return &FakeSchedContext{Ready: true, Sufficient: true}
}

func (sc *FakeSchedContext) RefillReady() bool               { return sc.Ready }
func (sc *FakeSchedContext) RefillSufficient(usage uint64) bool { return sc.Sufficient }
func (sc *FakeSchedContext) RefillUnblockCheck()              { sc.UnblockChecks++ }
func (sc *FakeSchedContext) Sporadic() bool                   { return sc.IsSporadic }
func (sc *FakeSchedContext) IsCurrent() bool                  { return sc.Current }
func (sc *FakeSchedContext) Postpone()                        { sc.Postponed++ }
func (sc *FakeSchedContext) ScheduleContextDonate(dest *tcb.TCB) {
	sc.DonateCount++
}
func (sc *FakeSchedContext) ScheduledConsumed() uint64 { return sc.Consumed }
func (sc *FakeSchedContext) Badge() sel4ipc.Badge      { return sc.SCBadge }

// PushRecord is one recorded FakeReply.Push call.
type PushRecord struct {
	SrcID, DestID uint64
	Donate        bool
}

// FakeReply implements tcb.ReplyRef over a single replyTCB pointer plus call
// logs, enough to drive and assert on Endpoint.ReceiveIPC/SendIPC's MCS
// reply-push path and transfer.DoReply/cancelReply (§4.1, §4.3).
type FakeReply struct {
	replyTCB *tcb.TCB
	Pushes   []PushRecord
	Removed  []*tcb.TCB
	Unlinked []*tcb.TCB
}

func NewFakeReply() *FakeReply { return &FakeReply{} }

func (r *FakeReply) ReplyTCB() *tcb.TCB { return r.replyTCB }

func (r *FakeReply) Bind(thread *tcb.TCB) { r.replyTCB = thread }

// Push mirrors real reply_push: besides relinking the reply to src, a
// donate push with no scheduling context already on dest moves src's
// scheduling context onto dest immediately (spec.md §8 scenario S5 "T2
// ends up Running with T1's scheduling context").
func (r *FakeReply) Push(src, dest *tcb.TCB, donate bool) {
	r.replyTCB = src
	r.Pushes = append(r.Pushes, PushRecord{SrcID: src.ID(), DestID: dest.ID(), Donate: donate})
	if donate && dest.SchedContext() == nil {
		src.DonateSchedContextTo(dest)
	}
}

func (r *FakeReply) Unlink(t *tcb.TCB) {
	if r.replyTCB == t {
		r.replyTCB = nil
	}
	r.Unlinked = append(r.Unlinked, t)
}

func (r *FakeReply) Remove(t *tcb.TCB) {
	if r.replyTCB == t {
		r.replyTCB = nil
	}
	r.Removed = append(r.Removed, t)
}
