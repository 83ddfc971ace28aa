package ktest

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// FakeCSpace implements tcb.CSpace over an in-memory slot table indexed by
// tcb.CapSlot.Index; ReceiveSlot hands out slots from a preconfigured free
// list per receiver, mirroring a minimal lookup_slot/cte_insert pair.
type FakeCSpace struct {
	slots map[uint64]tcb.Cap

	// ExtraCaps, keyed by sender TCB id, is what LookupExtraCaps returns.
	ExtraCaps map[uint64][]tcb.Cap
	// FreeSlots, keyed by receiver TCB id, is consumed front-to-back by
	// ReceiveSlot.
	FreeSlots map[uint64][]tcb.CapSlot
	// DeriveFails, if set, makes DeriveCap report ok=false for caps with a
	// matching Badge, simulating a capability derivation failure (§7).
	DeriveFails map[sel4ipc.Badge]bool

	// CallerCaps records SetupCallerCap invocations, keyed by receiver id.
	CallerCaps map[uint64]callerCap
	nextSlot   uint64
}

type callerCap struct {
	senderID      uint64
	replyCanGrant bool
}

func NewFakeCSpace() *FakeCSpace {
	return &FakeCSpace{
		slots:       make(map[uint64]tcb.Cap),
		ExtraCaps:   make(map[uint64][]tcb.Cap),
		FreeSlots:   make(map[uint64][]tcb.CapSlot),
		DeriveFails: make(map[sel4ipc.Badge]bool),
		CallerCaps:  make(map[uint64]callerCap),
	}
}

func (c *FakeCSpace) LookupExtraCaps(sender *tcb.TCB, info sel4ipc.MessageInfo) ([]tcb.Cap, error) {
	return c.ExtraCaps[sender.ID()], nil
}

func (c *FakeCSpace) DeriveCap(cap tcb.Cap) (tcb.Cap, bool) {
	if cap.Null || c.DeriveFails[cap.Badge] {
		return tcb.Cap{}, false
	}
	return cap, true
}

func (c *FakeCSpace) ReceiveSlot(receiver *tcb.TCB) (tcb.CapSlot, bool) {
	free := c.FreeSlots[receiver.ID()]
	if len(free) == 0 {
		return tcb.CapSlot{}, false
	}
	slot := free[0]
	c.FreeSlots[receiver.ID()] = free[1:]
	return slot, true
}

func (c *FakeCSpace) CteInsert(slot tcb.CapSlot, cap tcb.Cap) {
	c.slots[slot.Index] = cap
}

func (c *FakeCSpace) DeleteOne(slot tcb.CapSlot) {
	delete(c.slots, slot.Index)
}

func (c *FakeCSpace) SetupCallerCap(sender, receiver *tcb.TCB, replyCanGrant bool) {
	c.CallerCaps[receiver.ID()] = callerCap{senderID: sender.ID(), replyCanGrant: replyCanGrant}
}

func (c *FakeCSpace) DeleteCallerCap(t *tcb.TCB) bool {
	if _, ok := c.CallerCaps[t.ID()]; !ok {
		return false
	}
	delete(c.CallerCaps, t.ID())
	return true
}

// SlotAt returns whatever CteInsert last installed at slot.Index, for test
// assertions.
func (c *FakeCSpace) SlotAt(slot tcb.CapSlot) (tcb.Cap, bool) {
	cap, ok := c.slots[slot.Index]
	return cap, ok
}

// PushFreeSlot appends a free slot to receiver's free list; tests call this
// to control exactly how many ReceiveSlot calls succeed.
func (c *FakeCSpace) PushFreeSlot(receiver *tcb.TCB) tcb.CapSlot {
	c.nextSlot++
	slot := tcb.CapSlot{Index: c.nextSlot}
	c.FreeSlots[receiver.ID()] = append(c.FreeSlots[receiver.ID()], slot)
	return slot
}
