package ktest

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// NewTCB builds a test TCB wired to sched and cspace, with a stable id
// derived from a fresh random UUID rather than a hand-picked counter — this
// keeps fixture TCBs from colliding when scenarios build several pools and
// compare ids across them (spec.md §8 scenarios S1-S6 all juggle multiple
// threads at once).
func NewTCB(sched *FakeScheduler, cspace *FakeCSpace) *tcb.TCB {
	u := uuid.New()
	id := binary.BigEndian.Uint64(u[:8])
	return tcb.New(id, cspace, sched)
}

// NewTCBWithIPCBuffer is NewTCB plus an already-mapped IPC buffer, the
// common case for a thread about to take part in a rendezvous.
func NewTCBWithIPCBuffer(sched *FakeScheduler, cspace *FakeCSpace) *tcb.TCB {
	t := NewTCB(sched, cspace)
	t.MapIPCBuffer()
	return t
}
