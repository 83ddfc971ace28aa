// Package ktest provides fake collaborators and scenario fixtures for the
// tcb/transfer/endpoint/notification test suites: a FakeScheduler, FakeCSpace,
// and (under mcs) FakeSchedContext/FakeReply, each recording enough call
// history for tests to assert on without reimplementing a real scheduler or
// capability space.
package ktest

import "github.com/reL4team2/sel4-ipc/tcb"

// SchedEvent is one call recorded against a FakeScheduler, in the order the
// core made it.
type SchedEvent struct {
	Op       string // "SetThreadState", "ScheduleTCB", "PossibleSwitchTo", "RescheduleRequired"
	TCBID    uint64
	ToState  tcb.TSType
	HasState bool
}

// FakeScheduler implements tcb.Scheduler by recording every call. It never
// runs anything; tests inspect Events (and the convenience accessors) to
// check the core drove the scheduler the way spec.md §4 prescribes.
type FakeScheduler struct {
	Events             []SchedEvent
	RescheduleRequests int
}

func NewFakeScheduler() *FakeScheduler { return &FakeScheduler{} }

func (s *FakeScheduler) SetThreadState(t *tcb.TCB, ts tcb.TSType) {
	s.Events = append(s.Events, SchedEvent{Op: "SetThreadState", TCBID: t.ID(), ToState: ts, HasState: true})
}

func (s *FakeScheduler) ScheduleTCB(t *tcb.TCB) {
	s.Events = append(s.Events, SchedEvent{Op: "ScheduleTCB", TCBID: t.ID()})
}

func (s *FakeScheduler) PossibleSwitchTo(t *tcb.TCB) {
	s.Events = append(s.Events, SchedEvent{Op: "PossibleSwitchTo", TCBID: t.ID()})
}

func (s *FakeScheduler) RescheduleRequired() {
	s.RescheduleRequests++
	s.Events = append(s.Events, SchedEvent{Op: "RescheduleRequired"})
}

// LastEvent returns the most recently recorded event, or the zero value if
// none were recorded.
func (s *FakeScheduler) LastEvent() SchedEvent {
	if len(s.Events) == 0 {
		return SchedEvent{}
	}
	return s.Events[len(s.Events)-1]
}

// CountOp returns how many times op was recorded.
func (s *FakeScheduler) CountOp(op string) int {
	n := 0
	for _, e := range s.Events {
		if e.Op == op {
			n++
		}
	}
	return n
}
