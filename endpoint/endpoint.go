// Package endpoint implements the Endpoint kernel object: the synchronous
// rendezvous point described in spec.md §4.1. An Endpoint is either Idle
// (empty queue), Send (queue of blocked senders), or Recv (queue of blocked
// receivers); the queue never holds a mixture of the two.
package endpoint

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// State is the Endpoint's state-machine tag (spec.md §3 "Endpoint: State").
type State uint8

const (
	StateIdle State = iota
	StateSend
	StateRecv
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSend:
		return "Send"
	case StateRecv:
		return "Recv"
	default:
		return "State(invalid)"
	}
}

// Endpoint is a synchronous rendezvous object: a state tag plus a FIFO
// queue of TCBs all blocked the same way (spec.md §3 "Endpoint").
type Endpoint struct {
	id    uint64
	state State
	queue tcb.Queue

	sel4ipc.Logger
}

// New returns an Idle endpoint identified by id. id is surfaced to the
// transfer engine via EndpointID so SetTransferCaps can recognise "this
// extra cap targets the endpoint the message arrived on".
func New(id uint64) *Endpoint {
	return &Endpoint{id: id, state: StateIdle}
}

// EndpointID implements tcb.EndpointRef.
func (e *Endpoint) EndpointID() uint64 { return e.id }

// State returns the endpoint's current state.
func (e *Endpoint) State() State { return e.state }

// Empty reports whether the endpoint's queue holds no TCBs. The invariant
// `state == Idle <=> queue empty` (spec.md §3, §8 property 1) always holds
// between calls into this package; Empty() and State()==StateIdle should
// therefore always agree.
func (e *Endpoint) Empty() bool { return e.queue.Empty() }
