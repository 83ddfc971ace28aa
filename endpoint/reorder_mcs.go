//go:build mcs

package endpoint

import "github.com/reL4team2/sel4-ipc/tcb"

// ReorderEP re-positions thread within this endpoint's send/receive queue,
// used after an MCS priority change to restore priority ordering (§4.1
// "reorder_EP"). original_source/endpoint.rs implements this as a plain
// dequeue-then-append; priority-ordered insertion is left to the caller via
// priorityOf, mirroring tcb.Queue.InsertByPriority.
func (e *Endpoint) ReorderEP(thread *tcb.TCB, priorityOf func(*tcb.TCB) int) {
	e.queue.Remove(thread)
	e.queue.InsertByPriority(thread, priorityOf)
}
