package tcb

import sel4ipc "github.com/reL4team2/sel4-ipc"

// CapSlot is an opaque reference to a CSpace slot (a cte_t in the original).
// This core never looks inside it; it only threads it through to the CSpace
// collaborator.
type CapSlot struct{ Index uint64 }

// Cap is the minimal view of a capability the transfer engine needs: whether
// it is null, whether it is an endpoint cap (for the "unwrap own badge"
// optimisation, spec.md §4.3), and its badge.
type Cap struct {
	Null       bool
	IsEndpoint bool
	EndpointID uint64
	Badge      sel4ipc.Badge
}

// EndpointRef is the identity an Endpoint exposes to the transfer engine so
// SetTransferCaps can recognise "this extra cap targets the very endpoint
// this message arrived on" without the tcb package importing endpoint
// (which would create an import cycle: endpoint already imports tcb).
type EndpointRef interface {
	EndpointID() uint64
}

// BlockingObject is whatever a TCB is parked on: an Endpoint (BlockedOnSend /
// BlockedOnReceive) or a Notification (BlockedOnNotification). CancelIPC is
// the single entry point transfer.CancelIPC's central dispatch needs,
// regardless of which concrete kind blockingObject holds (spec.md §4.3
// "cancel_ipc(self)").
type BlockingObject interface {
	CancelIPC(t *TCB)
}

// BoundNotification is the notification a TCB may be bound to (§4.3
// complete_signal). Implemented by notification.Notification.
type BoundNotification interface {
	IsActive() bool
	ActiveBadge() sel4ipc.Badge
	ClearToIdle()
}

// CSpace is the narrow capability-space surface the transfer engine needs
// (§6 "CSpace" row): deriving and installing extra caps, and the two
// reply-cap operations the non-MCS caller-cap scheme uses.
type CSpace interface {
	// LookupExtraCaps resolves the sender's extra-caps list for the given
	// message. A non-nil error means "treat as empty" (§7): the transfer
	// loop simply sees zero extra caps, never a failure.
	LookupExtraCaps(sender *TCB, info sel4ipc.MessageInfo) ([]Cap, error)
	// DeriveCap derives a transferable copy of cap. ok=false covers both
	// "derivation failed" and "derivation yielded a null cap" (§4.3
	// set_transfer_caps: both stop the transfer loop the same way).
	DeriveCap(cap Cap) (derived Cap, ok bool)
	// ReceiveSlot returns the receiver's next available receive slot. Each
	// call consumes the slot it returns; ok=false means none remain.
	ReceiveSlot(receiver *TCB) (slot CapSlot, ok bool)
	// CteInsert installs cap into slot (mdb insertion).
	CteInsert(slot CapSlot, cap Cap)
	// DeleteOne removes whatever is installed in slot.
	DeleteOne(slot CapSlot)
	// SetupCallerCap installs a caller capability in receiver's caller slot
	// referring back to sender, with reply_can_grant taken from receiver's
	// own blockingIPCCanGrant (non-MCS call rendezvous, §4.1).
	SetupCallerCap(sender, receiver *TCB, replyCanGrant bool)
	// DeleteCallerCap removes t's caller-cap slot if one is installed,
	// reporting whether anything was there (non-MCS BlockedOnReply
	// cleanup, §4.3 cancel_ipc). Looked up via the reply-cap's mdb-next
	// link from t's perspective.
	DeleteCallerCap(t *TCB) (hadSlot bool)
}

// Scheduler is the narrow scheduling surface this core drives (§6
// "Scheduler" row). None of these calls context-switch synchronously: per
// spec.md §5, PossibleSwitchTo and RescheduleRequired only record pending
// state for when the kernel returns to user mode.
type Scheduler interface {
	// SetThreadState is called whenever this core stamps a new TSType onto
	// a thread; the scheduler may use this to run reschedule bookkeeping
	// (spec.md §9 "scheduler hook contracts").
	SetThreadState(t *TCB, ts TSType)
	// ScheduleTCB enqueues t on the ready queue (sched_enqueue).
	ScheduleTCB(t *TCB)
	// PossibleSwitchTo records t as a candidate to run; it does not switch.
	PossibleSwitchTo(t *TCB)
	// RescheduleRequired marks that a reschedule decision is owed before
	// returning to user mode.
	RescheduleRequired()
}
