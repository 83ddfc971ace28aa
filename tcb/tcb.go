package tcb

import sel4ipc "github.com/reL4team2/sel4-ipc"

// IPCBuffer models the per-thread page used to marshal message words beyond
// the register file and to receive extra capabilities (spec.md GLOSSARY
// "IPC buffer"). Mapped=false models a thread with no IPC buffer mapped at
// all; LookupMutIPCBuffer reports that as ok=false, matching §7's "silent"
// missing-IPC-buffer handling.
type IPCBuffer struct {
	Mapped       bool
	MR           [sel4ipc.MsgMaxLength]uint64
	CapsOrBadges [sel4ipc.MaxExtraCaps]uint64
}

// tcbCore holds the fields and methods common to both MCS and non-MCS
// builds. The two build-tag files (tcb_mcs.go / tcb_nomcs.go) embed it into
// the exported TCB type, adding only the fields that differ.
type tcbCore struct {
	id uint64

	tsType                   TSType
	blockingObject           BlockingObject
	blockingIPCBadge         sel4ipc.Badge
	blockingIPCCanGrant      bool
	blockingIPCCanGrantReply bool
	blockingIPCIsCall        bool
	blockingIPCCanDonate     bool

	// intrusive queue links, owned by whichever Queue currently holds this
	// TCB (spec.md §3 "each TCB carries prev/next link fields").
	prev, next *TCB

	fault sel4ipc.Fault

	boundNotification BoundNotification

	badgeReg sel4ipc.Badge
	msgInfo  sel4ipc.MessageInfo
	faultIP  uint64

	ipcBuffer IPCBuffer

	cspace CSpace
	sched  Scheduler

	sel4ipc.Logger
}

// New allocates a TCB with the given stable id and collaborators. id is used
// only for logging/debugging and equality; the core never interprets it.
func New(id uint64, cspace CSpace, sched Scheduler) *TCB {
	t := &TCB{}
	t.id = id
	t.cspace = cspace
	t.sched = sched
	t.tsType = ThreadStateInactive
	return t
}

// ID returns the TCB's stable identity.
func (t *tcbCore) ID() uint64 { return t.id }

// State returns the thread's current TSType (get_state).
func (t *tcbCore) State() TSType { return t.tsType }

// SetState sets the thread's state directly, without touching any of the
// blockingIPC* fields. Used for the terminal transitions (Running, Restart,
// Inactive) that don't accompany a fresh block.
func (t *tcbCore) SetState(ts TSType) { t.tsType = ts }

// BlockingObject returns whatever this TCB is currently blocked on.
func (t *tcbCore) BlockingObject() BlockingObject { return t.blockingObject }

// BlockOnSend stamps the four IPC control bits and parks t in
// BlockedOnSend, as the Idle/Send branch of Endpoint.SendIPC does before
// enqueueing (spec.md §4.1).
func (t *tcbCore) BlockOnSend(on BlockingObject, badge sel4ipc.Badge, canGrant, canGrantReply, isCall bool) {
	t.tsType = ThreadStateBlockedOnSend
	t.blockingObject = on
	t.blockingIPCBadge = badge
	t.blockingIPCCanGrant = canGrant
	t.blockingIPCCanGrantReply = canGrantReply
	t.blockingIPCIsCall = isCall
}

// BlockOnReceive parks t in BlockedOnReceive. canGrant is the non-MCS grant
// bit; the MCS build additionally records the reply object via
// TCB.SetReplyObject before or after calling this.
func (t *tcbCore) BlockOnReceive(on BlockingObject, canGrant bool) {
	t.tsType = ThreadStateBlockedOnReceive
	t.blockingObject = on
	t.blockingIPCCanGrant = canGrant
}

// BlockOnNotification parks t in BlockedOnNotification.
func (t *tcbCore) BlockOnNotification(on BlockingObject) {
	t.tsType = ThreadStateBlockedOnNotification
	t.blockingObject = on
}

// BlockingIPCBadge, BlockingIPCCanGrant, BlockingIPCCanGrantReply, and
// BlockingIPCIsCall report the control bits stamped by BlockOnSend, read
// back by the peer's rendezvous (Endpoint.ReceiveIPC's Send-state branch).
func (t *tcbCore) BlockingIPCBadge() sel4ipc.Badge      { return t.blockingIPCBadge }
func (t *tcbCore) BlockingIPCCanGrant() bool            { return t.blockingIPCCanGrant }
func (t *tcbCore) BlockingIPCCanGrantReply() bool       { return t.blockingIPCCanGrantReply }
func (t *tcbCore) BlockingIPCIsCall() bool              { return t.blockingIPCIsCall }

// SetBlockingIPCCanDonate/BlockingIPCCanDonate record the MCS-only
// canDonate bit alongside BlockOnSend's other control bits. Kept as a
// separate setter rather than a BlockOnSend parameter so the non-MCS build
// keeps its original call shape (spec.md §3 lists this bit only for the
// MCS TCB; original_source/endpoint.rs's canDonate parameter has no
// non-MCS counterpart).
func (t *tcbCore) SetBlockingIPCCanDonate(v bool) { t.blockingIPCCanDonate = v }
func (t *tcbCore) BlockingIPCCanDonate() bool     { return t.blockingIPCCanDonate }

// Fault returns the TCB's current fault record (Fault{Tag: FaultNone} if
// none is pending).
func (t *tcbCore) Fault() sel4ipc.Fault { return t.fault }

// SetFault installs f as the TCB's pending fault.
func (t *tcbCore) SetFault(f sel4ipc.Fault) { t.fault = f }

// ClearFault resets the TCB's fault to Null (used by do_reply's non-MCS
// BlockedOnReply cleanup and by the MCS reply-delivery path).
func (t *tcbCore) ClearFault() { t.fault = sel4ipc.Fault{} }

// BoundNotification returns the notification this TCB is bound to, or nil.
func (t *tcbCore) BoundNotification() BoundNotification { return t.boundNotification }

// SetBoundNotification installs n as this TCB's bound notification
// (Notification.BindTCB's reciprocal pointer).
func (t *tcbCore) SetBoundNotification(n BoundNotification) { t.boundNotification = n }

// UnbindNotification clears the bound notification (unbind_notification,
// §6 "TCB" row).
func (t *tcbCore) UnbindNotification() { t.boundNotification = nil }

// BadgeReg/SetBadgeReg model the badge register written by a rendezvous or
// signal delivery (Badge, §6 "register read/write" row).
func (t *tcbCore) BadgeReg() sel4ipc.Badge          { return t.badgeReg }
func (t *tcbCore) SetBadgeReg(b sel4ipc.Badge)      { t.badgeReg = b }

// MsgInfo/SetMsgInfo model the MsgInfo register (§6 "register read/write").
func (t *tcbCore) MsgInfo() sel4ipc.MessageInfo        { return t.msgInfo }
func (t *tcbCore) SetMsgInfo(mi sel4ipc.MessageInfo)   { t.msgInfo = mi }

// FaultIP/SetFaultIP model the FaultIP register, written into CapFault/
// VMFault messages by DoFaultTransfer.
func (t *tcbCore) FaultIP() uint64        { return t.faultIP }
func (t *tcbCore) SetFaultIP(ip uint64)   { t.faultIP = ip }

// CSpace and Scheduler return this TCB's collaborators.
func (t *tcbCore) CSpace() CSpace       { return t.cspace }
func (t *tcbCore) Scheduler() Scheduler { return t.sched }

// MapIPCBuffer marks this TCB as having a mapped IPC buffer, for tests and
// fixtures; a freshly-constructed TCB has none (lookup_mut_ipc_buffer fails
// closed per §7 until this is called).
func (t *tcbCore) MapIPCBuffer() { t.ipcBuffer.Mapped = true }

// LookupMutIPCBuffer returns the TCB's IPC buffer, or ok=false if none is
// mapped (lookup_mut_ipc_buffer, §6 "TCB" row).
func (t *tcbCore) LookupMutIPCBuffer() (buf *IPCBuffer, ok bool) {
	if !t.ipcBuffer.Mapped {
		return nil, false
	}
	return &t.ipcBuffer, true
}

// SetMR writes message register i, clamped silently to the arch-defined
// message length (set_mr, §6 "TCB" row). Writes past the mapped IPC buffer
// are dropped rather than panicking: a caller asking to write MR i beyond
// what LookupMutIPCBuffer would report is a collaborator bug the transfer
// engine doesn't need to diagnose.
func (t *tcbCore) SetMR(i int, v uint64) {
	if i < 0 || i >= len(t.ipcBuffer.MR) {
		return
	}
	t.ipcBuffer.MR[i] = v
}

// MR reads message register i, returning 0 if out of range.
func (t *tcbCore) MR(i int) uint64 {
	if i < 0 || i >= len(t.ipcBuffer.MR) {
		return 0
	}
	return t.ipcBuffer.MR[i]
}

// CopyMRs copies up to n message registers from src to dst, clamped to
// sel4ipc.MsgMaxLength, and returns the count actually copied (copy_mrs,
// §6 "TCB" row and §4.3 do_normal_transfer). dst/src are *TCB rather than
// *tcbCore so external packages (transfer) can call it directly.
func CopyMRs(dst, src *TCB, n int) int {
	if n > sel4ipc.MsgMaxLength {
		n = sel4ipc.MsgMaxLength
	}
	if n < 0 {
		n = 0
	}
	copy(dst.ipcBuffer.MR[:n], src.ipcBuffer.MR[:n])
	return n
}
