//go:build mcs

package tcb

import sel4ipc "github.com/reL4team2/sel4-ipc"

// SchedContextRef is the narrow scheduling-context surface this core drives
// under MCS (§6 "(MCS) Scheduling context" row).
type SchedContextRef interface {
	RefillReady() bool
	RefillSufficient(usage uint64) bool
	RefillUnblockCheck()
	Sporadic() bool
	IsCurrent() bool
	Postpone()
	// ScheduleContextDonate hands this scheduling context to dest. The
	// caller (tcb.TCB.DonateSchedContextTo) is responsible for clearing the
	// donor's own reference afterwards.
	ScheduleContextDonate(dest *TCB)
	// ScheduledConsumed returns the accounted usage to fold into a Timeout
	// fault message (scBadge's consumed-amount companion).
	ScheduledConsumed() uint64
	Badge() sel4ipc.Badge
}

// ReplyRef is the narrow reply-object surface this core drives under MCS
// (§6 "(MCS) Reply" row).
type ReplyRef interface {
	ReplyTCB() *TCB
	// Bind links this reply object to thread as its receive-side reply cap
	// (thread.SetReplyObject is the caller's job too; Bind additionally
	// records the reverse pointer so a later send_ipc rendezvous can find
	// thread via the reply). Used by Endpoint.ReceiveIPC's MCS preamble
	// (§4.1 "if reply already references some other TCB, cancel it first,
	// then bind reply to this thread").
	Bind(thread *TCB)
	// Push links src (the caller, who becomes BlockedOnReply) to dest (the
	// thread awaiting a reply), with donate recording whether dest should
	// receive src's scheduling context on eventual reply (push, §4.1).
	Push(src, dest *TCB, donate bool)
	// Unlink detaches this reply from t without running reply-removal
	// side effects (used when a plain receive supersedes a stale reply,
	// §4.1 receive_ipc step: "if dest had a replyObject, unlink it").
	Unlink(t *TCB)
	// Remove detaches this reply from its linked chain as part of a reply
	// being consumed or cancelled (reply_remove_tcb, §4.3).
	Remove(t *TCB)
}

// TimeoutHandler is the external timeout-handler invocation (§6,
// out-of-scope handleTimeout) this core calls into from transfer.DoReply
// when a reply-side scheduling context isn't ready to run immediately.
type TimeoutHandler interface {
	HandleTimeout(t *TCB)
}

// NotificationSchedDonor lets transfer.CompleteSignal and
// Endpoint.ReceiveIPC reach the scheduling context a bound notification
// holds, without the tcb package importing notification (see EndpointRef for
// the identical cycle-avoidance reason).
type NotificationSchedDonor interface {
	BoundNotification
	// DonatedSchedContext returns the scheduling context this notification
	// still holds and offers for donation, or nil if none.
	DonatedSchedContext() SchedContextRef
	// TakeBackSchedContext detaches that scheduling context from the
	// notification; afterwards DonatedSchedContext returns nil. Called by
	// CompleteSignal before handing it to the TCB, and by ReceiveIPC's
	// blocking preamble (§4.1 receive_ipc preamble step 3).
	TakeBackSchedContext()
}
