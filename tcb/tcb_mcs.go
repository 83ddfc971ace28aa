//go:build mcs

package tcb

// TCB is the MCS build's thread-control-block view, adding the reply-object
// and scheduling-context fields the non-MCS build has no use for (spec.md
// §3 "(MCS) Reply object" and "(MCS) Scheduling context").
type TCB struct {
	tcbCore

	replyObject    ReplyRef
	schedContext   SchedContextRef
	timeoutHandler TimeoutHandler
	validTimeout   bool
}

// ReplyObject returns the reply this TCB is waiting on (set when it becomes
// BlockedOnReply via a call rendezvous), or nil.
func (t *TCB) ReplyObject() ReplyRef { return t.replyObject }

// SetReplyObject installs reply as this TCB's reply object.
func (t *TCB) SetReplyObject(reply ReplyRef) { t.replyObject = reply }

// SchedContext returns this TCB's scheduling context, or nil if none is
// attached (a thread awaiting donation, for instance).
func (t *TCB) SchedContext() SchedContextRef { return t.schedContext }

// SetSchedContext attaches sc directly, without running donation
// bookkeeping (used by fixtures and by DonateSchedContextTo's receiver
// side).
func (t *TCB) SetSchedContext(sc SchedContextRef) { t.schedContext = sc }

// DonateSchedContextTo hands this TCB's scheduling context to dest and
// clears its own reference, mirroring schedContext_donate's effect on the
// donor (§4.1 send_ipc MCS branch: "donate src's scheduling context to
// dest").
func (t *TCB) DonateSchedContextTo(dest *TCB) {
	if t.schedContext == nil {
		return
	}
	sc := t.schedContext
	t.schedContext = nil
	sc.ScheduleContextDonate(dest)
	dest.schedContext = sc
}

// ValidTimeoutHandler reports whether this TCB has a valid timeout-fault
// handler installed (valid_timeout_handler, §6 "TCB" row).
func (t *TCB) ValidTimeoutHandler() bool { return t.validTimeout }

// SetValidTimeoutHandler is a fixture/CSpace-collaborator hook: whatever
// installs t's timeout-handler endpoint cap flips this accordingly.
func (t *TCB) SetValidTimeoutHandler(v bool) { t.validTimeout = v }

// TimeoutHandler returns the collaborator transfer.DoReply invokes when a
// reply leaves this TCB runnable but without a ready scheduling context.
func (t *TCB) TimeoutHandler() TimeoutHandler { return t.timeoutHandler }

// SetTimeoutHandler installs h as this TCB's timeout-handler collaborator.
func (t *TCB) SetTimeoutHandler(h TimeoutHandler) { t.timeoutHandler = h }
