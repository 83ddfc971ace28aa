// Package tcb defines the narrow slice of thread-control-block state that
// the IPC core is allowed to read and mutate (spec.md §3 "TCB blocking
// state" and §6 "External interfaces"). Everything else about a thread —
// its address space, its capability space contents, its scheduling
// priority — belongs to collaborators reached only through the interfaces
// declared in collaborators.go.
package tcb

// TSType is the thread-state tag a TCB carries (threadState.tsType). The
// real kernel stores this as a bitfield byte; DecodeTSType is the validated
// decode spec.md §9 asks for in place of the original's direct byte→enum
// transmute.
type TSType uint8

const (
	ThreadStateInactive TSType = iota
	ThreadStateRunning
	ThreadStateRestart
	ThreadStateBlockedOnReceive
	ThreadStateBlockedOnSend
	ThreadStateBlockedOnNotification
	ThreadStateBlockedOnReply
	tsTypeCount
)

func (t TSType) String() string {
	switch t {
	case ThreadStateInactive:
		return "Inactive"
	case ThreadStateRunning:
		return "Running"
	case ThreadStateRestart:
		return "Restart"
	case ThreadStateBlockedOnReceive:
		return "BlockedOnReceive"
	case ThreadStateBlockedOnSend:
		return "BlockedOnSend"
	case ThreadStateBlockedOnNotification:
		return "BlockedOnNotification"
	case ThreadStateBlockedOnReply:
		return "BlockedOnReply"
	default:
		return "TSType(invalid)"
	}
}

// DecodeTSType validates a raw state byte before treating it as a TSType.
// The original kernel does an unchecked transmute here (spec.md §9); this
// core fails closed instead.
func DecodeTSType(b byte) (TSType, error) {
	if b >= byte(tsTypeCount) {
		return 0, errInvalidThreadState
	}
	return TSType(b), nil
}

// IsRunnable reports whether a thread in state t would be picked up by the
// scheduler's ready queue. Only Running and Restart are runnable; every
// Blocked* state and Inactive are not.
func (t TSType) IsRunnable() bool {
	return t == ThreadStateRunning || t == ThreadStateRestart
}
