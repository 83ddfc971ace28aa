//go:build !mcs

package tcb

// TCB is the non-MCS build's thread-control-block view: the caller-cap
// scheme lives entirely in CSpace (SetupCallerCap/DeleteCallerCap), so no
// reply-object or scheduling-context fields exist here at all (spec.md §9
// "Feature-driven behavioural variants: do not branch at runtime").
type TCB struct {
	tcbCore
}
