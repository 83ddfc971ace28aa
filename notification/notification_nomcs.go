//go:build !mcs

package notification

// Notification is an asynchronous, badge-OR'd signal object (spec.md §3
// "Notification"): Idle (nothing pending), Waiting (receivers queued,
// nothing signalled yet) or Active (a badge is pending, queue empty).
type Notification struct {
	ntfnCore
}

// New returns an Idle notification identified by id.
func New(id uint64) *Notification {
	n := &Notification{}
	n.id = id
	n.state = StateIdle
	return n
}
