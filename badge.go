package sel4ipc

// Badge is the caller-attributable identifier carried with an IPC or
// notification signal. Under Endpoint send it is whatever badge was stamped
// on the sending cap; under Notification it accumulates via bitwise OR.
type Badge uint64

// MessageLabel is the label word of a MessageInfo. For ordinary IPC this is
// whatever the sender put there; for a faulting sender it is overwritten with
// the fault's tag by DoFaultTransfer (see transfer.DoFaultTransfer).
type MessageLabel uint32

// Fault labels written into MessageInfo.Label by DoFaultTransfer. These
// double as the non-zero-label convention DoFaultReplyTransfer's caller
// checks: label == 0 means "restart the faulted thread", non-zero means
// "the replier asked to not restart it" (spec.md §7).
const (
	MessageLabelCapFault MessageLabel = iota + 1
	MessageLabelUnknownSyscall
	MessageLabelUserException
	MessageLabelVMFault
	MessageLabelTimeout // MCS only
)

// MessageInfo is the decoded form of the seL4_MessageInfo word (§6,
// "Message-info"). CapsUnwrapped is a bitmap: bit i set means extra cap slot
// i was the receiver's own endpoint cap and was replaced by its badge rather
// than transferred (the "unwrap own endpoint badge" optimisation, §4.3).
type MessageInfo struct {
	Label         MessageLabel
	Length        uint32
	ExtraCaps     uint32
	CapsUnwrapped uint32
}

// ToWord packs mi the way seL4_MessageInfo_new does. Provided for parity with
// the external wire format; the core itself never needs to round-trip through
// the packed word since TCB.MsgInfo/SetMsgInfo carry the struct directly.
func (mi MessageInfo) ToWord() uint64 {
	return uint64(mi.Label)<<12 | uint64(mi.CapsUnwrapped)<<9 | uint64(mi.ExtraCaps)<<7 | uint64(mi.Length)
}

// MessageInfoFromWord unpacks a raw seL4_MessageInfo word. Used only at the
// boundary with callers that still hand us packed words; internal transfer
// plumbing works with MessageInfo directly.
func MessageInfoFromWord(w uint64) MessageInfo {
	return MessageInfo{
		Label:         MessageLabel(w >> 12),
		CapsUnwrapped: uint32(w>>9) & 0x7,
		ExtraCaps:     uint32(w>>7) & 0x3,
		Length:        uint32(w) & 0x7f,
	}
}
