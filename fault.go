package sel4ipc

// FaultTag discriminates the Fault variant union (§6, "Fault marshalling").
// FaultTimeout is only raised by the mcs build (transfer.DoReply).
// DoFaultTransfer marshals a FaultTimeout the same way in both builds; it
// does not reject one in a build without the mcs tag.
type FaultTag uint8

const (
	FaultNone FaultTag = iota
	FaultCapFault
	FaultUnknownSyscall
	FaultUserException
	FaultVMFault
	FaultTimeout
)

func (t FaultTag) String() string {
	switch t {
	case FaultNone:
		return "None"
	case FaultCapFault:
		return "CapFault"
	case FaultUnknownSyscall:
		return "UnknownSyscall"
	case FaultUserException:
		return "UserException"
	case FaultVMFault:
		return "VMFault"
	case FaultTimeout:
		return "Timeout"
	default:
		return "Fault(invalid)"
	}
}

// LookupFailure is the seL4 lookup-failure record attached to a CapFault.
// Only InvalidRoot/MissingCap/DepthMismatch/GuardMismatch carry extra words;
// the rest is carried in Words[:NumWords].
type LookupFailure struct {
	NumWords uint8
	Words    [MaxLookupFailureMRs]uint64
}

// Fault is the sender-side fault record TCB.Fault carries. A zero value
// (Tag == FaultNone) means "no fault", the condition DoIPCTransfer uses to
// choose between DoNormalTransfer and DoFaultTransfer.
type Fault struct {
	Tag FaultTag

	// CapFault
	Address        uint64
	InReceivePhase bool
	Lookup         LookupFailure

	// UnknownSyscall
	SyscallNumber uint64

	// UserException
	Number uint64
	Code   uint64

	// VMFault
	InstructionFault bool
	FSR              uint64

	// Timeout (MCS)
	TimeoutBadge Badge
	ScConsumed   uint64
}

// IsNull reports whether the TCB has no pending fault.
func (f Fault) IsNull() bool { return f.Tag == FaultNone }
