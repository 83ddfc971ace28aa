package sel4ipc

// Architectural limits the transfer engine clamps to. These stand in for the
// bitfield-generated constants the real kernel derives from config_*
// (out of scope, see spec.md §1); values match seL4's generic (non-fastpath)
// IA-like configuration: 3 extra capabilities per message (the most the
// 2-bit MessageInfo.ExtraCaps field can count), a handful of
// always-transferred message registers, and 120 message words in total,
// registers and IPC buffer together.
const (
	// MaxExtraCaps is SEL4_MSG_MAX_EXTRA_CAPS.
	MaxExtraCaps = 3
	// FastpathMsgRegisters is the number of message registers transferred
	// through the architecture's own registers rather than the IPC buffer.
	FastpathMsgRegisters = 4
	// MsgMaxLength is the total number of message words (registers +
	// IPC buffer overflow) a single IPC can carry.
	MsgMaxLength = 120

	// Fault reply message lengths, n_syscallMessage / n_exceptionMessage /
	// n_timeoutMessage in the original. These bound DoFaultReplyTransfer.
	SyscallReplyLength   = 2
	ExceptionReplyLength = 2
	TimeoutReplyLength   = 2

	// Fault fault-message lengths used by DoFaultTransfer's CapFault path;
	// a lookup failure contributes up to this many extra words.
	MaxLookupFailureMRs = 3
)
