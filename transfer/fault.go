package transfer

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// DoFaultTransfer marshals sender's fault into receiver's message registers
// by fault tag, then sets receiver's MsgInfo/Badge (§4.3 "do_fault_transfer"
// table).
func DoFaultTransfer(sender, receiver *tcb.TCB, badge sel4ipc.Badge) {
	f := sender.Fault()
	var label sel4ipc.MessageLabel
	var n int

	switch f.Tag {
	case sel4ipc.FaultCapFault:
		receiver.SetMR(0, sender.FaultIP())
		receiver.SetMR(1, f.Address)
		receiver.SetMR(2, boolWord(f.InReceivePhase))
		n = 3 + setLookupFaultMRs(receiver, 3, f.Lookup)
		label = sel4ipc.MessageLabelCapFault
	case sel4ipc.FaultUnknownSyscall:
		receiver.SetMR(0, f.SyscallNumber)
		n = 1
		label = sel4ipc.MessageLabelUnknownSyscall
	case sel4ipc.FaultUserException:
		receiver.SetMR(0, f.Number)
		receiver.SetMR(1, f.Code)
		n = 2
		label = sel4ipc.MessageLabelUserException
	case sel4ipc.FaultVMFault:
		receiver.SetMR(0, sender.FaultIP())
		receiver.SetMR(1, f.Address)
		receiver.SetMR(2, boolWord(f.InstructionFault))
		receiver.SetMR(3, f.FSR)
		n = 4
		label = sel4ipc.MessageLabelVMFault
	case sel4ipc.FaultTimeout:
		receiver.SetMR(0, uint64(f.TimeoutBadge))
		receiver.SetMR(1, f.ScConsumed)
		n = 2
		label = sel4ipc.MessageLabelTimeout
	default:
		sel4ipc.Assert(false, "do_fault_transfer: invalid fault tag")
	}

	receiver.SetMsgInfo(sel4ipc.MessageInfo{Label: label, Length: uint32(n)})
	receiver.SetBadgeReg(badge)
}

// setLookupFaultMRs writes a CapFault's lookup-failure payload starting at
// message register offset, returning the number of words written.
func setLookupFaultMRs(receiver *tcb.TCB, offset int, lf sel4ipc.LookupFailure) int {
	n := int(lf.NumWords)
	if n > len(lf.Words) {
		n = len(lf.Words)
	}
	for i := 0; i < n; i++ {
		receiver.SetMR(offset+i, lf.Words[i])
	}
	return n
}

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// DoFaultReplyTransfer copies a reply's message back into the receiver's
// (the previously-faulted thread's) registers, clamped to the fault kind's
// architectural reply length, and reports whether the faulted thread should
// restart (§4.3 "do_fault_reply_transfer"). A non-zero reply label means the
// replier explicitly asked not to restart it (§7).
func DoFaultReplyTransfer(sender, receiver *tcb.TCB) (restart bool) {
	f := receiver.Fault()
	info := sender.MsgInfo()

	var maxLen int
	switch f.Tag {
	case sel4ipc.FaultUnknownSyscall:
		maxLen = sel4ipc.SyscallReplyLength
	case sel4ipc.FaultUserException:
		maxLen = sel4ipc.ExceptionReplyLength
	case sel4ipc.FaultTimeout:
		maxLen = sel4ipc.TimeoutReplyLength
	default:
		// CapFault/VMFault replies copy no registers and always report
		// restart, whatever the reply label.
		return true
	}

	n := int(info.Length)
	if n > maxLen {
		n = maxLen
	}
	tcb.CopyMRs(receiver, sender, n)
	return info.Label == 0
}
