// Package transfer implements the IPC transfer engine (spec.md §4.3): the
// behaviour "attached to the TCB" that moves message registers, extra
// capabilities, and fault payloads between a sender and a receiver once
// Endpoint or Notification has decided a rendezvous is happening.
package transfer

import (
	sel4ipc "github.com/reL4team2/sel4-ipc"
	"github.com/reL4team2/sel4-ipc/tcb"
)

// DoIPCTransfer routes to DoNormalTransfer or DoFaultTransfer depending on
// whether sender has a pending fault (§4.3 "do_ipc_transfer").
func DoIPCTransfer(sender, receiver *tcb.TCB, ep tcb.EndpointRef, badge sel4ipc.Badge, canGrant bool) {
	if sender.Fault().IsNull() {
		DoNormalTransfer(sender, receiver, ep, badge, canGrant)
	} else {
		DoFaultTransfer(sender, receiver, badge)
	}
}

// DoNormalTransfer moves message registers and (if canGrant) extra
// capabilities from sender to receiver (§4.3 "do_normal_transfer").
func DoNormalTransfer(sender, receiver *tcb.TCB, ep tcb.EndpointRef, badge sel4ipc.Badge, canGrant bool) {
	info := sender.MsgInfo()

	var extraCaps []tcb.Cap
	if canGrant {
		var err error
		extraCaps, err = sender.CSpace().LookupExtraCaps(sender, info)
		if err != nil {
			// Recoverable (§7): treat a failed lookup as no extra caps.
			extraCaps = nil
		}
	}

	n := tcb.CopyMRs(receiver, sender, int(info.Length))
	unwrapped, transferred := SetTransferCaps(receiver, ep, extraCaps)

	receiver.SetMsgInfo(sel4ipc.MessageInfo{
		Label:         info.Label,
		Length:        uint32(n),
		ExtraCaps:     transferred,
		CapsUnwrapped: unwrapped,
	})
	receiver.SetBadgeReg(badge)
}

// SetTransferCaps installs the sender's extra caps into receiver, one per
// available receive slot, stopping early on the first derivation failure or
// exhausted receive slot (§4.3 "set_transfer_caps"). ep is the endpoint the
// message arrived on, or nil for a reply/notification context where the
// "unwrap own badge" optimisation never applies.
func SetTransferCaps(receiver *tcb.TCB, ep tcb.EndpointRef, caps []tcb.Cap) (capsUnwrapped, extraCaps uint32) {
	buf, ok := receiver.LookupMutIPCBuffer()
	if !ok {
		// Silent, per §7: extraCaps and capsUnwrapped both stay zero.
		return 0, 0
	}

	i := 0
	for ; i < len(caps); i++ {
		c := caps[i]
		if c.Null {
			break
		}
		if c.IsEndpoint && ep != nil && c.EndpointID == ep.EndpointID() {
			buf.CapsOrBadges[i] = uint64(c.Badge)
			capsUnwrapped |= 1 << uint(i)
			continue
		}
		derived, ok := receiver.CSpace().DeriveCap(c)
		if !ok || derived.Null {
			break
		}
		slot, ok := receiver.CSpace().ReceiveSlot(receiver)
		if !ok {
			break
		}
		receiver.CSpace().CteInsert(slot, derived)
	}
	return capsUnwrapped, uint32(i)
}
