package scfs

import "encoding/binary"

// Feature account data layout: a one-byte option tag for the
// activation slot, followed by the slot as a little-endian u64 when
// the tag is set.
const (
	slotUnsetTag = 0x00
	slotSetTag   = 0x01

	featureDataLen = 9
)

// statusFromAccount classifies one fetched account payload. It is
// total: any payload that is absent or does not carry a recognizable
// feature layout classifies as [Inactive].
func statusFromAccount(account *Account) Status {
	if account == nil || len(account.Data) == 0 {
		return Status{State: Inactive}
	}
	switch account.Data[0] {
	case slotUnsetTag:
		return Status{State: Pending}
	case slotSetTag:
		if len(account.Data) < featureDataLen {
			return Status{State: Inactive}
		}
		return ActiveAt(binary.LittleEndian.Uint64(account.Data[1:featureDataLen]))
	default:
		return Status{State: Inactive}
	}
}
