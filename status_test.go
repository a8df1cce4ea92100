package scfs

import (
	"encoding/binary"
	"testing"
)

func featureAccountData(slot uint64, set bool) []byte {
	data := make([]byte, featureDataLen)
	if set {
		data[0] = slotSetTag
		binary.LittleEndian.PutUint64(data[1:], slot)
	}
	return data
}

func TestStatusFromAccount(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		want    Status
	}{
		{"absent account", nil, Status{State: Inactive}},
		{"empty data", &Account{}, Status{State: Inactive}},
		{"unrecognized tag", &Account{Data: []byte{0x02, 0, 0, 0, 0, 0, 0, 0, 0}}, Status{State: Inactive}},
		{"truncated active payload", &Account{Data: []byte{slotSetTag, 1, 2}}, Status{State: Inactive}},
		{"slot unset", &Account{Data: featureAccountData(0, false)}, Status{State: Pending}},
		{"slot zero", &Account{Data: featureAccountData(0, true)}, ActiveAt(0)},
		{"slot set", &Account{Data: featureAccountData(123456789, true)}, ActiveAt(123456789)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromAccount(tt.account); got != tt.want {
				t.Errorf("statusFromAccount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusFromAccount_IgnoresTrailingBytes(t *testing.T) {
	data := append(featureAccountData(42, true), 0xFF, 0xFF)
	if got := statusFromAccount(&Account{Data: data}); got != ActiveAt(42) {
		t.Errorf("statusFromAccount() = %v, want %v", got, ActiveAt(42))
	}
}
