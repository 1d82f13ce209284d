package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferStatus_IsTerminal(t *testing.T) {
	assert.False(t, TransferStatusPending.IsTerminal())
	assert.True(t, TransferStatusAccepted.IsTerminal())
	assert.True(t, TransferStatusRejected.IsTerminal())
}

func TestTransferIntent_Involves(t *testing.T) {
	intent := &TransferIntent{FromAddress: "addr-producer", ToAddress: "addr-factory"}

	assert.True(t, intent.Involves("addr-producer"))
	assert.True(t, intent.Involves("addr-factory"))
	assert.False(t, intent.Involves("addr-retailer"))
}
