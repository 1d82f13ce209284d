package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   IdentityStatus
		expected bool
	}{
		{status: IdentityStatusPending, expected: true},
		{status: IdentityStatusApproved, expected: true},
		{status: IdentityStatusRejected, expected: true},
		{status: IdentityStatusCanceled, expected: true},
		{status: IdentityStatus(""), expected: false},
		{status: IdentityStatus("frozen"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsValid())
		})
	}
}

func TestIdentity_IsApproved(t *testing.T) {
	identity := &Identity{Address: "addr-producer", Role: RoleProducer, Status: IdentityStatusPending}
	assert.False(t, identity.IsApproved())

	identity.Status = IdentityStatusApproved
	assert.True(t, identity.IsApproved())

	identity.Status = IdentityStatusRejected
	assert.False(t, identity.IsApproved())
}
