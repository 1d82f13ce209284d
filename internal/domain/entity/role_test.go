package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{role: RoleProducer, expected: true},
		{role: RoleFactory, expected: true},
		{role: RoleRetailer, expected: true},
		{role: RoleConsumer, expected: true},
		{role: Role(""), expected: false},
		{role: Role("wholesaler"), expected: false},
		{role: Role("PRODUCER"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.IsValid())
		})
	}
}

func TestRole_CanTransferTo(t *testing.T) {
	roles := []Role{RoleProducer, RoleFactory, RoleRetailer, RoleConsumer}
	allowed := map[Role]Role{
		RoleProducer: RoleFactory,
		RoleFactory:  RoleRetailer,
		RoleRetailer: RoleConsumer,
	}

	// Exactly the three forward steps are allowed; everything else, including
	// skips, reversals and self transfers, is not.
	for _, from := range roles {
		for _, to := range roles {
			expected := allowed[from] == to
			assert.Equal(t, expected, from.CanTransferTo(to), "%s -> %s", from, to)
		}
	}
}

func TestRole_IsTerminal(t *testing.T) {
	assert.False(t, RoleProducer.IsTerminal())
	assert.False(t, RoleFactory.IsTerminal())
	assert.False(t, RoleRetailer.IsTerminal())
	assert.True(t, RoleConsumer.IsTerminal())
}

func TestRole_RequiresParentAsset(t *testing.T) {
	assert.False(t, RoleProducer.RequiresParentAsset())
	assert.True(t, RoleFactory.RequiresParentAsset())
	assert.True(t, RoleRetailer.RequiresParentAsset())
	assert.False(t, RoleConsumer.RequiresParentAsset())
}
