package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsset_HasParent(t *testing.T) {
	root := &Asset{ID: 1, CreatorAddress: "addr-producer", Name: "Wheat", TotalSupply: 1000}
	assert.False(t, root.HasParent())

	parentID := uint64(1)
	derived := &Asset{ID: 2, CreatorAddress: "addr-factory", Name: "Flour", TotalSupply: 100, ParentAssetID: &parentID}
	assert.True(t, derived.HasParent())
}
