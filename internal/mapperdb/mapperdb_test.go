package mapperdb

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookupKnown(t *testing.T) {
	info := Lookup(4)
	assert.Equal(t, uint8(4), info.ID)
	assert.Equal(t, "MMC3", info.Name)
	assert.NotEmpty(t, info.Examples)
	assert.True(t, info.Known())

	info = Lookup(0)
	assert.Equal(t, "NROM", info.Name)
	assert.Equal(t, "Super Mario Bros.", info.Examples[0])
}

func TestLookupUnknown(t *testing.T) {
	info := Lookup(254)
	assert.Equal(t, uint8(254), info.ID)
	assert.Equal(t, "Unknown", info.Name)
	assert.Empty(t, info.Examples)
	assert.False(t, info.Known())
}

func TestTableEntries(t *testing.T) {
	for id, info := range mappers {
		assert.NotEmpty(t, info.Name, "mapper %d has no name", id)
		assert.NotEmpty(t, info.Examples, "mapper %d has no examples", id)
	}
}
