package kepabeanan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgewms/kepabeanan-api/internal/domain/kepabeanan"
)

// TestMatchesGroup_PrefixConvention checks the item-code prefix fallback used
// when no master record carries a group: bbk → bahan, pj → produk,
// ast → asset, rej → reject.
func TestMatchesGroup_PrefixConvention(t *testing.T) {
	assert.True(t, kepabeanan.MatchesGroup("BBK-001", "Steel Coil", "bahan"))
	assert.True(t, kepabeanan.MatchesGroup("PJ-100", "Finished Pump", "produk"))
	assert.True(t, kepabeanan.MatchesGroup("AST-07", "Press", "asset"))
	assert.True(t, kepabeanan.MatchesGroup("REJ-42", "Scrap", "reject"))

	assert.False(t, kepabeanan.MatchesGroup("BBK-001", "Steel Coil", "produk"),
		"a bahan-prefixed code must not match produk")
}

// TestMatchesGroup_NameContainsGroup matches on the item name containing the
// group string, independently of the code.
func TestMatchesGroup_NameContainsGroup(t *testing.T) {
	assert.True(t, kepabeanan.MatchesGroup("X-1", "Bahan Baku Karet", "bahan"))
	assert.True(t, kepabeanan.MatchesGroup("X-2", "PRODUK JADI", "produk"),
		"comparison must be case-insensitive")
}

// TestMatchesGroup_MesinCountsAsAsset: machine names match the asset group
// even without the ast prefix.
func TestMatchesGroup_MesinCountsAsAsset(t *testing.T) {
	assert.True(t, kepabeanan.MatchesGroup("MC-01", "Mesin Jahit", "asset"))
	assert.False(t, kepabeanan.MatchesGroup("MC-01", "Mesin Jahit", "bahan"))
}

func TestMatchesGroup_EmptyGroup(t *testing.T) {
	assert.False(t, kepabeanan.MatchesGroup("BBK-001", "Steel Coil", ""))
	assert.False(t, kepabeanan.MatchesGroup("BBK-001", "Steel Coil", "   "))
}

// TestMatchesGroup_NoGroupMatches: an item matching no group is excluded from
// every group filter (the aggregation layer then degrades to no-filter when
// the whole allow-list comes out empty).
func TestMatchesGroup_NoGroupMatches(t *testing.T) {
	for _, group := range []string{"bahan", "produk", "asset", "reject"} {
		assert.False(t, kepabeanan.MatchesGroup("zz-1", "Unclassified Thing", group))
	}
}
