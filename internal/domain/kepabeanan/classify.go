package kepabeanan

import (
	"strings"

	"github.com/bridgewms/kepabeanan-api/internal/domain/entity"
)

// Item-code prefix convention used when no master record says otherwise.
// The whole convention lives here so it can be swapped or tested without
// touching the aggregation loop.
var groupPrefixes = map[string]string{
	entity.ItemGroupBahan:  "bbk",
	entity.ItemGroupProduk: "pj",
	entity.ItemGroupAsset:  "ast",
	entity.ItemGroupReject: "rej",
}

// MatchesGroup reports whether an item code/name pair belongs to the given
// classification group by the naming heuristic alone: the name contains the
// group string, the code carries the group's prefix, or (for assets) the
// name mentions "mesin". Comparison is case-insensitive.
func MatchesGroup(itemCode, itemName, group string) bool {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "" {
		return false
	}
	code := strings.ToLower(itemCode)
	name := strings.ToLower(itemName)

	if strings.Contains(name, group) {
		return true
	}
	if prefix, ok := groupPrefixes[group]; ok && strings.HasPrefix(code, prefix) {
		return true
	}
	if group == entity.ItemGroupAsset && strings.Contains(name, "mesin") {
		return true
	}
	return false
}
