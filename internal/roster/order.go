package roster

import (
	"sort"
	"strings"
)

// Order returns the ids of players with starters first, then by ascending
// numeric value. Ids must already satisfy IsPlayerToken. Ties on numeric
// value ("7" vs "007") fall back to the raw string, so the order is total.
func Order(players, starters Set) []string {
	ids := players.Slice()
	sort.Slice(ids, func(i, j int) bool {
		si, sj := starters.Has(ids[i]), starters.Has(ids[j])
		if si != sj {
			return si
		}
		if c := compareNumeric(ids[i], ids[j]); c != 0 {
			return c < 0
		}
		return ids[i] < ids[j]
	})
	return ids
}

// compareNumeric compares two digit strings by numeric value without
// parsing, so ids longer than an int64 still order correctly.
func compareNumeric(a, b string) int {
	a = trimZeros(a)
	b = trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
