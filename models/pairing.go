package models

import "strings"

// PairingTable maps a food key to the keys it goes well with. Keys match
// item names by case-insensitive substring, so "chicken" covers "Grilled
// Chicken Breast". The table is read-only after construction; reloading
// swaps in a new table.
type PairingTable map[string][]string

// NewPairingTable normalizes every key and partner to lowercase.
func NewPairingTable(raw map[string][]string) PairingTable {
	t := make(PairingTable, len(raw))
	for key, partners := range raw {
		k := normalizeKey(key)
		if k == "" {
			continue
		}
		list := make([]string, 0, len(partners))
		for _, p := range partners {
			if p = normalizeKey(p); p != "" {
				list = append(list, p)
			}
		}
		t[k] = list
	}
	return t
}

// Paired reports whether the two item names form a listed pairing, checking
// both directions.
func (t PairingTable) Paired(a, b string) bool {
	return t.pairedOneWay(a, b) || t.pairedOneWay(b, a)
}

func (t PairingTable) pairedOneWay(item, other string) bool {
	item = normalizeKey(item)
	other = normalizeKey(other)
	for key, partners := range t {
		if !strings.Contains(item, key) {
			continue
		}
		for _, p := range partners {
			if strings.Contains(other, p) {
				return true
			}
		}
	}
	return false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
