package reconcile

import "sort"

// KeySet is an unordered collection of unique keys.
type KeySet map[string]struct{}

// NewKeySet creates an empty KeySet.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Add inserts a key into the set. Duplicates collapse silently.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether the set holds the given key.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of unique keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// Drift is the outcome of comparing source references against catalog
// declarations. A key can never appear in both lists.
type Drift struct {
	// MissingFromCatalog lists keys referenced in source but not declared
	// in the catalog, sorted ascending by code point.
	MissingFromCatalog []string

	// UnusedInSource lists keys declared in the catalog but never referenced
	// in source, sorted ascending by code point.
	UnusedInSource []string

	// Summary provides aggregate counts.
	Summary Summary
}

// Summary provides aggregate statistics for a drift computation.
type Summary struct {
	// SourceKeys is the number of unique keys found in source.
	SourceKeys int

	// CatalogKeys is the number of keys declared in the catalog.
	CatalogKeys int

	// Missing counts source keys absent from the catalog.
	Missing int

	// Unused counts catalog keys absent from source.
	Unused int
}

// Diff computes the two set differences between source and catalog keys.
// It is a pure function with no side effects; both inputs must be fully
// materialized before the call. The result is deterministic regardless of
// map iteration order.
func Diff(source, catalog KeySet) Drift {
	missing := make([]string, 0)
	for key := range source {
		if !catalog.Contains(key) {
			missing = append(missing, key)
		}
	}

	unused := make([]string, 0)
	for key := range catalog {
		if !source.Contains(key) {
			unused = append(unused, key)
		}
	}

	// Sort for deterministic output
	sort.Strings(missing)
	sort.Strings(unused)

	return Drift{
		MissingFromCatalog: missing,
		UnusedInSource:     unused,
		Summary: Summary{
			SourceKeys:  source.Len(),
			CatalogKeys: catalog.Len(),
			Missing:     len(missing),
			Unused:      len(unused),
		},
	}
}
