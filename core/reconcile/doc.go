// Package reconcile provides the set arithmetic at the heart of drift
// detection: given the keys referenced by source code and the keys declared
// by a catalog, compute which keys exist on only one side.
//
// # Design
//
// Both inputs are plain in-memory KeySets; Diff is a pure function over them.
// Collection order is irrelevant — the two difference lists are sorted
// ascending by code point, so shuffling file visitation order or catalog key
// insertion order never changes the output.
//
// # Usage Example
//
//	drift := reconcile.Diff(sourceKeys, catalogKeys)
//	for _, key := range drift.MissingFromCatalog {
//	    fmt.Println(key)
//	}
package reconcile
