// Package localization implements the domain side of drift detection: key
// extraction from Swift sources, key extraction from .xcstrings catalogs, and
// the console report.
//
// # Extraction Contracts
//
//   - Source: a recursive walk over *.swift files matching the narrow pattern
//     NSLocalizedString("Key", — first string argument only, no escaped
//     quotes; the whitespace gaps in the pattern may span newlines.
//     Unreadable or non-UTF-8 files are warned and skipped, and an unwalkable
//     root yields an empty set. Source-side failures are never fatal.
//   - Catalog: a typed parse of the .xcstrings JSON document. Non-UTF-8
//     content is rejected before decoding, and a missing, null, or non-object
//     "strings" field is rejected with ErrMissingStrings rather than accessed
//     loosely. Catalog failures are always fatal.
//
// Both extractors return a reconcile.KeySet; the comparison itself lives in
// core/reconcile.
package localization
