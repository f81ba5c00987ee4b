package localization

import (
	"fmt"
	"io"

	"xcstrings-drift/core/reconcile"
)

// Report renders drift findings for console consumption.
type Report struct {
	// SwiftRoot is the scanned source root, echoed in the progress lines.
	SwiftRoot string
	// CatalogPath is the catalog file path, echoed in the progress lines.
	CatalogPath string
	// Drift is the reconciliation outcome to render.
	Drift reconcile.Drift
}

// Write prints the full report: progress lines with key counts, then the two
// drift sections. An empty section renders a success line instead of a key
// list. The report is advisory; drift never fails the run.
func (r Report) Write(w io.Writer) {
	s := r.Drift.Summary

	fmt.Fprintf(w, "📂 Scanning Swift files under: %s\n", r.SwiftRoot)
	fmt.Fprintf(w, "➡️  Found %d NSLocalizedString key(s) in Swift.\n", s.SourceKeys)

	fmt.Fprintf(w, "\n📄 Reading xcstrings file: %s\n", r.CatalogPath)
	fmt.Fprintf(w, "➡️  Found %d key(s) in xcstrings.\n", s.CatalogKeys)

	fmt.Fprintln(w, "\n=== 🔎 Keys used in Swift but MISSING from the xcstrings catalog ===")
	if len(r.Drift.MissingFromCatalog) == 0 {
		fmt.Fprintln(w, "✅ All NSLocalizedString keys in Swift are present in the catalog.")
	} else {
		for _, key := range r.Drift.MissingFromCatalog {
			fmt.Fprintln(w, key)
		}
		fmt.Fprintf(w, "\nTotal missing: %d\n", s.Missing)
	}

	fmt.Fprintln(w, "\n=== 🧹 Keys in the xcstrings catalog but UNUSED in Swift ===")
	if len(r.Drift.UnusedInSource) == 0 {
		fmt.Fprintln(w, "✅ No unused keys found in the catalog.")
	} else {
		for _, key := range r.Drift.UnusedInSource {
			fmt.Fprintln(w, key)
		}
		fmt.Fprintf(w, "\nTotal unused: %d\n", s.Unused)
	}
}
