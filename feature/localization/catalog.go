package localization

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"xcstrings-drift/core/reconcile"
)

// ErrMissingStrings indicates a catalog document that lacks a top-level
// "strings" object.
var ErrMissingStrings = errors.New(`catalog has no top-level "strings" object`)

// Catalog is the typed shape of an .xcstrings document (Xcode 15+).
// Only the pieces this tool inspects are modeled; per-key translation
// payloads are carried opaquely and never examined.
//
//	{
//	  "sourceLanguage": "en",
//	  "strings": {
//	    "SomeKey": { ... },
//	    "AnotherKey": { ... }
//	  }
//	}
type Catalog struct {
	SourceLanguage string                     `json:"sourceLanguage"`
	Strings        map[string]json.RawMessage `json:"strings"`
}

// CollectCatalogKeys reads and parses the .xcstrings file at path and returns
// the set of declared keys: the immediate child keys of the "strings" object.
// Read failures, non-UTF-8 content, malformed JSON, and a missing or
// non-object "strings" field are all returned as errors; callers treat every
// one of them as fatal.
func CollectCatalogKeys(path string) (reconcile.KeySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read xcstrings file %s: %w", path, err)
	}

	// json.Unmarshal would silently replace invalid bytes with U+FFFD and
	// hand back mangled keys, so reject them up front.
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("xcstrings file %s is not valid UTF-8", path)
	}

	var doc Catalog
	if err := json.Unmarshal(data, &doc); err != nil {
		// A "strings" field of the wrong type is an invalid catalog, not a
		// syntax error.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "strings" {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingStrings)
		}
		return nil, fmt.Errorf("unable to parse xcstrings file %s: %w", path, err)
	}

	// A nil map means "strings" was absent or JSON null; an empty catalog
	// decodes to an empty, non-nil map and is valid.
	if doc.Strings == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingStrings)
	}

	keys := reconcile.NewKeySet()
	for key := range doc.Strings {
		keys.Add(key)
	}
	return keys, nil
}
