package localization

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"xcstrings-drift/core/reconcile"

	"go.uber.org/zap"
)

// Config holds configuration for the source key scanner.
type Config struct {
	// Suffix is the file name suffix of source files to scan (case-sensitive).
	Suffix string `mapstructure:"suffix" default:".swift"`
}

// keyPattern matches the first string argument of an NSLocalizedString call:
// the call name, an opening parenthesis, optional whitespace, a double-quoted
// literal, optional whitespace, then a comma. The whitespace gaps include
// newlines, so a call broken after the parenthesis still matches. Escaped
// quotes inside the literal and alternate call forms are not matched; the
// exact pattern determines which keys are detected. Compiled once at init and
// shared read-only across the single-threaded run.
var keyPattern = regexp.MustCompile(`NSLocalizedString\(\s*"([^"]+)"\s*,`)

// CollectSourceKeys walks root and collects every NSLocalizedString key found
// in files whose name ends with cfg.Suffix. Unreadable or non-UTF-8 files are
// logged as warnings and skipped; the walk continues. A root that cannot be
// walked at all is warned the same way and yields an empty set — source-side
// failures never abort the run.
func CollectSourceKeys(root string, cfg Config, log *zap.Logger) reconcile.KeySet {
	keys := reconcile.NewKeySet()

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Warn("Could not access path, skipping", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), cfg.Suffix) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Could not read file, skipping", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !utf8.Valid(content) {
			log.Warn("File is not valid UTF-8, skipping", zap.String("path", path))
			return nil
		}

		for _, match := range keyPattern.FindAllSubmatch(content, -1) {
			keys.Add(string(match[1]))
		}
		return nil
	})

	return keys
}
