package localization_test

import (
	"os"
	"path/filepath"
	"testing"

	"xcstrings-drift/feature/localization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Localized.xcstrings")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectCatalogKeys(t *testing.T) {
	t.Run("Valid Catalog", func(t *testing.T) {
		path := writeCatalog(t, `{
			"sourceLanguage": "en",
			"strings": {
				"Hello": {"localizations": {"en": {"stringUnit": {"value": "Hello"}}}},
				"Bye": {}
			}
		}`)

		keys, err := localization.CollectCatalogKeys(path)
		require.NoError(t, err)
		assert.Equal(t, 2, keys.Len())
		assert.True(t, keys.Contains("Hello"))
		assert.True(t, keys.Contains("Bye"))
	})

	t.Run("Empty Strings Object", func(t *testing.T) {
		path := writeCatalog(t, `{"strings": {}}`)

		keys, err := localization.CollectCatalogKeys(path)
		require.NoError(t, err)
		assert.Equal(t, 0, keys.Len())
	})

	t.Run("Nested Keys Not Collected", func(t *testing.T) {
		path := writeCatalog(t, `{"strings": {"Outer": {"localizations": {"en": {}}}}}`)

		keys, err := localization.CollectCatalogKeys(path)
		require.NoError(t, err)
		assert.Equal(t, 1, keys.Len())
		assert.False(t, keys.Contains("localizations"))
		assert.False(t, keys.Contains("en"))
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := localization.CollectCatalogKeys(filepath.Join(t.TempDir(), "nope.xcstrings"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Invalid UTF8 Is Fatal", func(t *testing.T) {
		path := writeCatalog(t, "{\"strings\": {\"Key\xff\": {}}}")

		_, err := localization.CollectCatalogKeys(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UTF-8")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := writeCatalog(t, `{"strings": {`)

		_, err := localization.CollectCatalogKeys(path)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, localization.ErrMissingStrings)
	})

	t.Run("Missing Strings Field", func(t *testing.T) {
		path := writeCatalog(t, `{"foo": {}}`)

		_, err := localization.CollectCatalogKeys(path)
		assert.ErrorIs(t, err, localization.ErrMissingStrings)
		assert.Contains(t, err.Error(), "strings")
	})

	t.Run("Strings Is Null", func(t *testing.T) {
		path := writeCatalog(t, `{"strings": null}`)

		_, err := localization.CollectCatalogKeys(path)
		assert.ErrorIs(t, err, localization.ErrMissingStrings)
	})

	t.Run("Strings Not An Object", func(t *testing.T) {
		path := writeCatalog(t, `{"strings": ["Hello", "Bye"]}`)

		_, err := localization.CollectCatalogKeys(path)
		assert.ErrorIs(t, err, localization.ErrMissingStrings)
	})
}
