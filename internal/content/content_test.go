package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmetric.dev/internal/content"
)

// writeContentDir lays down a minimal valid content directory
func writeContentDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"features.json":     `[{"title":"Custom Fields","description":"Typed fields.","icon":"🧩"}]`,
		"packages.json":     `[{"name":"Metadata","description":"Key-value metadata.","link":"/docs/metadata","badge":"Stable"}]`,
		"projects.json":     `[{"id":"panel","title":"Admin Panel","description":"An admin panel.","link":"https://example.com"}]`,
		"stats.json":        `[{"number":"50+","label":"Packages","description":"Published packages."}]`,
		"team.json":         `[{"name":"Majid","role":"Lead","email":"majid@example.com","is_lead":true}]`,
		"testimonials.json": `[{"quote":"Great.","author":"Amir","role":"CTO"}]`,
		"blog.json":         `[{"title":"Post","excerpt":"Short.","link":"/blog/post","date":"2026-01-01"}]`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeContentDir(t)

	reg, err := content.Load(dir)
	require.NoError(t, err)

	assert.Len(t, reg.Features, 1)
	assert.Equal(t, "Custom Fields", reg.Features[0].Title)
	assert.Len(t, reg.Packages, 1)
	assert.Equal(t, "/docs/metadata", reg.Packages[0].Link)
	assert.True(t, reg.Team[0].IsLead)
}

func TestLoadMissingFile(t *testing.T) {
	dir := writeContentDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "stats.json")))

	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats.json")
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := writeContentDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog.json"), []byte(`{not json`), 0o644))

	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blog.json")
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	dir := writeContentDir(t)

	// a package without a badge would render a card with a gap
	broken := `[{"name":"Metadata","description":"Key-value metadata.","link":"/docs/metadata"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "packages.json"), []byte(broken), 0o644))

	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packages.json")
	assert.Contains(t, err.Error(), "record 0")
}

func TestValidateEmptyListsAllowed(t *testing.T) {
	reg := &content.Registry{}
	require.NoError(t, reg.Validate())
}
