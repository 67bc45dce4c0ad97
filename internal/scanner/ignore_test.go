package scanner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotokei/internal/config"
)

func TestExcluderMatching(t *testing.T) {
	exclude, err := newExcluder([]string{"vendor", "web/dist/", "**/*.pb.go", "*.min.js", "  "})
	require.NoError(t, err)

	tests := []struct {
		path     string
		excluded bool
	}{
		{path: "vendor", excluded: true},
		{path: "pkg/vendor/lib.go", excluded: true},
		{path: "vendored/lib.go", excluded: false},
		{path: "web/dist", excluded: true},
		{path: "dist", excluded: false},
		{path: "api/v1/service.pb.go", excluded: true},
		{path: "static/app.min.js", excluded: true},
		{path: "static/app.js", excluded: false},
		{path: ".", excluded: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.excluded, exclude.excluded(tt.path))
		})
	}
}

func TestIgnoreSetScopedToBase(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, filepath.Join(dir, "sub", ".gitignore"), "*.log\ngen/\n")

	set, err := ignoreSet{}.with(filepath.Join(dir, "sub"), config.Default())
	require.NoError(t, err)
	require.Len(t, set.rules, 1)

	assert.True(t, set.ignored(filepath.Join(dir, "sub", "app.log"), false))
	assert.True(t, set.ignored(filepath.Join(dir, "sub", "gen"), true))
	assert.False(t, set.ignored(filepath.Join(dir, "sub", "main.go"), false))
	assert.False(t, set.ignored(filepath.Join(dir, "other.log"), false), "outside the ignore file's directory")
}

func TestIgnoreSetDisabledByConfig(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, filepath.Join(dir, ".gitignore"), "*.log\n")

	yes := true
	set, err := ignoreSet{}.with(dir, config.Config{NoIgnore: &yes})
	require.NoError(t, err)
	assert.Empty(t, set.rules)
}
