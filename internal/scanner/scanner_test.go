package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotokei/internal/config"
	"gotokei/internal/languages"
	"gotokei/internal/model"
)

// 编译期保证 Service 满足 model.Collector。
var _ model.Collector = (*Service)(nil)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestService(t *testing.T, cfg config.Config, opts ...Option) *Service {
	t.Helper()

	service, err := NewService(cfg, opts...)
	require.NoError(t, err)
	return service
}

func scanDir(t *testing.T, service *Service, dir string, excluded ...string) Result {
	t.Helper()

	result, err := service.Scan(context.Background(), []string{dir}, excluded)
	require.NoError(t, err)
	return result
}

func boolPtr(v bool) *bool {
	return &v
}

// TestScanSingleFile 验证 scan 支持“直接传单文件路径”。
func TestScanSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "single.go")

	writeFixtureFile(t, filePath, strings.Join([]string{
		"package main",
		"// top comment",
		"func main() { x := 1 // inline }",
	}, "\n"))

	service := newTestService(t, config.Default(), WithWorkers(2))
	result := scanDir(t, service, filePath)

	goStats, err := result.Languages.Get(languages.Go)
	require.NoError(t, err)
	assert.Equal(t, 1, goStats.Files())
	assert.Equal(t, 2, goStats.Code)
	assert.Equal(t, 1, goStats.Comments)
	assert.Equal(t, 0, goStats.Blanks)

	require.Len(t, goStats.Reports, 1)
	assert.Equal(t, filepath.ToSlash(filePath), goStats.Reports[0].Name)
	assert.Empty(t, result.Errors)
}

// TestScanDirectoryTotalFiles 验证目录扫描时 total 的文件数与实际文件数一致。
func TestScanDirectoryTotalFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\nfunc main() {}\n")
	writeFixtureFile(t, filepath.Join(tempDir, "web", "app.js"), "const x = 1; // js comment\n")
	writeFixtureFile(t, filepath.Join(tempDir, "notes.unknownext"), "not a source file")

	service := newTestService(t, config.Default(), WithWorkers(4))
	result := scanDir(t, service, tempDir)

	assert.Equal(t, 2, result.Languages.Len())
	assert.Equal(t, 2, result.Languages.Total().Files())
	assert.Equal(t, 3, result.Languages.Total().Code)
	assert.Empty(t, result.Errors)

	js, err := result.Languages.Get(languages.JavaScript)
	require.NoError(t, err)
	require.Len(t, js.Reports, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(tempDir, "web", "app.js")), js.Reports[0].Name)
}

// TestScanUnsupportedSingleFile 验证单文件模式下无法识别的文件记为 ScanError。
func TestScanUnsupportedSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "demo.unknownext")
	writeFixtureFile(t, filePath, "plain text")

	service := newTestService(t, config.Default(), WithWorkers(1))
	result := scanDir(t, service, filePath)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "unsupported file type")
	assert.Equal(t, 0, result.Languages.Len())
}

func TestScanMissingRootIsRecorded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	service := newTestService(t, config.Default())
	result := scanDir(t, service, missing)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "stat path")
}

func TestScanEmptyPathIsError(t *testing.T) {
	service := newTestService(t, config.Default())

	_, err := service.Scan(context.Background(), []string{"  "}, nil)
	require.Error(t, err)
}

func TestScanEmptyDirectory(t *testing.T) {
	service := newTestService(t, config.Default())
	result := scanDir(t, service, t.TempDir())

	assert.Equal(t, 0, result.Languages.Len())
	total := result.Languages.Total()
	assert.Equal(t, 0, total.Files())
	assert.Equal(t, 0, total.Lines())
}

func TestScanHiddenFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, ".hidden", "x.go"), "package x\n")
	writeFixtureFile(t, filepath.Join(tempDir, ".dot.go"), "package dot\n")
	writeFixtureFile(t, filepath.Join(tempDir, ".git", "hooks", "pre-commit.sh"), "echo hi\n")

	t.Run("skipped by default", func(t *testing.T) {
		result := scanDir(t, newTestService(t, config.Default()), tempDir)
		assert.Equal(t, 1, result.Languages.Total().Files())
	})

	t.Run("included when hidden", func(t *testing.T) {
		cfg := config.Config{Hidden: boolPtr(true)}
		result := scanDir(t, newTestService(t, cfg), tempDir)

		assert.Equal(t, 3, result.Languages.Total().Files())
		_, err := result.Languages.Get(languages.Sh)
		require.ErrorIs(t, err, model.ErrLanguageTypeNotFound, "VCS directories are always skipped")
	})
}

func TestScanRespectsIgnoreFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, ".gitignore"), "build/\n*.gen.go\n")
	writeFixtureFile(t, filepath.Join(tempDir, ".tokeignore"), "skip.go\n")
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "x.gen.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "build", "a.go"), "package build\n")
	writeFixtureFile(t, filepath.Join(tempDir, "skip.go"), "package main\n")

	tests := []struct {
		name  string
		cfg   config.Config
		files int
	}{
		{name: "default", cfg: config.Default(), files: 1},
		{name: "no ignore", cfg: config.Config{NoIgnore: boolPtr(true)}, files: 4},
		{name: "no ignore vcs", cfg: config.Config{NoIgnoreVCS: boolPtr(true)}, files: 3},
		{name: "no ignore dot", cfg: config.Config{NoIgnoreDot: boolPtr(true)}, files: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scanDir(t, newTestService(t, tt.cfg), tempDir)
			assert.Equal(t, tt.files, result.Languages.Total().Files())
		})
	}
}

func TestScanParentIgnoreFiles(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, ".git"), 0o755))
	writeFixtureFile(t, filepath.Join(parent, ".gitignore"), "ignored.go\n")

	root := filepath.Join(parent, "root")
	writeFixtureFile(t, filepath.Join(root, "ignored.go"), "package root\n")
	writeFixtureFile(t, filepath.Join(root, "keep.go"), "package root\n")

	result := scanDir(t, newTestService(t, config.Default()), root)
	assert.Equal(t, 1, result.Languages.Total().Files())

	cfg := config.Config{NoIgnoreParent: boolPtr(true)}
	result = scanDir(t, newTestService(t, cfg), root)
	assert.Equal(t, 2, result.Languages.Total().Files())
}

func TestScanExcludedPatterns(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "app.js"), "let a = 1;\n")
	writeFixtureFile(t, filepath.Join(tempDir, "app.min.js"), "let a=1;\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "lib.go"), "package lib\n")
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")

	result := scanDir(t, newTestService(t, config.Default()), tempDir, "vendor", "*.min.js")

	assert.Equal(t, 2, result.Languages.Total().Files())
	goStats, err := result.Languages.Get(languages.Go)
	require.NoError(t, err)
	assert.Equal(t, 1, goStats.Files())
}

func TestScanInvalidExcludePattern(t *testing.T) {
	service := newTestService(t, config.Default())

	_, err := service.Scan(context.Background(), []string{t.TempDir()}, []string{"[unclosed"})
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestScanTypeFilter(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "app.js"), "let a = 1;\n")

	cfg := config.Config{Types: []string{"Go"}}
	result := scanDir(t, newTestService(t, cfg), tempDir)

	assert.Equal(t, []string{"Go"}, result.Languages.LanguageNames())
}

func TestNewServiceRejectsUnknownType(t *testing.T) {
	_, err := NewService(config.Config{Types: []string{"NotALanguage"}})
	require.ErrorIs(t, err, languages.ErrUnknownLanguage)
}

func TestScanDetectsShebangAndEmbeddedLanguages(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "tool"), "#!/usr/bin/env python3\nprint(1)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "index.html"), "<html>\n<script>\nlet a = 1;\n</script>\n</html>\n")

	result := scanDir(t, newTestService(t, config.Default()), tempDir)

	python, err := result.Languages.Get(languages.Python)
	require.NoError(t, err)
	assert.Equal(t, 1, python.Code)
	assert.Equal(t, 1, python.Comments, "shebang line is a comment")

	html, err := result.Languages.Get(languages.Html)
	require.NoError(t, err)
	assert.Equal(t, 4, html.Code)
	require.Contains(t, html.Children, languages.JavaScript)
	assert.Equal(t, 1, html.Children[languages.JavaScript][0].Stats.Code)
}

func TestScanSkipsBinaryFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "blob.go"), "package\x00\x00\x00main\n")

	reg := prometheus.NewRegistry()
	service := newTestService(t, config.Default(), WithRegisterer(reg))
	result := scanDir(t, service, tempDir)

	assert.Equal(t, 1, result.Languages.Total().Files())
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.FilesCounted.WithLabelValues("Go")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.FilesSkipped.WithLabelValues(skipBinary)), 0)
	assert.Positive(t, testutil.ToFloat64(service.metrics.BytesRead))
}

// TestScanWorkerCountDoesNotChangeTotals 验证归并结果与 worker 数量无关。
func TestScanWorkerCountDoesNotChangeTotals(t *testing.T) {
	tempDir := t.TempDir()
	for i, name := range []string{"a", "b", "c", "d", "e", "f"} {
		content := strings.Repeat("x := 1\n// c\n\n", i+1)
		writeFixtureFile(t, filepath.Join(tempDir, name+".go"), "package p\n"+content)
		writeFixtureFile(t, filepath.Join(tempDir, "web", name+".js"), content)
	}

	single := scanDir(t, newTestService(t, config.Default(), WithWorkers(1)), tempDir)
	many := scanDir(t, newTestService(t, config.Default(), WithWorkers(8)), tempDir)

	assert.Equal(t, single.Languages.TotalPlain(), many.Languages.TotalPlain())
	assert.Equal(t, single.Languages.LanguagesPlain(), many.Languages.LanguagesPlain())
	assert.Equal(t, single.Languages.ReportCompactPlain(), many.Languages.ReportCompactPlain())
}

func TestScanCancelledContext(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := newTestService(t, config.Default())
	result, err := service.Scan(ctx, []string{tempDir}, nil)

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result.Languages)
}

func TestGetStatisticsThroughCollector(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n\n// c\n")

	langs := model.NewLanguages()
	err := langs.GetStatistics(context.Background(), newTestService(t, config.Default()), []string{tempDir}, nil)
	require.NoError(t, err)

	total := langs.Total()
	assert.Equal(t, 1, total.Code)
	assert.Equal(t, 1, total.Comments)
	assert.Equal(t, 1, total.Blanks)
	assert.Equal(t, 1, total.Files())
}
