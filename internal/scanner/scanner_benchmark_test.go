package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gotokei/internal/config"
)

func writeBenchmarkFile(b *testing.B, path, content string) {
	b.Helper()

	require.NoError(b, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(b, os.WriteFile(path, []byte(content), 0o644))
}

// largeGoSource 生成约 6000 行、代码与注释交错的 Go 源码。
func largeGoSource() string {
	var sb strings.Builder
	sb.WriteString("package main\n\n")
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&sb, "var value%d = \"// not a comment\" // inline comment\n", i)
		sb.WriteString("/* block\n   comment */\n")
		fmt.Fprintf(&sb, "func f%d() { _ = value%d }\n", i, i)
	}
	return sb.String()
}

// prepareBenchmarkTree 创建混合语言目录：Go、带 <script> 的 HTML、带围栏代码的 Markdown。
func prepareBenchmarkTree(b *testing.B) string {
	b.Helper()

	root := b.TempDir()
	for i := 0; i < 200; i++ {
		writeBenchmarkFile(b, filepath.Join(root, "pkg", fmt.Sprintf("g%d.go", i)),
			"package p\n\n// doc\nvar x = 1 // c\n")
		writeBenchmarkFile(b, filepath.Join(root, "web", fmt.Sprintf("p%d.html", i)),
			"<p>x</p>\n<script>\nconst x = 1; // c\n</script>\n<style>\np { color: red; }\n</style>\n")
		writeBenchmarkFile(b, filepath.Join(root, "docs", fmt.Sprintf("d%d.md", i)),
			"# Title\n\nprose\n\n```go\nfmt.Println(1)\n```\n")
	}
	return root
}

func BenchmarkScanSingleFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "large.go")
	writeBenchmarkFile(b, path, largeGoSource())

	service, err := NewService(config.Default(), WithWorkers(1))
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Scan(context.Background(), []string{path}, nil)
		require.NoError(b, err)
	}
}

// BenchmarkScanTree 对比不同 worker 数量下的目录扫描吞吐。
func BenchmarkScanTree(b *testing.B) {
	root := prepareBenchmarkTree(b)

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			service, err := NewService(config.Default(), WithWorkers(workers))
			require.NoError(b, err)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				result, err := service.Scan(context.Background(), []string{root}, nil)
				require.NoError(b, err)
				require.Empty(b, result.Errors)
			}
		})
	}
}
