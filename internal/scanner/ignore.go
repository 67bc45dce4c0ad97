package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"gotokei/internal/config"
)

// ErrInvalidPattern 表示排除模式不是合法的 glob。
var ErrInvalidPattern = errors.New("invalid exclude pattern")

// 各类 ignore 文件名。
var (
	vcsIgnoreFiles = []string{".gitignore"}
	dotIgnoreFiles = []string{".ignore", ".tokeignore"}
)

// vcsDirs 始终跳过，不受 hidden 选项影响。
var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
	".bzr": {},
}

// ignoreRule 是某个目录下一份 ignore 文件编译后的规则，模式相对于 base 解释。
type ignoreRule struct {
	base    string
	matcher *gitignore.GitIgnore
}

// ignoreSet 是从扫描根（或其祖先）到当前目录累积的规则，只追加不修改，
// 子目录通过 with 派生新值。
type ignoreSet struct {
	rules []ignoreRule
}

// with 读取 dir 下启用的 ignore 文件并返回派生集合。
func (s ignoreSet) with(dir string, cfg config.Config) (ignoreSet, error) {
	if cfg.IgnoreAll() {
		return s, nil
	}

	var names []string
	if !cfg.SkipVCSIgnores() {
		names = append(names, vcsIgnoreFiles...)
	}
	if !cfg.SkipDotIgnores() {
		names = append(names, dotIgnoreFiles...)
	}

	added := make([]ignoreRule, 0)
	for _, name := range names {
		rule, ok, err := compileIgnoreFile(dir, filepath.Join(dir, name))
		if err != nil {
			return s, err
		}
		if ok {
			added = append(added, rule)
		}
	}

	// 仓库根目录下的 .git/info/exclude 与 .gitignore 作用范围相同。
	if !cfg.SkipVCSIgnores() {
		rule, ok, err := compileIgnoreFile(dir, filepath.Join(dir, ".git", "info", "exclude"))
		if err != nil {
			return s, err
		}
		if ok {
			added = append(added, rule)
		}
	}

	if len(added) == 0 {
		return s, nil
	}
	rules := make([]ignoreRule, 0, len(s.rules)+len(added))
	rules = append(rules, s.rules...)
	rules = append(rules, added...)
	return ignoreSet{rules: rules}, nil
}

// ignored 判断路径是否被任一规则忽略。目录以 "/" 结尾匹配，使 "build/" 这类模式生效。
func (s ignoreSet) ignored(path string, isDir bool) bool {
	for _, rule := range s.rules {
		rel, err := filepath.Rel(rule.base, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if rule.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

func compileIgnoreFile(base, path string) (ignoreRule, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ignoreRule{}, false, nil
	}
	if err != nil {
		return ignoreRule{}, false, fmt.Errorf("stat ignore file: %w", err)
	}
	if info.IsDir() {
		return ignoreRule{}, false, nil
	}

	matcher, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return ignoreRule{}, false, fmt.Errorf("compile ignore file %s: %w", path, err)
	}
	return ignoreRule{base: base, matcher: matcher}, true, nil
}

// parentIgnores 收集扫描根之上各级目录的 ignore 规则，遇到仓库根（含 .git）为止。
func parentIgnores(root string, cfg config.Config) (ignoreSet, error) {
	var set ignoreSet
	if cfg.SkipParentIgnores() {
		return set, nil
	}

	dir := filepath.Dir(root)
	for {
		next, err := set.with(dir, cfg)
		if err != nil {
			return set, err
		}
		set = next

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return set, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return set, nil
		}
		dir = parent
	}
}

// excluder 匹配命令行传入的排除模式。
//
// 匹配规则：
// - 含通配符的模式按 doublestar glob 匹配相对路径或文件名
// - 不含通配符的模式匹配任一连续路径片段，例如 "vendor" 或 "web/dist"
type excluder struct {
	patterns []string
}

func newExcluder(patterns []string) (excluder, error) {
	cleaned := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.Trim(filepath.ToSlash(strings.TrimSpace(pattern)), "/")
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return excluder{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		cleaned = append(cleaned, pattern)
	}
	return excluder{patterns: cleaned}, nil
}

// excluded 判断相对路径（斜杠分隔）是否命中任一模式。
func (e excluder) excluded(relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	base := relPath[strings.LastIndex(relPath, "/")+1:]

	for _, pattern := range e.patterns {
		if hasMeta(pattern) {
			if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
				return true
			}
			if matched, err := doublestar.Match(pattern, base); err == nil && matched {
				return true
			}
			continue
		}
		if strings.Contains("/"+relPath+"/", "/"+pattern+"/") {
			return true
		}
	}
	return false
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}
