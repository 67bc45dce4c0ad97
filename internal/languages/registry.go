package languages

import (
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// 以下索引在包初始化时从 table 构建一次，此后只读。
var (
	allTypes    = buildList()
	byName      = buildIndex(func(s *syntax) []string { return []string{s.name} }, false)
	byLowerName = buildIndex(func(s *syntax) []string { return []string{s.name} }, true)
	byExtension = buildIndex(func(s *syntax) []string { return s.extensions }, true)
	byFileName  = buildIndex(func(s *syntax) []string { return s.filenames }, true)
	byEnv       = buildIndex(func(s *syntax) []string { return s.env }, false)
)

// aliases 覆盖围栏代码块信息串与 go-enry 语言名中常见、
// 但与规范名称/后缀不一致的写法。键一律小写。
var aliases = map[string]LanguageType{
	"golang":            Go,
	"shell":             Sh,
	"console":           Sh,
	"shellsession":      Sh,
	"zshrc":             Zsh,
	"tcsh":              CShell,
	"python3":           Python,
	"py3":               Python,
	"csharp":            CSharp,
	"fsharp":            FSharp,
	"objc":              ObjectiveC,
	"objective-c":       ObjectiveC,
	"objectivec":        ObjectiveC,
	"make":              Makefile,
	"viml":              VimScript,
	"vim script":        VimScript,
	"terraform":         Hcl,
	"jsonc":             Json,
	"json5":             Json,
	"jupyter notebook":  Jupyter,
	"batchfile":         Batch,
	"protocol buffer":   Protobuf,
	"protobuf":          Protobuf,
	"scss":              Sass,
	"raku":              Rakudo,
	"perl6":             Rakudo,
	"unix assembly":     AssemblyGAS,
	"visual basic .net": VisualBasic,
	"vb.net":            VisualBasic,
	"plsql":             Sql,
	"tsql":              Sql,
	"plpgsql":           Sql,
	"common lisp":       Lisp,
	"emacs lisp":        Elisp,
	"elisp":             Elisp,
	"fortran":           FortranModern,
	"fortran free form": FortranModern,
	"gherkin":           Gherkin,
	"cucumber":          Gherkin,
	"sml":               Sml,
	"standard ml":       Sml,
	"rst":               ReStructuredText,
	"restructuredtext":  ReStructuredText,
	"plain text":        Text,
	"text":              Text,
	"plaintext":         Text,
	"docker":            Dockerfile,
	"asm":               Assembly,
	"nasm":              Assembly,
	"gas":               AssemblyGAS,
	"ruby html":         RubyHtml,
	"html+erb":          RubyHtml,
	"erb":               RubyHtml,
	"go html template":  Gohtml,
	"arduino":           Arduino,
	"postcss":           PostCss,
	"webassembly":       WebAssembly,
	"wasm":              WebAssembly,
	"glsl":              Glsl,
	"asn.1":             Asn1,
	"dotenv":            Sh,
}

func buildList() []LanguageType {
	list := make([]LanguageType, 0, languageCount)
	for t := LanguageType(0); t < languageCount; t++ {
		list = append(list, t)
	}
	return list
}

// buildIndex 构建 key -> LanguageType 的索引；重复 key 以先声明者为准，
// 目录的唯一性由单元测试保证。
func buildIndex(keys func(*syntax) []string, lower bool) map[string]LanguageType {
	index := make(map[string]LanguageType)
	for t := LanguageType(0); t < languageCount; t++ {
		for _, key := range keys(&table[t]) {
			if lower {
				key = strings.ToLower(key)
			}
			if _, exists := index[key]; !exists {
				index[key] = t
			}
		}
	}
	return index
}

// List 返回完整的封闭语言集合，顺序与声明顺序一致。
func List() []LanguageType {
	return slices.Clone(allTypes)
}

// FromName 按规范展示名（区分大小写）查找语言。
// 未知名称返回 *UnknownLanguageError，绝不回落到默认变体。
func FromName(name string) (LanguageType, error) {
	t, ok := byName[name]
	if !ok {
		return 0, &UnknownLanguageError{Name: name}
	}
	return t, nil
}

// Lookup 宽松查找：规范名、忽略大小写的名称、别名、后缀依次尝试。
// 用于围栏代码块信息串和第三方检测结果，不用于用户输入校验。
func Lookup(name string) (LanguageType, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	if t, ok := byName[name]; ok {
		return t, true
	}

	lower := strings.ToLower(name)
	if t, ok := byLowerName[lower]; ok {
		return t, true
	}
	if t, ok := aliases[lower]; ok {
		return t, true
	}
	return FromFileExtension(lower)
}

// FromFileExtension 按后缀查找，接受带或不带点号、任意大小写的写法。
func FromFileExtension(ext string) (LanguageType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return 0, false
	}
	t, ok := byExtension[ext]
	return t, ok
}

// FromFileName 按完整文件名（忽略大小写）查找，例如 Dockerfile、CMakeLists.txt。
func FromFileName(name string) (LanguageType, bool) {
	t, ok := byFileName[strings.ToLower(filepath.Base(name))]
	return t, ok
}

// FromPath 依次按文件名与后缀识别路径对应的语言。
func FromPath(filePath string) (LanguageType, bool) {
	if t, ok := FromFileName(filePath); ok {
		return t, true
	}

	base := filepath.Base(filePath)
	if t, ok := FromFileExtension(filepath.Ext(base)); ok {
		return t, true
	}

	// Dockerfile.prod、Makefile.linux 这类“名称.变体”也按名称识别。
	if stem, _, found := strings.Cut(base, "."); found && stem != "" {
		return FromFileName(stem)
	}
	return 0, false
}

// FromShebang 根据文件首行识别解释器。
// 支持字面量匹配（#!/bin/bash）与 #!/usr/bin/env <interp> 形式，
// 解释器名带版本号后缀（python3.11）时会去掉版本再查一次。
func FromShebang(firstLine string) (LanguageType, bool) {
	line := strings.TrimSpace(firstLine)
	if !strings.HasPrefix(line, "#!") {
		return 0, false
	}

	fields := strings.Fields(strings.TrimPrefix(line, "#!"))
	if len(fields) == 0 {
		return 0, false
	}

	for _, t := range allTypes {
		for _, shebang := range table[t].shebangs {
			if "#!"+fields[0] == shebang {
				return t, true
			}
		}
	}

	interpreter := path.Base(fields[0])
	if interpreter == "env" {
		interpreter = ""
		for _, field := range fields[1:] {
			// env -S、env -i 等参数跳过。
			if strings.HasPrefix(field, "-") || strings.Contains(field, "=") {
				continue
			}
			interpreter = path.Base(field)
			break
		}
	}
	return fromInterpreter(interpreter)
}

func fromInterpreter(interpreter string) (LanguageType, bool) {
	if interpreter == "" {
		return 0, false
	}
	if t, ok := byEnv[interpreter]; ok {
		return t, true
	}

	trimmed := strings.TrimRight(interpreter, "0123456789.")
	if trimmed == interpreter || trimmed == "" {
		return 0, false
	}
	t, ok := byEnv[trimmed]
	return t, ok
}

// FromFenceInfo 解析 Markdown 围栏代码块的信息串，例如 "rust"、"{.python}"、
// "js title=app.js"。
func FromFenceInfo(info string) (LanguageType, bool) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return 0, false
	}

	word := strings.Trim(fields[0], "{}")
	word = strings.TrimPrefix(word, ".")
	if head, _, found := strings.Cut(word, ","); found {
		word = head
	}
	return Lookup(word)
}
