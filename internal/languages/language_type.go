// Package languages 定义 gotokei 支持的语言目录（LanguageType）。
//
// 目录是一个封闭集合：每个变体对应一条静态语法记录（注释、字符串、
// shebang 等词法规则），在包初始化时构建名称与后缀索引，之后只读，
// 可被任意数量的 goroutine 无锁并发读取。
package languages

import (
	"slices"
)

// LanguageType 是语言目录中的一个变体。
// 零值 Abnf 是合法语言，因此未知名称必须通过 FromName 返回错误，
// 绝不能静默回落到零值。
type LanguageType int

// Delimiter 描述一对起止分隔符，例如块注释 /* */ 或字符串 " "。
type Delimiter struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// embedKind 标记宿主语言内嵌其他语言的方式，由 classifier 使用。
type embedKind int

const (
	embedNone embedKind = iota
	// embedHTML 表示 <script>/<style> 块内嵌脚本与样式。
	embedHTML
	// embedMarkdown 表示围栏代码块内嵌任意语言。
	embedMarkdown
	// embedNotebook 表示 Jupyter 笔记本单元格。
	embedNotebook
)

const (
	Abnf LanguageType = iota
	Abap
	ActionScript
	Ada
	Agda
	Alex
	Alloy
	Arduino
	AsciiDoc
	Asn1
	Asp
	AspNet
	Assembly
	AssemblyGAS
	AutoHotKey
	Autoconf
	Automake
	Bash
	Batch
	Bean
	BrightScript
	C
	CHeader
	CMake
	CSharp
	CShell
	Cabal
	Cassius
	Ceylon
	Clojure
	ClojureC
	ClojureScript
	Cobol
	CodeQL
	CoffeeScript
	Cogent
	ColdFusion
	ColdFusionScript
	Coq
	Cpp
	CppHeader
	Crystal
	Css
	D
	Daml
	Dart
	DeviceTree
	Dhall
	Dockerfile
	DotNetResource
	DreamMaker
	Dust
	Edn
	Elisp
	Elixir
	Elm
	Elvish
	EmacsDevEnv
	Emojicode
	Erlang
	Fen
	FSharp
	Fish
	FlatBuffers
	Forth
	FortranLegacy
	FortranModern
	FreeMarker
	Fstar
	Futhark
	Gdb
	GdScript
	Gherkin
	Gleam
	Glsl
	Go
	Gohtml
	Graphql
	Groovy
	Gwion
	Hamlet
	Handlebars
	Happy
	Haskell
	Haxe
	Hcl
	Headache
	Hex
	Hlsl
	HolyC
	Html
	Idris
	Ini
	IntelHex
	Isabelle
	Jai
	Java
	JavaScript
	Json
	Jsonnet
	Jsx
	Julia
	Julius
	Jupyter
	K
	KakouneScript
	Kotlin
	Llvm
	Lean
	Less
	LinkerScript
	Liquid
	Lisp
	LiveScript
	Logtalk
	Lua
	Lucius
	Madlang
	Makefile
	Markdown
	Meson
	Mint
	ModuleDef
	MoonScript
	MsBuild
	Mustache
	Nim
	Nix
	NotQuitePerl
	OCaml
	ObjectiveC
	ObjectiveCpp
	Odin
	OpenType
	Org
	Oz
	Psl
	Pan
	Pascal
	Perl
	Rakudo
	Pest
	Php
	Polly
	Pony
	PostCss
	PowerShell
	Processing
	Prolog
	Protobuf
	Pug
	PureScript
	Python
	Q
	Qcl
	Qml
	R
	Ron
	RpmSpecfile
	Racket
	Rakefile
	Razor
	ReStructuredText
	Renpy
	Ruby
	RubyHtml
	Rust
	SRecode
	Sass
	Scala
	Scheme
	Scons
	Sh
	Sml
	Solidity
	SpecmanE
	Spice
	Sql
	Stan
	Stratego
	Stylus
	Svelte
	Svg
	Swift
	Swig
	SystemVerilog
	Tcl
	Tera
	Tex
	Text
	Thrift
	Toml
	Tsx
	Ttcn
	Twig
	TypeScript
	UnrealDeveloperMarkdown
	UnrealPlugin
	UnrealProject
	UnrealScript
	UnrealShader
	UnrealShaderHeader
	UrWeb
	UrWebProject
	Vb6
	VbScript
	Vala
	Velocity
	Verilog
	VerilogArgsFile
	Vhdl
	VimScript
	VisualBasic
	VisualStudioProject
	VisualStudioSolution
	Vue
	WebAssembly
	Wolfram
	Xsl
	Xaml
	XcodeConfig
	Xml
	Xtend
	Yaml
	Zig
	Zsh

	// languageCount 不是语言，仅用于固定静态表长度。
	languageCount
)

// Valid 判断 t 是否落在封闭集合内。
func (t LanguageType) Valid() bool {
	return t >= 0 && t < languageCount
}

// invalidSyntax 让越界值的访问器返回空结果而不是 panic。
var invalidSyntax syntax

func (t LanguageType) syntax() *syntax {
	if !t.Valid() {
		return &invalidSyntax
	}
	return &table[t]
}

// Name 返回语言的规范展示名，例如 "C Header"。
func (t LanguageType) Name() string {
	if !t.Valid() {
		return ""
	}
	return t.syntax().name
}

// String 实现 fmt.Stringer。
func (t LanguageType) String() string {
	if !t.Valid() {
		return "LanguageType(invalid)"
	}
	return t.syntax().name
}

// LineComments 返回单行注释起始标记。
func (t LanguageType) LineComments() []string {
	return slices.Clone(t.syntax().lineComments)
}

// MultiLineComments 返回块注释分隔符对。
func (t LanguageType) MultiLineComments() []Delimiter {
	return slices.Clone(t.syntax().multiLine)
}

// AllowsNested 表示块注释是否允许嵌套。
func (t LanguageType) AllowsNested() bool {
	return t.syntax().nested
}

// NestedComments 返回仅在允许嵌套时生效的额外嵌套注释对。
func (t LanguageType) NestedComments() []Delimiter {
	return slices.Clone(t.syntax().nestedComments)
}

// Quotes 返回支持转义的字符串分隔符对。
func (t LanguageType) Quotes() []Delimiter {
	return slices.Clone(t.syntax().quotes)
}

// VerbatimQuotes 返回不处理转义的原始字符串分隔符对。
func (t LanguageType) VerbatimQuotes() []Delimiter {
	return slices.Clone(t.syntax().verbatimQuotes)
}

// DocQuotes 返回文档字符串分隔符对（例如 Python 的三引号）。
func (t LanguageType) DocQuotes() []Delimiter {
	return slices.Clone(t.syntax().docQuotes)
}

// Shebangs 返回可直接匹配首行的 shebang 字面量。
func (t LanguageType) Shebangs() []string {
	return slices.Clone(t.syntax().shebangs)
}

// ImportantSyntax 返回需要走完整状态机的启发式标记。
func (t LanguageType) ImportantSyntax() []string {
	return slices.Clone(t.syntax().important)
}

// IsLiterate 表示该语言默认内容是散文而非代码。
func (t LanguageType) IsLiterate() bool {
	return t.syntax().literate
}

// Extensions 返回不含点号的小写文件后缀。
func (t LanguageType) Extensions() []string {
	return slices.Clone(t.syntax().extensions)
}

// FileNames 返回按完整文件名识别的名称（例如 Dockerfile）。
func (t LanguageType) FileNames() []string {
	return slices.Clone(t.syntax().filenames)
}

// EmbedsHTML 表示宿主文件可能包含 <script>/<style> 区块。
func (t LanguageType) EmbedsHTML() bool {
	return t.syntax().embed == embedHTML
}

// EmbedsFencedCode 表示宿主文件可能包含 Markdown 围栏代码块。
func (t LanguageType) EmbedsFencedCode() bool {
	return t.syntax().embed == embedMarkdown
}

// IsNotebook 表示宿主文件是 Jupyter 笔记本。
func (t LanguageType) IsNotebook() bool {
	return t.syntax().embed == embedNotebook
}

// MarshalText 以语言名序列化，使 LanguageType 可作为 JSON map 键。
func (t LanguageType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnknownLanguageError{Name: t.String()}
	}
	return []byte(t.Name()), nil
}

// UnmarshalText 通过 FromName 反序列化，未知名称返回错误。
func (t *LanguageType) UnmarshalText(text []byte) error {
	parsed, err := FromName(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
