package languages

// syntax 是单个语言的静态词法记录。
// 切片字段在包内共享，对外访问器一律返回副本。
type syntax struct {
	name           string
	lineComments   []string
	multiLine      []Delimiter
	nested         bool
	nestedComments []Delimiter
	quotes         []Delimiter
	verbatimQuotes []Delimiter
	docQuotes      []Delimiter
	shebangs       []string
	env            []string
	important      []string
	literate       bool
	extensions     []string
	filenames      []string
	embed          embedKind
}

// 常用语法片段。
var (
	slashLine = []string{"//"}
	hashLine  = []string{"#"}
	dashLine  = []string{"--"}
	semiLine  = []string{";"}

	cBlock     = []Delimiter{{"/*", "*/"}}
	htmlBlock  = []Delimiter{{"<!--", "-->"}}
	mlBlock    = []Delimiter{{"(*", "*)"}}
	hsBlock    = []Delimiter{{"{-", "-}"}}
	lispBlock  = []Delimiter{{"#|", "|#"}}
	rubyBlock  = []Delimiter{{"=begin", "=end"}}
	jinjaBlock = []Delimiter{{"{#", "#}"}}

	dq   = []Delimiter{{`"`, `"`}}
	sq   = []Delimiter{{"'", "'"}}
	dqsq = []Delimiter{{`"`, `"`}, {"'", "'"}}
	jsq  = []Delimiter{{`"`, `"`}, {"'", "'"}, {"`", "`"}}

	pyDoc = []Delimiter{{`"""`, `"""`}, {"'''", "'''"}}

	htmlImportant     = []string{"<script", "<style"}
	markdownImportant = []string{"```", "~~~"}
)

// table 以 LanguageType 为下标保存全部语法记录。
// 数组长度固定为 languageCount，遗漏条目会在测试中以空名称暴露。
var table = [languageCount]syntax{
	Abnf: {name: "ABNF", lineComments: semiLine, extensions: []string{"abnf"}},
	Abap: {name: "ABAP", lineComments: []string{"*", `"`}, extensions: []string{"abap"}},
	ActionScript: {
		name: "ActionScript", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		extensions: []string{"as"},
	},
	Ada: {name: "Ada", lineComments: dashLine, quotes: dq, extensions: []string{"ada", "adb", "ads", "pad"}},
	Agda: {
		name: "Agda", lineComments: dashLine, multiLine: hsBlock, nested: true,
		extensions: []string{"agda"},
	},
	Alex:  {name: "Alex", extensions: []string{"x"}},
	Alloy: {name: "Alloy", lineComments: []string{"--", "//"}, multiLine: cBlock, extensions: []string{"als"}},
	Arduino: {
		name: "Arduino C++", lineComments: slashLine, multiLine: cBlock, quotes: dq,
		extensions: []string{"ino"},
	},
	AsciiDoc: {
		name: "AsciiDoc", lineComments: slashLine, multiLine: []Delimiter{{"////", "////"}},
		extensions: []string{"adoc", "asciidoc"},
	},
	Asn1: {
		name: "ASN.1", lineComments: dashLine, multiLine: cBlock, nested: true, quotes: dq,
		extensions: []string{"asn1"},
	},
	Asp: {name: "ASP", lineComments: []string{"'", "REM"}, extensions: []string{"asa", "asp"}},
	AspNet: {
		name: "ASP.NET", multiLine: []Delimiter{{"<!--", "-->"}, {"<%--", "-->"}},
		extensions: []string{"asax", "ascx", "asmx", "aspx", "master", "sitemap", "webinfo"},
	},
	Assembly:    {name: "Assembly", lineComments: semiLine, quotes: dqsq, extensions: []string{"asm"}},
	AssemblyGAS: {name: "GNU Style Assembly", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"s"}},
	AutoHotKey:  {name: "AutoHotKey", lineComments: semiLine, multiLine: cBlock, extensions: []string{"ahk"}},
	Autoconf: {
		name: "Autoconf", lineComments: []string{"#", "dnl"}, extensions: []string{"in"},
		filenames: []string{"configure.ac"},
	},
	Automake: {name: "Automake", lineComments: hashLine, extensions: []string{"am"}},
	Bash: {
		name: "BASH", lineComments: hashLine, quotes: dqsq,
		shebangs: []string{"#!/bin/bash"}, env: []string{"bash"}, extensions: []string{"bash"},
	},
	Batch:        {name: "Batch", lineComments: []string{"REM", "::"}, extensions: []string{"bat", "btm", "cmd"}},
	Bean:         {name: "Bean", lineComments: semiLine, quotes: dq, extensions: []string{"bean", "beancount"}},
	BrightScript: {name: "BrightScript", lineComments: []string{"'", "REM"}, quotes: dq, extensions: []string{"brs"}},
	C: {
		name: "C", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		extensions: []string{"c", "ec", "pgc"},
	},
	CHeader: {name: "C Header", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"h"}},
	CMake: {
		name: "CMake", lineComments: hashLine, multiLine: []Delimiter{{"#[[", "]]"}}, quotes: dq,
		extensions: []string{"cmake"}, filenames: []string{"cmakelists.txt"},
	},
	CSharp: {
		name: "C#", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		verbatimQuotes: []Delimiter{{`@"`, `"`}}, important: []string{"///"},
		extensions: []string{"cs", "csx"},
	},
	CShell: {
		name: "C Shell", lineComments: hashLine, quotes: dqsq,
		shebangs: []string{"#!/bin/csh"}, env: []string{"csh", "tcsh"}, extensions: []string{"csh"},
	},
	Cabal:   {name: "Cabal", lineComments: dashLine, multiLine: hsBlock, nested: true, extensions: []string{"cabal"}},
	Cassius: {name: "Cassius", multiLine: cBlock, quotes: dqsq, extensions: []string{"cassius"}},
	Ceylon: {
		name: "Ceylon", lineComments: slashLine, multiLine: cBlock, quotes: dq,
		verbatimQuotes: []Delimiter{{`"""`, `"""`}}, extensions: []string{"ceylon"},
	},
	Clojure:       {name: "Clojure", lineComments: semiLine, quotes: dq, extensions: []string{"clj"}},
	ClojureC:      {name: "ClojureC", lineComments: semiLine, quotes: dq, extensions: []string{"cljc"}},
	ClojureScript: {name: "ClojureScript", lineComments: semiLine, quotes: dq, extensions: []string{"cljs"}},
	Cobol:         {name: "COBOL", lineComments: []string{"*"}, extensions: []string{"cob", "cbl", "ccp", "cobol", "cpy"}},
	CodeQL:        {name: "CodeQL", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"ql", "qll"}},
	CoffeeScript: {
		name: "CoffeeScript", lineComments: hashLine, multiLine: []Delimiter{{"###", "###"}}, quotes: dqsq,
		extensions: []string{"coffee", "cjsx"},
	},
	Cogent:           {name: "Cogent", lineComments: dashLine, extensions: []string{"cogent"}},
	ColdFusion:       {name: "ColdFusion", multiLine: []Delimiter{{"<!---", "--->"}}, quotes: dqsq, extensions: []string{"cfm"}},
	ColdFusionScript: {name: "ColdFusion CFScript", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"cfc"}},
	Coq:              {name: "Coq", multiLine: mlBlock, nested: true, quotes: dq, extensions: []string{"v"}},
	Cpp: {
		name: "C++", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		verbatimQuotes: []Delimiter{{`R"(`, `)"`}},
		extensions:     []string{"cc", "cpp", "cxx", "c++", "pcc", "tpp"},
	},
	CppHeader: {
		name: "C++ Header", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		verbatimQuotes: []Delimiter{{`R"(`, `)"`}},
		extensions:     []string{"hh", "hpp", "hxx", "inl", "ipp"},
	},
	Crystal: {
		name: "Crystal", lineComments: hashLine, quotes: dq,
		env: []string{"crystal"}, extensions: []string{"cr"},
	},
	Css: {name: "CSS", multiLine: cBlock, quotes: dqsq, extensions: []string{"css"}},
	D: {
		name: "D", lineComments: slashLine, multiLine: cBlock, nested: true,
		nestedComments: []Delimiter{{"/+", "+/"}}, quotes: dq,
		verbatimQuotes: []Delimiter{{`r"`, `"`}, {"`", "`"}}, extensions: []string{"d"},
	},
	Daml: {name: "DAML", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, extensions: []string{"daml"}},
	Dart: {
		name: "Dart", lineComments: slashLine, multiLine: cBlock, nested: true,
		quotes:    []Delimiter{{`"""`, `"""`}, {"'''", "'''"}, {`"`, `"`}, {"'", "'"}},
		important: []string{"///"}, extensions: []string{"dart"},
	},
	DeviceTree: {name: "Device Tree", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"dts", "dtsi"}},
	Dhall: {
		name: "Dhall", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq,
		verbatimQuotes: []Delimiter{{"''", "''"}}, extensions: []string{"dhall"},
	},
	Dockerfile: {
		name: "Dockerfile", lineComments: hashLine, quotes: dqsq,
		extensions: []string{"dockerfile"}, filenames: []string{"dockerfile"},
	},
	DotNetResource: {name: ".NET Resource", multiLine: htmlBlock, extensions: []string{"resx"}},
	DreamMaker: {
		name: "Dream Maker", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq,
		extensions: []string{"dm", "dme"},
	},
	Dust:        {name: "Dust.js", multiLine: []Delimiter{{"{!", "!}"}}, extensions: []string{"dust"}},
	Edn:         {name: "Edn", lineComments: semiLine, quotes: dq, extensions: []string{"edn"}},
	Elisp:       {name: "Emacs Lisp", lineComments: semiLine, quotes: dq, extensions: []string{"el"}},
	Elixir:      {name: "Elixir", lineComments: hashLine, quotes: dq, docQuotes: pyDoc, env: []string{"elixir"}, extensions: []string{"ex", "exs"}},
	Elm:         {name: "Elm", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, extensions: []string{"elm"}},
	Elvish:      {name: "Elvish", lineComments: hashLine, quotes: dqsq, env: []string{"elvish"}, extensions: []string{"elv"}},
	EmacsDevEnv: {name: "Emacs Dev Env", lineComments: semiLine, quotes: dq, extensions: []string{"ede"}},
	Emojicode: {
		name: "Emojicode", lineComments: []string{"💭"}, multiLine: []Delimiter{{"💭🔜", "🔚💭"}},
		quotes: []Delimiter{{"🔤", "🔤"}}, extensions: []string{"emojic"},
	},
	Erlang: {name: "Erlang", lineComments: []string{"%"}, quotes: dq, env: []string{"escript"}, extensions: []string{"erl", "hrl"}},
	Fen:    {name: "FEN", extensions: []string{"fen"}},
	FSharp: {
		name: "F#", lineComments: slashLine, multiLine: mlBlock, quotes: dq,
		verbatimQuotes: []Delimiter{{`@"`, `"`}, {`"""`, `"""`}},
		extensions:     []string{"fs", "fsi", "fsx", "fsscript"},
	},
	Fish:        {name: "Fish", lineComments: hashLine, quotes: dqsq, env: []string{"fish"}, extensions: []string{"fish"}},
	FlatBuffers: {name: "FlatBuffers Schema", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"fbs"}},
	Forth: {
		name: "Forth", lineComments: []string{`\`}, multiLine: []Delimiter{{"( ", " )"}},
		extensions: []string{"4th", "forth", "frt", "fth", "f83", "fb", "fpm", "e4", "rx", "ft"},
	},
	FortranLegacy: {name: "FORTRAN Legacy", lineComments: []string{"!"}, quotes: dqsq, extensions: []string{"f", "for", "ftn", "f77", "pfo"}},
	FortranModern: {name: "FORTRAN Modern", lineComments: []string{"!"}, quotes: dqsq, extensions: []string{"f03", "f08", "f90", "f95"}},
	FreeMarker:    {name: "FreeMarker", multiLine: []Delimiter{{"<#--", "-->"}}, extensions: []string{"ftl", "ftlh", "ftlx"}},
	Fstar:         {name: "F*", lineComments: slashLine, multiLine: mlBlock, quotes: dq, extensions: []string{"fst"}},
	Futhark:       {name: "Futhark", lineComments: dashLine, extensions: []string{"fut"}},
	Gdb:           {name: "GDB Script", lineComments: hashLine, extensions: []string{"gdb"}, filenames: []string{".gdbinit"}},
	GdScript:      {name: "GDScript", lineComments: hashLine, quotes: dqsq, docQuotes: pyDoc, extensions: []string{"gd"}},
	Gherkin:       {name: "Gherkin (Cucumber)", lineComments: hashLine, extensions: []string{"feature"}},
	Gleam:         {name: "Gleam", lineComments: slashLine, quotes: dq, extensions: []string{"gleam"}},
	Glsl: {
		name: "GLSL", lineComments: slashLine, multiLine: cBlock,
		extensions: []string{"vert", "tesc", "tese", "geom", "frag", "comp", "glsl"},
	},
	Go: {
		name: "Go", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		verbatimQuotes: []Delimiter{{"`", "`"}}, extensions: []string{"go"},
	},
	Gohtml: {
		name: "Go HTML", multiLine: []Delimiter{{"<!--", "-->"}, {"{{/*", "*/}}"}},
		important: htmlImportant, extensions: []string{"gohtml"}, embed: embedHTML,
	},
	Graphql: {
		name: "GraphQL", lineComments: hashLine, quotes: dq,
		docQuotes: []Delimiter{{`"""`, `"""`}}, extensions: []string{"gql", "graphql"},
	},
	Groovy: {
		name: "Groovy", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		env: []string{"groovy"}, extensions: []string{"groovy", "grt", "gtpl", "gvy"},
	},
	Gwion:  {name: "Gwion", lineComments: []string{"#!"}, quotes: dq, extensions: []string{"gw"}},
	Hamlet: {name: "Hamlet", multiLine: htmlBlock, quotes: dq, extensions: []string{"hamlet"}},
	Handlebars: {
		name: "Handlebars", multiLine: []Delimiter{{"<!--", "-->"}, {"{{!", "}}"}}, quotes: dq,
		extensions: []string{"hbs", "handlebars"},
	},
	Happy:    {name: "Happy", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, extensions: []string{"y", "ly"}},
	Haskell:  {name: "Haskell", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, env: []string{"runghc", "runhaskell"}, extensions: []string{"hs"}},
	Haxe:     {name: "Haxe", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"hx"}},
	Hcl:      {name: "HCL", lineComments: []string{"#", "//"}, multiLine: cBlock, quotes: dq, extensions: []string{"hcl", "tf", "tfvars"}},
	Headache: {name: "Headache", lineComments: slashLine, multiLine: cBlock, extensions: []string{"ha"}},
	Hex:      {name: "HEX", extensions: []string{"hex"}},
	Hlsl:     {name: "HLSL", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"hlsl"}},
	HolyC:    {name: "HolyC", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"hc"}},
	Html: {
		name: "HTML", multiLine: htmlBlock, important: htmlImportant,
		extensions: []string{"html", "htm", "xhtml"}, embed: embedHTML,
	},
	Idris:    {name: "Idris", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, extensions: []string{"idr", "lidr"}},
	Ini:      {name: "INI", lineComments: []string{";", "#"}, extensions: []string{"ini"}},
	IntelHex: {name: "Intel HEX", extensions: []string{"ihex"}},
	Isabelle: {
		name: "Isabelle", lineComments: dashLine, multiLine: []Delimiter{{"{*", "*}"}, {"(*", "*)"}},
		quotes: dq, extensions: []string{"thy"},
	},
	Jai: {name: "JAI", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq, extensions: []string{"jai"}},
	Java: {
		name: "Java", lineComments: slashLine, multiLine: cBlock,
		quotes:    []Delimiter{{`"""`, `"""`}, {`"`, `"`}, {"'", "'"}},
		important: []string{"/**"}, extensions: []string{"java"},
	},
	JavaScript: {
		name: "JavaScript", lineComments: slashLine, multiLine: cBlock, quotes: jsq,
		env: []string{"node", "nodejs"}, extensions: []string{"cjs", "js", "mjs"},
	},
	Json: {name: "JSON", extensions: []string{"json"}},
	Jsonnet: {
		name: "Jsonnet", lineComments: []string{"//", "#"}, multiLine: cBlock, quotes: dqsq,
		extensions: []string{"jsonnet", "libsonnet"},
	},
	Jsx: {name: "JSX", lineComments: slashLine, multiLine: cBlock, quotes: jsq, extensions: []string{"jsx"}},
	Julia: {
		name: "Julia", lineComments: hashLine, multiLine: []Delimiter{{"#=", "=#"}}, nested: true,
		quotes: dq, docQuotes: []Delimiter{{`"""`, `"""`}}, env: []string{"julia"}, extensions: []string{"jl"},
	},
	Julius:  {name: "Julius", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"julius"}},
	Jupyter: {name: "Jupyter Notebooks", extensions: []string{"ipynb"}, embed: embedNotebook},
	K:       {name: "K", lineComments: []string{"/"}, quotes: dq, extensions: []string{"k"}},
	KakouneScript: {
		name: "Kakoune script", lineComments: hashLine, quotes: dqsq, extensions: []string{"kak"},
	},
	Kotlin: {
		name: "Kotlin", lineComments: slashLine, multiLine: cBlock, nested: true,
		quotes: []Delimiter{{`"""`, `"""`}, {`"`, `"`}}, extensions: []string{"kt", "kts"},
	},
	Llvm:         {name: "LLVM", lineComments: semiLine, quotes: dq, extensions: []string{"ll"}},
	Lean:         {name: "Lean", lineComments: dashLine, multiLine: []Delimiter{{"/-", "-/"}}, nested: true, quotes: dq, extensions: []string{"lean", "hlean"}},
	Less:         {name: "LESS", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"less"}},
	LinkerScript: {name: "LD Script", multiLine: cBlock, quotes: dq, extensions: []string{"ld", "lds"}},
	Liquid: {
		name: "Liquid", multiLine: []Delimiter{{"{% comment %}", "{% endcomment %}"}}, quotes: dqsq,
		extensions: []string{"liquid"},
	},
	Lisp:       {name: "Lisp", lineComments: semiLine, multiLine: lispBlock, nested: true, quotes: dq, extensions: []string{"lisp", "lsp"}},
	LiveScript: {name: "LiveScript", lineComments: hashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"ls"}},
	Logtalk:    {name: "Logtalk", lineComments: []string{"%"}, multiLine: cBlock, quotes: dq, extensions: []string{"lgt", "logtalk"}},
	Lua: {
		name: "Lua", lineComments: dashLine, multiLine: []Delimiter{{"--[[", "]]"}}, quotes: dqsq,
		verbatimQuotes: []Delimiter{{"[[", "]]"}}, env: []string{"lua"}, extensions: []string{"lua"},
	},
	Lucius:  {name: "Lucius", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"lucius"}},
	Madlang: {name: "Madlang", lineComments: hashLine, multiLine: jinjaBlock, extensions: []string{"mad"}},
	Makefile: {
		name: "Makefile", lineComments: hashLine, env: []string{"make"},
		extensions: []string{"makefile", "mak", "mk"}, filenames: []string{"makefile", "gnumakefile"},
	},
	Markdown: {
		name: "Markdown", literate: true, important: markdownImportant,
		extensions: []string{"md", "markdown"}, embed: embedMarkdown,
	},
	Meson: {
		name: "Meson", lineComments: hashLine, quotes: sq, verbatimQuotes: []Delimiter{{"'''", "'''"}},
		filenames: []string{"meson.build", "meson_options.txt"},
	},
	Mint:       {name: "Mint", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"mint"}},
	ModuleDef:  {name: "Module-Definition", lineComments: semiLine, extensions: []string{"def"}},
	MoonScript: {name: "MoonScript", lineComments: dashLine, quotes: dqsq, extensions: []string{"moon"}},
	MsBuild: {
		name: "MSBuild", multiLine: htmlBlock,
		extensions: []string{"csproj", "vbproj", "fsproj", "props", "targets"},
	},
	Mustache: {name: "Mustache", multiLine: []Delimiter{{"{{!", "}}"}}, extensions: []string{"mustache"}},
	Nim: {
		name: "Nim", lineComments: hashLine, multiLine: []Delimiter{{"#[", "]#"}}, nested: true,
		quotes: dq, verbatimQuotes: []Delimiter{{`"""`, `"""`}}, extensions: []string{"nim"},
	},
	Nix: {
		name: "Nix", lineComments: hashLine, multiLine: cBlock, quotes: dq,
		verbatimQuotes: []Delimiter{{"''", "''"}}, extensions: []string{"nix"},
	},
	NotQuitePerl: {
		name: "Not Quite Perl", lineComments: hashLine, multiLine: []Delimiter{{"=begin", "=end"}}, quotes: dqsq,
		extensions: []string{"nqp"},
	},
	OCaml:        {name: "OCaml", multiLine: mlBlock, nested: true, quotes: dq, extensions: []string{"ml", "mli", "re", "rei"}},
	ObjectiveC:   {name: "Objective-C", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"m"}},
	ObjectiveCpp: {name: "Objective-C++", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"mm"}},
	Odin:         {name: "Odin", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq, extensions: []string{"odin"}},
	OpenType:     {name: "OpenType Feature File", lineComments: hashLine, quotes: dq, extensions: []string{"fea"}},
	Org:          {name: "Org", lineComments: hashLine, extensions: []string{"org"}},
	Oz:           {name: "Oz", lineComments: []string{"%"}, multiLine: cBlock, quotes: dq, extensions: []string{"oz"}},
	Psl:          {name: "PSL Assertion", lineComments: dashLine, extensions: []string{"psl"}},
	Pan:          {name: "Pan", lineComments: hashLine, quotes: dqsq, extensions: []string{"pan", "tpl"}},
	Pascal: {
		name: "Pascal", lineComments: slashLine, multiLine: []Delimiter{{"{", "}"}, {"(*", "*)"}}, quotes: sq,
		extensions: []string{"pas"},
	},
	Perl: {
		name: "Perl", lineComments: hashLine, multiLine: []Delimiter{{"=pod", "=cut"}}, quotes: dqsq,
		shebangs: []string{"#!/usr/bin/perl"}, env: []string{"perl"}, extensions: []string{"pl", "pm"},
	},
	Rakudo: {
		name: "Rakudo", lineComments: hashLine, multiLine: []Delimiter{{"=begin", "=end"}}, nested: true, quotes: dqsq,
		env: []string{"perl6", "raku"}, extensions: []string{"pl6", "pm6", "raku", "rakumod"},
	},
	Pest:  {name: "Pest", lineComments: slashLine, quotes: dq, extensions: []string{"pest"}},
	Php:   {name: "PHP", lineComments: []string{"#", "//"}, multiLine: cBlock, quotes: dqsq, env: []string{"php"}, extensions: []string{"php"}},
	Polly: {name: "Polly", multiLine: htmlBlock, extensions: []string{"polly"}},
	Pony: {
		name: "Pony", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq,
		docQuotes: []Delimiter{{`"""`, `"""`}}, extensions: []string{"pony"},
	},
	PostCss: {name: "PostCSS", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"pcss", "sss"}},
	PowerShell: {
		name: "PowerShell", lineComments: hashLine, multiLine: []Delimiter{{"<#", "#>"}}, quotes: dqsq,
		verbatimQuotes: []Delimiter{{`@"`, `"@`}, {"@'", "'@"}}, env: []string{"pwsh"},
		extensions: []string{"ps1", "psm1", "psd1", "ps1xml", "cdxml", "pssc", "psc1"},
	},
	Processing: {name: "Processing", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"pde"}},
	Prolog:     {name: "Prolog", lineComments: []string{"%"}, multiLine: cBlock, quotes: dqsq, env: []string{"swipl"}, extensions: []string{"p", "pro"}},
	Protobuf:   {name: "Protocol Buffers", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"proto"}},
	Pug:        {name: "Pug", lineComments: []string{"//-", "//"}, quotes: dqsq, extensions: []string{"pug"}},
	PureScript: {name: "PureScript", lineComments: dashLine, multiLine: hsBlock, nested: true, quotes: dq, extensions: []string{"purs"}},
	Python: {
		name: "Python", lineComments: hashLine, quotes: dqsq, docQuotes: pyDoc,
		shebangs: []string{"#!/usr/bin/python"}, env: []string{"python", "python2", "python3"},
		important: []string{`"""`, "'''"}, extensions: []string{"py", "pyw", "pyi"},
	},
	Q:   {name: "Q", lineComments: []string{"/"}, quotes: dq, extensions: []string{"q"}},
	Qcl: {name: "QCL", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"qcl"}},
	Qml: {name: "QML", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"qml"}},
	R:   {name: "R", lineComments: hashLine, quotes: dqsq, env: []string{"Rscript"}, extensions: []string{"r"}},
	Ron: {
		name: "Rusty Object Notation", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq,
		extensions: []string{"ron"},
	},
	RpmSpecfile: {name: "RPM Specfile", lineComments: hashLine, extensions: []string{"spec"}},
	Racket: {
		name: "Racket", lineComments: semiLine, multiLine: lispBlock, nested: true, quotes: dq,
		env: []string{"racket"}, extensions: []string{"rkt"},
	},
	Rakefile: {
		name: "Rakefile", lineComments: hashLine, multiLine: rubyBlock, quotes: dqsq,
		extensions: []string{"rake"}, filenames: []string{"rakefile"},
	},
	Razor: {
		name: "Razor", multiLine: []Delimiter{{"<!--", "-->"}, {"@*", "*@"}}, important: htmlImportant,
		extensions: []string{"cshtml", "razor"}, embed: embedHTML,
	},
	ReStructuredText: {name: "ReStructuredText", lineComments: []string{".."}, extensions: []string{"rst"}},
	Renpy:            {name: "Ren'Py", lineComments: hashLine, quotes: dq, extensions: []string{"rpy"}},
	Ruby: {
		name: "Ruby", lineComments: hashLine, multiLine: rubyBlock, quotes: dqsq,
		env: []string{"ruby"}, extensions: []string{"rb"}, filenames: []string{"gemfile"},
	},
	RubyHtml: {
		name: "Ruby HTML", multiLine: []Delimiter{{"<!--", "-->"}, {"<%#", "%>"}}, important: htmlImportant,
		extensions: []string{"rhtml", "erb"}, embed: embedHTML,
	},
	Rust: {
		name: "Rust", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: dq,
		verbatimQuotes: []Delimiter{{`r#"`, `"#`}, {`#"`, `"#`}},
		important:      []string{"///", "//!"}, extensions: []string{"rs"},
	},
	SRecode: {name: "SRecode Template", lineComments: []string{";;"}, extensions: []string{"srt"}},
	Sass:    {name: "Sass", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"sass", "scss"}},
	Scala: {
		name: "Scala", lineComments: slashLine, multiLine: cBlock, nested: true,
		quotes: []Delimiter{{`"""`, `"""`}, {`"`, `"`}}, env: []string{"scala"}, extensions: []string{"sc", "scala"},
	},
	Scheme: {
		name: "Scheme", lineComments: semiLine, multiLine: lispBlock, nested: true, quotes: dq,
		env: []string{"guile"}, extensions: []string{"scm", "ss"},
	},
	Scons: {
		name: "Scons", lineComments: hashLine, quotes: dqsq, docQuotes: pyDoc,
		extensions: []string{"csig"}, filenames: []string{"sconstruct", "sconscript"},
	},
	Sh: {
		name: "Shell", lineComments: hashLine, quotes: dqsq,
		shebangs: []string{"#!/bin/sh"}, env: []string{"sh"}, extensions: []string{"sh"},
	},
	Sml:           {name: "Standard ML (SML)", multiLine: mlBlock, nested: true, quotes: dq, extensions: []string{"sml"}},
	Solidity:      {name: "Solidity", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"sol"}},
	SpecmanE:      {name: "Specman e", lineComments: []string{"--", "//"}, quotes: dq, extensions: []string{"e"}},
	Spice:         {name: "Spice Netlist", lineComments: []string{"*"}, extensions: []string{"ckt"}},
	Sql:           {name: "SQL", lineComments: dashLine, multiLine: cBlock, quotes: sq, extensions: []string{"sql"}},
	Stan:          {name: "Stan", lineComments: []string{"//", "#"}, multiLine: cBlock, quotes: dq, extensions: []string{"stan"}},
	Stratego:      {name: "Stratego/XT", lineComments: slashLine, multiLine: cBlock, quotes: dq, verbatimQuotes: []Delimiter{{"$[", "]"}}, extensions: []string{"str"}},
	Stylus:        {name: "Stylus", lineComments: slashLine, multiLine: cBlock, quotes: dqsq, extensions: []string{"styl"}},
	Svelte:        {name: "Svelte", multiLine: htmlBlock, important: htmlImportant, extensions: []string{"svelte"}, embed: embedHTML},
	Svg:           {name: "SVG", multiLine: htmlBlock, extensions: []string{"svg"}},
	Swift:         {name: "Swift", lineComments: slashLine, multiLine: cBlock, nested: true, quotes: []Delimiter{{`"""`, `"""`}, {`"`, `"`}}, env: []string{"swift"}, extensions: []string{"swift"}},
	Swig:          {name: "SWIG", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"swg", "i"}},
	SystemVerilog: {name: "SystemVerilog", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"sv", "svh"}},
	Tcl:           {name: "TCL", lineComments: hashLine, quotes: dq, env: []string{"tclsh", "wish"}, extensions: []string{"tcl"}},
	Tera:          {name: "Tera", multiLine: jinjaBlock, quotes: dqsq, extensions: []string{"tera"}},
	Tex:           {name: "TeX", lineComments: []string{"%"}, extensions: []string{"tex", "sty"}},
	Text:          {name: "Plain Text", literate: true, extensions: []string{"text", "txt"}},
	Thrift:        {name: "Thrift", lineComments: []string{"#", "//"}, multiLine: cBlock, quotes: dqsq, extensions: []string{"thrift"}},
	Toml: {
		name: "TOML", lineComments: hashLine, quotes: []Delimiter{{`"""`, `"""`}, {`"`, `"`}},
		verbatimQuotes: []Delimiter{{"'''", "'''"}, {"'", "'"}}, extensions: []string{"toml"},
	},
	Tsx:  {name: "TSX", lineComments: slashLine, multiLine: cBlock, quotes: jsq, extensions: []string{"tsx"}},
	Ttcn: {name: "TTCN-3", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"ttcn", "ttcn3", "ttcnpp"}},
	Twig: {name: "Twig", multiLine: jinjaBlock, quotes: dqsq, extensions: []string{"twig"}},
	TypeScript: {
		name: "TypeScript", lineComments: slashLine, multiLine: cBlock, quotes: jsq,
		env: []string{"ts-node", "deno"}, extensions: []string{"ts", "mts", "cts"},
	},
	UnrealDeveloperMarkdown: {
		name: "Unreal Markdown", literate: true, important: markdownImportant,
		extensions: []string{"udn"}, embed: embedMarkdown,
	},
	UnrealPlugin:       {name: "Unreal Plugin", extensions: []string{"uplugin"}},
	UnrealProject:      {name: "Unreal Project", extensions: []string{"uproject"}},
	UnrealScript:       {name: "Unreal Script", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"uc", "uci", "upkg"}},
	UnrealShader:       {name: "Unreal Shader", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"usf"}},
	UnrealShaderHeader: {name: "Unreal Shader Header", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"ush"}},
	UrWeb:              {name: "Ur/Web", multiLine: mlBlock, quotes: dq, extensions: []string{"ur", "urs"}},
	UrWebProject:       {name: "Ur/Web Project", lineComments: hashLine, extensions: []string{"urp"}},
	Vb6:                {name: "VB6", lineComments: []string{"'"}, quotes: dq, extensions: []string{"frm", "bas", "cls"}},
	VbScript:           {name: "VBScript", lineComments: []string{"'", "REM"}, quotes: dq, extensions: []string{"vbs"}},
	Vala: {
		name: "Vala", lineComments: slashLine, multiLine: cBlock,
		quotes: []Delimiter{{`"""`, `"""`}, {`"`, `"`}}, extensions: []string{"vala"},
	},
	Velocity: {
		name: "Apache Velocity", lineComments: []string{"##"}, multiLine: []Delimiter{{"#*", "*#"}}, quotes: dqsq,
		extensions: []string{"vm"},
	},
	Verilog:         {name: "Verilog", lineComments: slashLine, multiLine: cBlock, quotes: dq, extensions: []string{"vg", "vh"}},
	VerilogArgsFile: {name: "Verilog Args File", lineComments: []string{"//", "#"}, extensions: []string{"irunargs", "xrunargs"}},
	Vhdl:            {name: "VHDL", lineComments: dashLine, multiLine: cBlock, quotes: dq, extensions: []string{"vhd", "vhdl"}},
	VimScript:       {name: "Vim script", lineComments: []string{`"`}, quotes: sq, extensions: []string{"vim"}},
	VisualBasic:     {name: "Visual Basic", lineComments: []string{"'"}, quotes: dq, extensions: []string{"vb"}},
	VisualStudioProject: {
		name: "Visual Studio Project", multiLine: htmlBlock, extensions: []string{"vcproj", "vcxproj"},
	},
	VisualStudioSolution: {name: "Visual Studio Solution", extensions: []string{"sln"}},
	Vue: {
		name: "Vue", multiLine: htmlBlock, important: htmlImportant,
		extensions: []string{"vue"}, embed: embedHTML,
	},
	WebAssembly: {
		name: "WebAssembly", lineComments: []string{";;"}, multiLine: []Delimiter{{"(;", ";)"}}, nested: true,
		quotes: dq, extensions: []string{"wat", "wast"},
	},
	Wolfram:     {name: "Wolfram", multiLine: mlBlock, nested: true, quotes: dq, extensions: []string{"nb", "wl"}},
	Xsl:         {name: "XSL", multiLine: htmlBlock, extensions: []string{"xsl", "xslt"}},
	Xaml:        {name: "XAML", multiLine: htmlBlock, extensions: []string{"xaml"}},
	XcodeConfig: {name: "Xcode Config", lineComments: slashLine, extensions: []string{"xcconfig"}},
	Xml:         {name: "XML", multiLine: htmlBlock, extensions: []string{"xml"}},
	Xtend: {
		name: "Xtend", lineComments: slashLine, multiLine: cBlock, quotes: dqsq,
		verbatimQuotes: []Delimiter{{"'''", "'''"}}, extensions: []string{"xtend"},
	},
	Yaml: {name: "YAML", lineComments: hashLine, quotes: dq, extensions: []string{"yaml", "yml"}},
	Zig:  {name: "Zig", lineComments: slashLine, quotes: dq, extensions: []string{"zig"}},
	Zsh: {
		name: "Zsh", lineComments: hashLine, quotes: dqsq,
		shebangs: []string{"#!/bin/zsh"}, env: []string{"zsh"}, extensions: []string{"zsh", "zshrc"},
	},
}
