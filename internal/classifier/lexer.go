package classifier

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"gotokei/internal/languages"
)

// lineClass 是单行的最终分类。
type lineClass int

const (
	lineBlank lineClass = iota
	lineCode
	lineComment
)

// tokenKind 按优先级排列：同长度的起始标记冲突时数值小者优先。
type tokenKind int

const (
	tokenBlock tokenKind = iota
	tokenLine
	tokenDoc
	tokenVerbatim
	tokenQuote
)

type token struct {
	kind  tokenKind
	delim languages.Delimiter
}

// rules 是某个语言预处理后的词法规则，构建后只读。
type rules struct {
	// tokens 按起始标记长度降序排列，保证 "--[[" 先于 "--" 匹配。
	tokens []token
	// nestable 是在块注释内部仍会开启新层级的起始标记。
	nestable []languages.Delimiter
	// markers 用于快速路径：行内不含任何标记时直接判为代码。
	markers  []string
	literate bool
}

var rulesByLanguage = sync.OnceValue(func() map[languages.LanguageType]*rules {
	all := languages.List()
	index := make(map[languages.LanguageType]*rules, len(all))
	for _, lang := range all {
		index[lang] = newRules(lang)
	}
	return index
})

func rulesFor(lang languages.LanguageType) *rules {
	if r, ok := rulesByLanguage()[lang]; ok {
		return r
	}
	return &rules{}
}

func newRules(lang languages.LanguageType) *rules {
	r := &rules{literate: lang.IsLiterate()}

	for _, d := range lang.MultiLineComments() {
		if !complete(d) {
			continue
		}
		r.tokens = append(r.tokens, token{kind: tokenBlock, delim: d})
		if lang.AllowsNested() {
			r.nestable = append(r.nestable, d)
		}
	}
	for _, d := range lang.NestedComments() {
		if !complete(d) {
			continue
		}
		r.tokens = append(r.tokens, token{kind: tokenBlock, delim: d})
		r.nestable = append(r.nestable, d)
	}
	for _, start := range lang.LineComments() {
		if start == "" {
			continue
		}
		r.tokens = append(r.tokens, token{kind: tokenLine, delim: languages.Delimiter{Start: start}})
	}
	for _, d := range lang.DocQuotes() {
		if complete(d) {
			r.tokens = append(r.tokens, token{kind: tokenDoc, delim: d})
		}
	}
	for _, d := range lang.VerbatimQuotes() {
		if complete(d) {
			r.tokens = append(r.tokens, token{kind: tokenVerbatim, delim: d})
		}
	}
	for _, d := range lang.Quotes() {
		if complete(d) {
			r.tokens = append(r.tokens, token{kind: tokenQuote, delim: d})
		}
	}

	slices.SortStableFunc(r.tokens, func(a, b token) int {
		if c := cmp.Compare(len(b.delim.Start), len(a.delim.Start)); c != 0 {
			return c
		}
		return cmp.Compare(a.kind, b.kind)
	})
	slices.SortStableFunc(r.nestable, func(a, b languages.Delimiter) int {
		return cmp.Compare(len(b.Start), len(a.Start))
	})

	for _, t := range r.tokens {
		r.markers = append(r.markers, t.delim.Start)
	}
	r.markers = append(r.markers, lang.ImportantSyntax()...)
	return r
}

// complete 过滤缺少起止标记的分隔符，空 End 会让状态机原地打转。
func complete(d languages.Delimiter) bool {
	return d.Start != "" && d.End != ""
}

// mentions 判断行内是否出现任何需要状态机处理的标记。
func (r *rules) mentions(line string) bool {
	for _, marker := range r.markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// match 返回在 rest 开头匹配到的最长标记。
func (r *rules) match(rest string) (token, bool) {
	for _, t := range r.tokens {
		if strings.HasPrefix(rest, t.delim.Start) {
			return t, true
		}
	}
	return token{}, false
}

func (r *rules) nestedStart(rest string) (languages.Delimiter, bool) {
	for _, d := range r.nestable {
		if strings.HasPrefix(rest, d.Start) {
			return d, true
		}
	}
	return languages.Delimiter{}, false
}

// lexer 跨行维护一个文件的词法状态。
//
// 状态说明：
// - comments: 尚未闭合的块注释栈，栈顶的 End 决定何时弹出
// - quote: 尚未闭合的字符串；quoteIsComment 为 true 时按注释计数（文档字符串）
type lexer struct {
	rules         *rules
	docAsComments bool

	comments       []languages.Delimiter
	inQuote        bool
	quote          languages.Delimiter
	quoteKind      tokenKind
	quoteIsComment bool
}

func newLexer(lang languages.LanguageType, docAsComments bool) *lexer {
	return &lexer{rules: rulesFor(lang), docAsComments: docAsComments}
}

// open 表示仍有未闭合的注释或字符串。
func (lx *lexer) open() bool {
	return lx.inQuote || len(lx.comments) > 0
}

// span 是行内的字节区间 [start, end)。
type span struct {
	start, end int
}

func (sp span) contains(i int) bool {
	return sp.start <= i && i < sp.end
}

// classify 处理一整行（不含换行符）并更新跨行状态。
//
// 判定顺序：
// - 出现任何代码字符即为代码行，注释与代码同行也只计一次代码
// - 否则只要见到注释，或本行开始时处于注释中，即为注释行
// - 字符串内的空白行计为代码
func (lx *lexer) classify(line string) lineClass {
	class, _ := lx.scan(line, false)
	return class
}

// outside 返回 line 中位于注释与字符串之外的区间，不改变 lexer 的状态。
func (lx *lexer) outside(line string) []span {
	probe := *lx
	probe.comments = slices.Clone(lx.comments)
	_, spans := probe.scan(line, true)
	return spans
}

// scan 是 classify 的实现；track 为 true 时额外收集注释与字符串之外的区间。
func (lx *lexer) scan(line string, track bool) (lineClass, []span) {
	var spans []span
	mark := func(from, to int) {
		if !track {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].end == from {
			spans[n-1].end = to
			return
		}
		spans = append(spans, span{start: from, end: to})
	}

	trimmed := strings.TrimSpace(line)

	if lx.rules.literate {
		mark(0, len(line))
		if trimmed == "" {
			return lineBlank, spans
		}
		return lineComment, spans
	}

	if trimmed == "" {
		if lx.inQuote && !lx.quoteIsComment {
			return lineCode, nil
		}
		return lineBlank, nil
	}

	if !lx.open() && !lx.rules.mentions(trimmed) {
		mark(0, len(line))
		return lineCode, spans
	}

	startedInComment := len(lx.comments) > 0 || (lx.inQuote && lx.quoteIsComment)
	hasCode, hasComment := false, false

	for i := 0; i < len(line); {
		rest := line[i:]

		switch {
		case lx.inQuote:
			if isSpace(rest[0]) {
				i++
				continue
			}
			if lx.quoteIsComment {
				hasComment = true
			} else {
				hasCode = true
			}
			if lx.quoteKind != tokenVerbatim && rest[0] == '\\' {
				i += 2
				continue
			}
			if strings.HasPrefix(rest, lx.quote.End) {
				lx.inQuote = false
				i += len(lx.quote.End)
				continue
			}
			i++

		case len(lx.comments) > 0:
			hasComment = true
			top := lx.comments[len(lx.comments)-1]
			if strings.HasPrefix(rest, top.End) {
				lx.comments = lx.comments[:len(lx.comments)-1]
				i += len(top.End)
				continue
			}
			if d, ok := lx.rules.nestedStart(rest); ok {
				lx.comments = append(lx.comments, d)
				i += len(d.Start)
				continue
			}
			i++

		default:
			if isSpace(rest[0]) {
				mark(i, i+1)
				i++
				continue
			}
			t, ok := lx.rules.match(rest)
			if !ok {
				hasCode = true
				mark(i, i+1)
				i++
				continue
			}

			switch t.kind {
			case tokenLine:
				hasComment = true
				i = len(line)
			case tokenBlock:
				hasComment = true
				lx.comments = append(lx.comments, t.delim)
				i += len(t.delim.Start)
			default:
				lx.inQuote = true
				lx.quote = t.delim
				lx.quoteKind = t.kind
				// 只有位于行首的文档字符串才按注释计数，`x = """..."""` 仍是代码。
				lx.quoteIsComment = t.kind == tokenDoc && lx.docAsComments && !hasCode
				if lx.quoteIsComment {
					hasComment = true
				} else {
					hasCode = true
				}
				i += len(t.delim.Start)
			}
		}
	}

	switch {
	case hasCode:
		return lineCode, spans
	case hasComment || startedInComment:
		return lineComment, spans
	default:
		return lineBlank, spans
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}
