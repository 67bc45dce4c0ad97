// Package classifier 把文件内容按语言词法规则逐行分类为代码、注释或空白。
//
// 规则完全由 languages 包的静态表驱动；HTML 类宿主的 <script>/<style>、
// Markdown 围栏代码块与 Jupyter 单元格会被拆成内嵌语言的 blob。
package classifier

import (
	"strings"
	"unicode/utf8"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

// Result 是单个文件的分类结果。
type Result struct {
	Stats model.CodeStats
	// Inaccurate 表示内容无法可靠分类：非法 UTF-8、区域到文件末尾仍未闭合或笔记本无法解析。
	Inaccurate bool
}

// Classifier 无状态，可被多个 goroutine 同时使用。
type Classifier struct {
	docStringsAsComments bool
}

// Option 配置 Classifier。
type Option func(*Classifier)

// WithDocStringsAsComments 控制文档字符串计为注释（true）还是代码（false，默认）。
func WithDocStringsAsComments(enabled bool) Option {
	return func(c *Classifier) {
		c.docStringsAsComments = enabled
	}
}

// New 创建分类器。
func New(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DocStringsAsComments 返回当前的文档字符串计数策略。
func (c *Classifier) DocStringsAsComments() bool {
	return c.docStringsAsComments
}

// Classify 对 content 按 lang 的规则分类。
func (c *Classifier) Classify(lang languages.LanguageType, content []byte) Result {
	result := c.classify(lang, string(content))
	if !utf8.Valid(content) {
		result.Inaccurate = true
	}
	return result
}

func (c *Classifier) classify(lang languages.LanguageType, content string) Result {
	switch {
	case lang.IsNotebook():
		return c.classifyNotebook(content)
	case lang.EmbedsHTML():
		return c.classifyHTML(lang, content)
	case lang.EmbedsFencedCode():
		return c.classifyMarkdown(lang, content)
	default:
		return c.classifyPlain(lang, content)
	}
}

// classifyPlain 处理不含内嵌语言的内容。
func (c *Classifier) classifyPlain(lang languages.LanguageType, content string) Result {
	stats := model.NewCodeStats()
	lx := newLexer(lang, c.docStringsAsComments)
	for _, line := range splitLines(content) {
		count(&stats, lx.classify(line))
	}
	return Result{Stats: stats, Inaccurate: lx.open()}
}

// count 把一行的分类计入统计。
func count(stats *model.CodeStats, class lineClass) {
	switch class {
	case lineCode:
		stats.Code++
	case lineComment:
		stats.Comments++
	default:
		stats.Blanks++
	}
}

// splitLines 按 \n 切分并去掉 \r；末尾换行不产生额外的空行。
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// joinLines 把切分后的行还原为内容，供内嵌区域递归分类。
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
