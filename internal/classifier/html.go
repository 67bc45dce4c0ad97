package classifier

import (
	"regexp"
	"strings"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

var (
	embedTagPattern  = regexp.MustCompile(`(?i)<(script|style)\b([^>]*)>`)
	embedAttrPattern = regexp.MustCompile(`(?i)\b(lang|type)\s*=\s*["']?([^"'\s>]+)`)
)

// scriptTypes 覆盖 <script type/lang> 中不能直接按语言名识别的取值。
var scriptTypes = map[string]languages.LanguageType{
	"":                       languages.JavaScript,
	"module":                 languages.JavaScript,
	"javascript":             languages.JavaScript,
	"text/javascript":        languages.JavaScript,
	"application/javascript": languages.JavaScript,
	"ecmascript":             languages.JavaScript,
	"text/babel":             languages.Jsx,
	"ts":                     languages.TypeScript,
	"typescript":             languages.TypeScript,
	"text/typescript":        languages.TypeScript,
	"tsx":                    languages.Tsx,
	"importmap":              languages.Json,
	"application/json":       languages.Json,
	"application/ld+json":    languages.Json,
}

// classifyHTML 处理 HTML 类宿主：只识别位于注释与字符串之外的 <script>/<style> 标签，
// 标签之间的内容按 lang/type 识别后作为 blob 单独分类。
// 与标签同行的区块内容也进入 blob，该行只计一次，不再计入宿主。
func (c *Classifier) classifyHTML(host languages.LanguageType, content string) Result {
	stats := model.NewCodeStats()
	hostLexer := newLexer(host, c.docStringsAsComments)
	inaccurate := false
	lines := splitLines(content)

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		match := findEmbedTag(hostLexer, line)
		if match == nil {
			count(&stats, hostLexer.classify(line))
			continue
		}

		tag := strings.ToLower(line[match[2]:match[3]])
		closing := "</" + tag
		tail := line[match[1]:]
		if indexFold(tail, closing) >= 0 {
			count(&stats, hostLexer.classify(line))
			continue
		}

		lang, known := embeddedLanguage(tag, line[match[4]:match[5]])
		body := make([]string, 0)
		if known && strings.TrimSpace(tail) != "" {
			hostLexer.classify(line[:match[1]])
			body = append(body, tail)
		} else {
			count(&stats, hostLexer.classify(line))
		}

		end, closeAt := -1, -1
		for j := i + 1; j < len(lines); j++ {
			if at := indexFold(lines[j], closing); at >= 0 {
				end, closeAt = j, at
				break
			}
			body = append(body, lines[j])
		}

		closeInBlob := false
		if end >= 0 && known {
			if head := lines[end][:closeAt]; strings.TrimSpace(head) != "" {
				body = append(body, head)
				closeInBlob = true
			}
		}

		if known {
			if len(body) > 0 {
				blob := c.classify(lang, joinLines(body))
				stats.AddBlob(lang, blob.Stats)
				inaccurate = inaccurate || blob.Inaccurate
			}
		} else {
			for _, bodyLine := range body {
				count(&stats, hostLexer.classify(bodyLine))
			}
		}

		if end < 0 {
			inaccurate = true
			break
		}
		if closeInBlob {
			hostLexer.classify(lines[end][closeAt:])
		} else {
			count(&stats, hostLexer.classify(lines[end]))
		}
		i = end
	}

	return Result{Stats: stats, Inaccurate: inaccurate || hostLexer.open()}
}

// findEmbedTag 返回 line 中第一个位于宿主注释与字符串之外的开启标签。
func findEmbedTag(lx *lexer, line string) []int {
	matches := embedTagPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	spans := lx.outside(line)
	for _, m := range matches {
		for _, sp := range spans {
			if sp.contains(m[0]) {
				return m
			}
		}
	}
	return nil
}

// embeddedLanguage 根据标签名与属性决定区块语言，lang 优先于 type。
func embeddedLanguage(tag, attrs string) (languages.LanguageType, bool) {
	values := make(map[string]string, 2)
	for _, m := range embedAttrPattern.FindAllStringSubmatch(attrs, -1) {
		values[strings.ToLower(m[1])] = strings.ToLower(m[2])
	}
	value, ok := values["lang"]
	if !ok {
		value = values["type"]
	}

	if tag == "style" {
		switch value {
		case "", "css", "text/css":
			return languages.Css, true
		}
		return languages.Lookup(value)
	}

	if lang, ok := scriptTypes[value]; ok {
		return lang, true
	}
	value = strings.TrimPrefix(value, "text/")
	value = strings.TrimPrefix(value, "application/")
	return languages.Lookup(value)
}

// indexFold 按 ASCII 大小写不敏感查找 substr，返回字节偏移。
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
