package classifier

import (
	"regexp"
	"strings"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

var fenceOpenPattern = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})(.*)$")

// classifyMarkdown 处理文学型宿主：正文计为注释，围栏行计为注释，
// 可识别语言的围栏内容作为 blob 分类，无法识别时计为宿主代码。
func (c *Classifier) classifyMarkdown(host languages.LanguageType, content string) Result {
	stats := model.NewCodeStats()
	hostLexer := newLexer(host, c.docStringsAsComments)
	inaccurate := false
	lines := splitLines(content)

	for i := 0; i < len(lines); i++ {
		m := fenceOpenPattern.FindStringSubmatch(lines[i])
		// 反引号围栏的信息串里不能再出现反引号，否则是行内代码。
		if m == nil || (m[1][0] == '`' && strings.Contains(m[2], "`")) {
			count(&stats, hostLexer.classify(lines[i]))
			continue
		}

		fence := m[1]
		stats.Comments++

		body := make([]string, 0)
		end := -1
		for j := i + 1; j < len(lines); j++ {
			if closesFence(lines[j], fence) {
				end = j
				break
			}
			body = append(body, lines[j])
		}

		if lang, ok := languages.FromFenceInfo(m[2]); ok {
			if len(body) > 0 {
				blob := c.classify(lang, joinLines(body))
				stats.AddBlob(lang, blob.Stats)
				inaccurate = inaccurate || blob.Inaccurate
			}
		} else {
			for _, bodyLine := range body {
				if strings.TrimSpace(bodyLine) == "" {
					stats.Blanks++
				} else {
					stats.Code++
				}
			}
		}

		if end < 0 {
			inaccurate = true
			break
		}
		stats.Comments++
		i = end
	}

	return Result{Stats: stats, Inaccurate: inaccurate}
}

// closesFence 判断 line 是否闭合 fence：同一字符、长度不小于开启围栏、其后只有空白。
func closesFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(fence) || len(line)-len(strings.TrimLeft(line, " ")) > 3 {
		return false
	}
	return strings.Trim(trimmed, fence[:1]) == ""
}
