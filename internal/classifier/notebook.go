package classifier

import (
	"encoding/json"
	"strings"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

// notebook 只解码计数所需的 nbformat 字段。
type notebook struct {
	Cells    []notebookCell `json:"cells"`
	Metadata struct {
		Kernelspec struct {
			Language string `json:"language"`
		} `json:"kernelspec"`
		LanguageInfo struct {
			Name string `json:"name"`
		} `json:"language_info"`
	} `json:"metadata"`
}

type notebookCell struct {
	CellType string     `json:"cell_type"`
	Source   cellSource `json:"source"`
}

// cellSource 兼容 nbformat 的两种写法：单个字符串或按行拆分的字符串数组。
type cellSource string

func (s *cellSource) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = cellSource(text)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*s = cellSource(strings.Join(lines, ""))
	return nil
}

// kernelLanguage 依次取 kernelspec.language 与 language_info.name，默认 Python。
func (nb *notebook) kernelLanguage() languages.LanguageType {
	for _, name := range []string{nb.Metadata.Kernelspec.Language, nb.Metadata.LanguageInfo.Name} {
		if lang, ok := languages.Lookup(name); ok {
			return lang
		}
	}
	return languages.Python
}

// classifyNotebook 把 markdown 单元格计入 Markdown blob，代码单元格计入内核语言 blob；
// 笔记本自身的计数保持为零。
func (c *Classifier) classifyNotebook(content string) Result {
	stats := model.NewCodeStats()

	var nb notebook
	if err := json.Unmarshal([]byte(content), &nb); err != nil {
		return Result{Stats: stats, Inaccurate: true}
	}

	kernel := nb.kernelLanguage()
	inaccurate := false
	for _, cell := range nb.Cells {
		var lang languages.LanguageType
		switch cell.CellType {
		case "markdown":
			lang = languages.Markdown
		case "code":
			lang = kernel
		default:
			continue
		}
		if cell.Source == "" {
			continue
		}

		blob := c.classify(lang, string(cell.Source))
		stats.AddBlob(lang, blob.Stats)
		inaccurate = inaccurate || blob.Inaccurate
	}

	return Result{Stats: stats, Inaccurate: inaccurate}
}
