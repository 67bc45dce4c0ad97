// Package report 提供 gotokei 的输出能力。
// 支持 table 控制台格式、JSON 与 YAML（含文件导出），以及 Prometheus 文本格式的扫描指标。
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"gotokei/internal/model"
	"gotokei/internal/scanner"
)

// ErrUnknownFormat 表示无法识别的输出格式。
var ErrUnknownFormat = errors.New("unknown output format")

// Format 是输出格式。
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat 解析输出格式名称（大小写不敏感，yml 视为 yaml）。
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options 控制输出内容。
type Options struct {
	// Sort 非 nil 时按该类别降序排列语言与文件；否则按语言名排列。
	Sort *model.Sort
	// Files 为 true 时输出逐文件明细。
	Files bool
	// Columns 限制表格行宽，0 表示不限制。
	Columns int
}

// Document 是 JSON/YAML 输出的结构。
type Document struct {
	Languages map[string]LanguageDocument `json:"languages" yaml:"languages"`
	Total     LanguageDocument            `json:"total" yaml:"total"`
	Errors    []scanner.ScanError         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// LanguageDocument 是单个语言（或总计）的扁平统计。
type LanguageDocument struct {
	Files      int                         `json:"files" yaml:"files"`
	Lines      int                         `json:"lines" yaml:"lines"`
	Code       int                         `json:"code" yaml:"code"`
	Comments   int                         `json:"comments" yaml:"comments"`
	Blanks     int                         `json:"blanks" yaml:"blanks"`
	Inaccurate bool                        `json:"inaccurate,omitempty" yaml:"inaccurate,omitempty"`
	Children   map[string]model.PlainStats `json:"children,omitempty" yaml:"children,omitempty"`
	Reports    map[string]model.PlainStats `json:"reports,omitempty" yaml:"reports,omitempty"`
}

// NewDocument 把扫描结果投影为可序列化的文档。
func NewDocument(result scanner.Result, opts Options) Document {
	langs := result.Languages
	if langs == nil {
		langs = model.NewLanguages()
	}

	doc := Document{
		Languages: make(map[string]LanguageDocument, langs.Len()),
		Total:     languageDocument(langs.Total(), false),
		Errors:    result.Errors,
	}
	for _, t := range langs.Types() {
		lang, err := langs.Get(t)
		if err != nil {
			continue
		}
		doc.Languages[t.Name()] = languageDocument(lang, opts.Files)
	}
	return doc
}

func languageDocument(lang *model.Language, withReports bool) LanguageDocument {
	doc := LanguageDocument{
		Files:      lang.Files(),
		Lines:      lang.Lines(),
		Code:       lang.Code,
		Comments:   lang.Comments,
		Blanks:     lang.Blanks,
		Inaccurate: lang.Inaccurate,
	}

	if totals := lang.ChildTotals(); len(totals) > 0 {
		doc.Children = make(map[string]model.PlainStats, len(totals))
		for t, stats := range totals {
			doc.Children[t.Name()] = stats.Content()
		}
	}
	if withReports {
		doc.Reports = lang.ReportsPlain()
	}
	return doc
}

// Print 按格式把结果写到 writer。
func Print(writer io.Writer, format Format, result scanner.Result, opts Options) error {
	switch format {
	case FormatTable:
		return PrintTable(writer, result, opts)
	case FormatJSON:
		return PrintJSON(writer, NewDocument(result, opts))
	case FormatYAML:
		return PrintYAML(writer, NewDocument(result, opts))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// PrintJSON 把文档按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, doc Document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把文档输出为 YAML。
func PrintYAML(writer io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// WriteFile 将结果按格式导出到指定路径。
// 如果目录不存在会自动创建；table 格式不写颜色。
func WriteFile(path string, format Format, result scanner.Result, opts Options) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	if format == FormatTable {
		noColor := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = noColor }()
	}

	printErr := Print(file, format, result, opts)
	closeErr := file.Close()
	if printErr != nil {
		return printErr
	}
	if closeErr != nil {
		return fmt.Errorf("write output file: %w", closeErr)
	}
	return nil
}
