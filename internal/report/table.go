package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gotokei/internal/languages"
	"gotokei/internal/model"
	"gotokei/internal/scanner"
)

const (
	inaccurateMark = " (!)"
	childPrefix    = " |- "
	filePrefix     = "   "
)

var (
	inaccurateColor = color.New(color.FgYellow)
	errorColor      = color.New(color.FgRed)
	headerRow       = table.Row{"Language", "Files", "Lines", "Code", "Comments", "Blanks"}
)

// PrintTable 将统计结果以表格形式输出到控制台。
// 嵌入语言以 " |- " 缩进展示在宿主语言下；Files 为 true 时追加逐文件行。
func PrintTable(writer io.Writer, result scanner.Result, opts Options) error {
	langs := result.Languages
	if langs == nil {
		langs = model.NewLanguages()
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	if opts.Columns > 0 {
		tbl.SetAllowedRowLength(opts.Columns)
	}

	numeric := make([]table.ColumnConfig, 0, len(headerRow)-1)
	for i := 2; i <= len(headerRow); i++ {
		numeric = append(numeric, table.ColumnConfig{Number: i, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	tbl.SetColumnConfigs(numeric)

	tbl.AppendHeader(headerRow)
	for _, entry := range orderedLanguages(langs, opts.Sort) {
		appendLanguage(tbl, entry, opts.Files)
	}

	total := langs.Total()
	tbl.AppendFooter(statsRow("Total", total.Files(), total.Code, total.Comments, total.Blanks))

	tbl.Render()

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintf(writer, "\n%d file(s) could not be counted:\n", len(result.Errors)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return PrintErrors(writer, result.Errors)
	}
	return nil
}

// PrintErrors 逐行输出扫描失败的文件。
func PrintErrors(writer io.Writer, errs []scanner.ScanError) error {
	for _, scanErr := range errs {
		if _, err := errorColor.Fprintf(writer, "  %s: %s\n", scanErr.Path, scanErr.Error); err != nil {
			return fmt.Errorf("write errors: %w", err)
		}
	}
	return nil
}

// orderedLanguages 返回待展示的语言；指定排序时按类别降序并对文件排序。
func orderedLanguages(langs *model.Languages, sort *model.Sort) []model.LanguageEntry {
	if sort != nil {
		return langs.Sorted(*sort)
	}

	entries := make([]model.LanguageEntry, 0, langs.Len())
	for _, t := range langs.Types() {
		lang, err := langs.Get(t)
		if err != nil {
			continue
		}
		entries = append(entries, model.LanguageEntry{Type: t, Language: lang})
	}
	return entries
}

func appendLanguage(tbl table.Writer, entry model.LanguageEntry, withFiles bool) {
	lang := entry.Language
	name := entry.Type.Name()
	if lang.Inaccurate {
		name = inaccurateColor.Sprint(name + inaccurateMark)
	}
	tbl.AppendRow(statsRow(name, lang.Files(), lang.Code, lang.Comments, lang.Blanks))

	totals := lang.ChildTotals()
	children := make([]languages.LanguageType, 0, len(totals))
	for t := range totals {
		children = append(children, t)
	}
	slices.SortFunc(children, func(a, b languages.LanguageType) int {
		return strings.Compare(a.Name(), b.Name())
	})
	for _, t := range children {
		stats := totals[t]
		tbl.AppendRow(statsRow(childPrefix+t.Name(), len(lang.Children[t]), stats.Code, stats.Comments, stats.Blanks))
	}

	if !withFiles {
		return
	}
	for _, report := range lang.Reports {
		stats := report.Stats.Summarise()
		tbl.AppendRow(table.Row{
			filePrefix + report.Name,
			"",
			humanize.Comma(int64(stats.Lines())),
			humanize.Comma(int64(stats.Code)),
			humanize.Comma(int64(stats.Comments)),
			humanize.Comma(int64(stats.Blanks)),
		})
	}
	tbl.AppendSeparator()
}

func statsRow(name string, files, code, comments, blanks int) table.Row {
	return table.Row{
		name,
		humanize.Comma(int64(files)),
		humanize.Comma(int64(code + comments + blanks)),
		humanize.Comma(int64(code)),
		humanize.Comma(int64(comments)),
		humanize.Comma(int64(blanks)),
	}
}
