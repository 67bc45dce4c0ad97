package model

import (
	"encoding/json"
	"slices"

	"gotokei/internal/languages"
)

// summaryReportName 是 Summarise 生成的合成报告名称。
const summaryReportName = "(summary)"

// Language 聚合同一 LanguageType 的全部 Report。
//
// 注意：
// - Blanks/Code/Comments 只累计各 Report 本层计数
// - 内嵌语言统计进入 Children，不计入本语言总数，避免宿主文件与子语言重复计数
// - Inaccurate 单调：一旦为 true，后续 AddReport 不会清除
type Language struct {
	Blanks     int                                 `json:"blanks"`
	Code       int                                 `json:"code"`
	Comments   int                                 `json:"comments"`
	Reports    []Report                            `json:"reports"`
	Children   map[languages.LanguageType][]Report `json:"children"`
	Inaccurate bool                                `json:"inaccurate"`

	// files 通常等于 len(Reports)；Summarise 得到的合成值只有一个报告，
	// 但仍保留原始文件数。
	files int
}

// NewLanguage 创建一个空聚合：计数为零、集合为空、Inaccurate 为 false。
func NewLanguage() *Language {
	return &Language{
		Reports:  make([]Report, 0),
		Children: make(map[languages.LanguageType][]Report),
	}
}

// AddReport 折叠一个文件报告。
// 报告本层计数进入总数；每个内嵌 blob 以同路径的合成报告追加到 Children。
func (l *Language) AddReport(report Report) {
	if l.Children == nil {
		l.Children = make(map[languages.LanguageType][]Report)
	}

	for lang, blob := range report.Stats.Blobs {
		child := Report{
			Name:  report.Name,
			Stats: blob.Clone(),
		}
		l.Children[lang] = append(l.Children[lang], child)
	}

	l.Blanks += report.Stats.Blanks
	l.Code += report.Stats.Code
	l.Comments += report.Stats.Comments
	if report.Inaccurate {
		l.MarkInaccurate()
	}
	l.Reports = append(l.Reports, report)
	l.files++
}

// MarkInaccurate 标记该语言至少有一个文件无法可靠分类。
func (l *Language) MarkInaccurate() {
	l.Inaccurate = true
}

// Lines 返回本语言自身的总行数（不含 Children）。
func (l *Language) Lines() int {
	return l.Blanks + l.Code + l.Comments
}

// Files 返回贡献给本语言的文件数。
// 不经 AddReport/Merge 构造的聚合（例如直接填充 Reports）回落为 len(Reports)。
func (l *Language) Files() int {
	if l.files == 0 {
		return len(l.Reports)
	}
	return l.files
}

// IsEmpty 当且仅当没有任何 Report 时为 true。
func (l *Language) IsEmpty() bool {
	return len(l.Reports) == 0
}

// Summarise 返回只读快照：一个合成 Report 持有全部报告本层计数之和。
// 结果与报告插入顺序无关。
func (l *Language) Summarise() *Language {
	summary := NewLanguage()
	summary.Blanks = l.Blanks
	summary.Code = l.Code
	summary.Comments = l.Comments
	summary.Inaccurate = l.Inaccurate
	summary.files = l.Files()
	summary.Children = cloneChildren(l.Children)

	if len(l.Reports) == 0 {
		return summary
	}

	total := NewReport(summaryReportName)
	for _, report := range l.Reports {
		total.Stats.Blanks += report.Stats.Blanks
		total.Stats.Code += report.Stats.Code
		total.Stats.Comments += report.Stats.Comments
		total.Inaccurate = total.Inaccurate || report.Inaccurate
	}
	summary.Reports = append(summary.Reports, total)
	return summary
}

// Total 是 Summarise 的别名。
func (l *Language) Total() *Language {
	return l.Summarise()
}

// SortBy 按类别对 Reports 原地稳定排序。
func (l *Language) SortBy(category Sort) {
	sortReports(l.Reports, category)
}

// Merge 把另一个聚合并入当前对象。计数相加、报告与子语言报告追加、
// Inaccurate 取或，满足结合律与交换律（就计数而言）。
func (l *Language) Merge(other *Language) {
	if other == nil {
		return
	}
	if l.Children == nil {
		l.Children = make(map[languages.LanguageType][]Report)
	}

	l.Blanks += other.Blanks
	l.Code += other.Code
	l.Comments += other.Comments
	l.Inaccurate = l.Inaccurate || other.Inaccurate
	l.files = l.Files() + other.Files()
	l.Reports = append(l.Reports, other.Reports...)

	for lang, reports := range other.Children {
		l.Children[lang] = append(l.Children[lang], reports...)
	}
}

// ChildTotals 汇总每种内嵌语言在本语言文件中的统计（已 summarise）。
// 只读，不影响本语言总数。
func (l *Language) ChildTotals() map[languages.LanguageType]CodeStats {
	totals := make(map[languages.LanguageType]CodeStats, len(l.Children))
	for lang, reports := range l.Children {
		total := NewCodeStats()
		for _, report := range reports {
			total.Add(report.Stats.Summarise())
		}
		totals[lang] = total
	}
	return totals
}

// ReportsPlain 返回以文件路径为键的扁平统计。
func (l *Language) ReportsPlain() map[string]PlainStats {
	plain := make(map[string]PlainStats, len(l.Reports))
	for _, report := range l.Reports {
		plain[report.Name] = report.Stats.Content()
	}
	return plain
}

// Plain 返回 {files, lines, code, comments, blanks} 扁平投影。
func (l *Language) Plain() map[string]int {
	return map[string]int{
		"files":    l.Files(),
		"lines":    l.Lines(),
		"code":     l.Code,
		"comments": l.Comments,
		"blanks":   l.Blanks,
	}
}

// Clone 深拷贝聚合。
func (l *Language) Clone() *Language {
	clone := NewLanguage()
	clone.Blanks = l.Blanks
	clone.Code = l.Code
	clone.Comments = l.Comments
	clone.Inaccurate = l.Inaccurate
	clone.files = l.files
	clone.Reports = cloneReports(l.Reports)
	clone.Children = cloneChildren(l.Children)
	return clone
}

// MarshalJSON 额外输出 files 与 lines 字段。
func (l *Language) MarshalJSON() ([]byte, error) {
	type plainLanguage Language
	return json.Marshal(struct {
		*plainLanguage
		Files int `json:"files"`
		Lines int `json:"lines"`
	}{
		plainLanguage: (*plainLanguage)(l),
		Files:         l.Files(),
		Lines:         l.Lines(),
	})
}

// UnmarshalJSON 还原 MarshalJSON 的输出；缺少 files 字段时取 len(Reports)。
func (l *Language) UnmarshalJSON(data []byte) error {
	type plainLanguage Language
	decoded := struct {
		*plainLanguage
		Files *int `json:"files"`
	}{
		plainLanguage: (*plainLanguage)(l),
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	if l.Reports == nil {
		l.Reports = make([]Report, 0)
	}
	if l.Children == nil {
		l.Children = make(map[languages.LanguageType][]Report)
	}
	l.files = len(l.Reports)
	if decoded.Files != nil {
		l.files = *decoded.Files
	}
	return nil
}

func cloneReports(reports []Report) []Report {
	clone := make([]Report, len(reports))
	for i, report := range reports {
		clone[i] = Report{
			Name:       report.Name,
			Stats:      report.Stats.Clone(),
			Inaccurate: report.Inaccurate,
		}
	}
	return clone
}

func cloneChildren(children map[languages.LanguageType][]Report) map[languages.LanguageType][]Report {
	clone := make(map[languages.LanguageType][]Report, len(children))
	for lang, reports := range children {
		clone[lang] = slices.Clip(cloneReports(reports))
	}
	return clone
}
