package model

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"gotokei/internal/languages"
)

// ErrLanguageTypeNotFound 表示聚合中不存在该语言的条目。
// 这是正常的“缺失”结果，不代表内部错误。
var ErrLanguageTypeNotFound = errors.New("LanguageType not found")

// Collector 负责遍历路径、分类文件并返回部分聚合。
// 由 scanner 实现，model 只依赖该接口。
type Collector interface {
	Collect(ctx context.Context, paths []string, excluded []string) (*Languages, error)
}

// Languages 是一次扫描的根聚合，按 LanguageType 索引。
// 非并发安全；并发采集时每个 worker 持有独立实例，最后用 Merge 归并。
type Languages struct {
	entries map[languages.LanguageType]*Language
}

// LanguageEntry 是 Sorted 返回的有序条目。
type LanguageEntry struct {
	Type     languages.LanguageType
	Language *Language
}

// NewLanguages 创建空聚合。
func NewLanguages() *Languages {
	return &Languages{entries: make(map[languages.LanguageType]*Language)}
}

// Entry 返回该语言的聚合，首次访问时创建。
func (ls *Languages) Entry(t languages.LanguageType) *Language {
	if ls.entries == nil {
		ls.entries = make(map[languages.LanguageType]*Language)
	}
	lang, ok := ls.entries[t]
	if !ok {
		lang = NewLanguage()
		ls.entries[t] = lang
	}
	return lang
}

// AddReport 把报告折叠进对应语言。
func (ls *Languages) AddReport(t languages.LanguageType, report Report) {
	ls.Entry(t).AddReport(report)
}

// Get 查找已有条目；不存在时返回 ErrLanguageTypeNotFound。
func (ls *Languages) Get(t languages.LanguageType) (*Language, error) {
	lang, ok := ls.entries[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageTypeNotFound, t)
	}
	return lang, nil
}

// Len 返回已聚合的语言数。
func (ls *Languages) Len() int {
	return len(ls.entries)
}

// Types 返回已聚合的语言，按名称排序。
func (ls *Languages) Types() []languages.LanguageType {
	types := make([]languages.LanguageType, 0, len(ls.entries))
	for t := range ls.entries {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b languages.LanguageType) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return types
}

// LanguageNames 返回已聚合语言的展示名，按名称排序。
func (ls *Languages) LanguageNames() []string {
	types := ls.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return names
}

// Total 汇总全部语言的本层计数；空聚合返回全零，不报错。
// 子语言统计同样按类型合并到结果的 Children。
func (ls *Languages) Total() *Language {
	total := NewLanguage()
	for _, t := range ls.Types() {
		total.Merge(ls.entries[t].Summarise())
	}
	return total.Summarise()
}

// Files 返回每种语言的文件数，键为展示名。
func (ls *Languages) Files() map[string]int {
	files := make(map[string]int, len(ls.entries))
	for t, lang := range ls.entries {
		files[t.Name()] = lang.Files()
	}
	return files
}

// Merge 把另一个聚合并入当前对象。
func (ls *Languages) Merge(other *Languages) {
	if other == nil {
		return
	}
	for t, lang := range other.entries {
		ls.Entry(t).Merge(lang)
	}
}

// Sorted 按类别降序返回条目，相同取值时按名称升序。
// 每个语言内部的 Reports 也按同一类别排序。
func (ls *Languages) Sorted(category Sort) []LanguageEntry {
	entries := make([]LanguageEntry, 0, len(ls.entries))
	for _, t := range ls.Types() {
		lang := ls.entries[t]
		lang.SortBy(category)
		entries = append(entries, LanguageEntry{Type: t, Language: lang})
	}
	slices.SortStableFunc(entries, func(a, b LanguageEntry) int {
		return cmp.Compare(languageMetric(b.Language, category), languageMetric(a.Language, category))
	})
	return entries
}

// GetStatistics 委托 collector 采集并把结果并入当前聚合。
// 没有匹配文件时得到空聚合而不是错误；collector 返回错误时，
// 已采集的部分结果仍会被并入。
func (ls *Languages) GetStatistics(ctx context.Context, collector Collector, paths, excluded []string) error {
	partial, err := collector.Collect(ctx, paths, excluded)
	ls.Merge(partial)
	if err != nil {
		return fmt.Errorf("collect statistics: %w", err)
	}
	return nil
}

// LanguagesPlain 返回 {语言名: {files, lines, code, comments, blanks}}。
func (ls *Languages) LanguagesPlain() map[string]map[string]int {
	plain := make(map[string]map[string]int, len(ls.entries))
	for t, lang := range ls.entries {
		plain[t.Name()] = lang.Plain()
	}
	return plain
}

// TotalPlain 返回总计的扁平投影。
func (ls *Languages) TotalPlain() map[string]int {
	return ls.Total().Plain()
}

// ReportCompactPlain 返回 {语言名: {文件路径: 统计}}。
func (ls *Languages) ReportCompactPlain() map[string]map[string]PlainStats {
	plain := make(map[string]map[string]PlainStats, len(ls.entries))
	for t, lang := range ls.entries {
		plain[t.Name()] = lang.ReportsPlain()
	}
	return plain
}

// MarshalJSON 以语言展示名为键输出。
func (ls *Languages) MarshalJSON() ([]byte, error) {
	if ls.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(ls.entries)
}
