// Package model 定义 gotokei 的统计聚合模型。
//
// 层级自底向上为 CodeStats（单个 blob 的行计数）→ Report（单个文件）
// → Language（同一语言的全部文件）→ Languages（一次扫描的根聚合）。
// 所有合并操作都满足结合律与交换律，因此并发采集的结果可以按任意顺序归并。
package model

import (
	"fmt"
	"maps"

	"gotokei/internal/languages"
)

// CodeStats 表示一个 blob 的行统计。
//
// 注意：
// - Blanks/Code/Comments 只统计本层，不含 Blobs
// - Blobs 记录同一文件内嵌语言区域（例如 HTML 中的 <script>）的统计
type CodeStats struct {
	Blanks   int                                  `json:"blanks"`
	Code     int                                  `json:"code"`
	Comments int                                  `json:"comments"`
	Blobs    map[languages.LanguageType]CodeStats `json:"blobs"`
}

// NewCodeStats 返回全零且 Blobs 为空 map 的统计。
func NewCodeStats() CodeStats {
	return CodeStats{Blobs: make(map[languages.LanguageType]CodeStats)}
}

// Lines 返回本层的总行数，不含嵌套 blob。
func (s CodeStats) Lines() int {
	return s.Blanks + s.Code + s.Comments
}

// Summarise 返回一个新值：把所有嵌套 blob（递归）折叠进本层计数并清空 Blobs。
// 对已经 summarise 过的值再次调用不会产生变化。
func (s CodeStats) Summarise() CodeStats {
	summary := CodeStats{
		Blanks:   s.Blanks,
		Code:     s.Code,
		Comments: s.Comments,
		Blobs:    make(map[languages.LanguageType]CodeStats),
	}

	for _, blob := range s.Blobs {
		child := blob.Summarise()
		summary.Blanks += child.Blanks
		summary.Code += child.Code
		summary.Comments += child.Comments
	}
	return summary
}

// Add 将 other 叠加到当前对象，同一语言的 blob 递归合并。
func (s *CodeStats) Add(other CodeStats) {
	s.Blanks += other.Blanks
	s.Code += other.Code
	s.Comments += other.Comments

	if len(other.Blobs) == 0 {
		return
	}
	if s.Blobs == nil {
		s.Blobs = make(map[languages.LanguageType]CodeStats, len(other.Blobs))
	}
	for lang, blob := range other.Blobs {
		merged := s.Blobs[lang].Clone()
		merged.Add(blob)
		s.Blobs[lang] = merged
	}
}

// AddBlob 把一段内嵌语言统计合并进 Blobs。
func (s *CodeStats) AddBlob(lang languages.LanguageType, blob CodeStats) {
	s.Add(CodeStats{Blobs: map[languages.LanguageType]CodeStats{lang: blob}})
}

// Clone 深拷贝，避免多个 Report 共享同一个 Blobs map。
func (s CodeStats) Clone() CodeStats {
	clone := CodeStats{
		Blanks:   s.Blanks,
		Code:     s.Code,
		Comments: s.Comments,
		Blobs:    make(map[languages.LanguageType]CodeStats, len(s.Blobs)),
	}
	for lang, blob := range s.Blobs {
		clone.Blobs[lang] = blob.Clone()
	}
	return clone
}

// Equal 比较计数与嵌套 blob；nil 与空 Blobs 视为相同。
func (s CodeStats) Equal(other CodeStats) bool {
	if s.Blanks != other.Blanks || s.Code != other.Code || s.Comments != other.Comments {
		return false
	}
	return maps.EqualFunc(s.Blobs, other.Blobs, CodeStats.Equal)
}

// Content 返回扁平化的 {blanks, code, comments, lines} 投影。
func (s CodeStats) Content() PlainStats {
	return PlainStats{
		Blanks:   s.Blanks,
		Code:     s.Code,
		Comments: s.Comments,
		Lines:    s.Lines(),
	}
}

func (s CodeStats) String() string {
	return fmt.Sprintf("CodeStats(blanks: %d, code: %d, comments: %d, lines: %d)",
		s.Blanks, s.Code, s.Comments, s.Lines())
}

// PlainStats 是面向外部消费者的扁平统计投影。
type PlainStats struct {
	Lines    int `json:"lines" yaml:"lines"`
	Code     int `json:"code" yaml:"code"`
	Comments int `json:"comments" yaml:"comments"`
	Blanks   int `json:"blanks" yaml:"blanks"`
}
