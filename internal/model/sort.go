package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownSortCategory 表示无法识别的排序类别名称。
var ErrUnknownSortCategory = errors.New("unknown sort category")

// Sort 是展示层使用的排序策略。
type Sort int

const (
	SortBlanks Sort = iota
	SortComments
	SortCode
	SortFiles
	SortLines
)

var sortNames = [...]string{
	SortBlanks:   "Blanks",
	SortComments: "Comments",
	SortCode:     "Code",
	SortFiles:    "Files",
	SortLines:    "Lines",
}

// SortTypes 返回全部规范类别名称。
func SortTypes() []string {
	return slices.Clone(sortNames[:])
}

// ParseSort 解析类别名称，大小写不敏感（"lines" 与 "Lines" 等价）。
// 无法识别时返回 ErrUnknownSortCategory，不做默认回落。
func ParseSort(name string) (Sort, error) {
	for category, canonical := range sortNames {
		if strings.EqualFold(strings.TrimSpace(name), canonical) {
			return Sort(category), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortCategory, name)
}

func (s Sort) String() string {
	if s < 0 || int(s) >= len(sortNames) {
		return fmt.Sprintf("Sort(%d)", int(s))
	}
	return sortNames[s]
}

// MarshalText 以规范名称序列化。
func (s Sort) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sortNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortCategory, int(s))
	}
	return []byte(sortNames[s]), nil
}

// UnmarshalText 通过 ParseSort 反序列化。
func (s *Sort) UnmarshalText(text []byte) error {
	parsed, err := ParseSort(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// reportMetric 返回报告在某个数值类别上的取值。
func reportMetric(r Report, s Sort) int {
	switch s {
	case SortBlanks:
		return r.Stats.Blanks
	case SortComments:
		return r.Stats.Comments
	case SortCode:
		return r.Stats.Code
	case SortLines:
		return r.Stats.Lines()
	default:
		return 0
	}
}

// sortReports 稳定排序：数值类别按降序；Files 类别下每个报告恰好是一个文件，
// 因此按路径升序排列。
func sortReports(reports []Report, s Sort) {
	if s == SortFiles {
		slices.SortStableFunc(reports, func(a, b Report) int {
			return cmp.Compare(a.Name, b.Name)
		})
		return
	}

	slices.SortStableFunc(reports, func(a, b Report) int {
		return cmp.Compare(reportMetric(b, s), reportMetric(a, s))
	})
}

// languageMetric 返回语言聚合在某个类别上的取值。
func languageMetric(l *Language, s Sort) int {
	switch s {
	case SortBlanks:
		return l.Blanks
	case SortComments:
		return l.Comments
	case SortCode:
		return l.Code
	case SortFiles:
		return l.Files()
	case SortLines:
		return l.Lines()
	default:
		return 0
	}
}
