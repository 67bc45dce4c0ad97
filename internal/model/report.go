package model

import "fmt"

// Report 表示一个物理文件的统计结果。
// 由分类器为每个文件创建一次，之后只允许修正 Inaccurate 标记。
type Report struct {
	Name       string    `json:"name"`
	Stats      CodeStats `json:"stats"`
	Inaccurate bool      `json:"inaccurate,omitempty"`
}

// NewReport 以文件路径创建一个全零统计的报告。
func NewReport(name string) Report {
	return Report{
		Name:  name,
		Stats: NewCodeStats(),
	}
}

// Plain 返回以路径为键的扁平投影，仅用于数据交换。
func (r Report) Plain() map[string]PlainStats {
	return map[string]PlainStats{r.Name: r.Stats.Content()}
}

func (r Report) String() string {
	return fmt.Sprintf("Report(%q)", r.Name)
}
