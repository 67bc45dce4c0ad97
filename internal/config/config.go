// Package config 定义扫描选项及其来源（配置文件、环境变量、命令行）。
//
// 所有选项都是可选的：指针为 nil 表示未设置，由下游使用默认值。
// 多个来源按 Override 叠加，后者已设置的字段覆盖前者。
package config

import (
	"errors"
	"fmt"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

// ErrInvalidColumns 表示列宽不是正整数。
var ErrInvalidColumns = errors.New("columns must be positive")

// Config 对应 tokei.toml / .tokeirc 中的键。
type Config struct {
	// Columns 是表格输出宽度，仅影响展示。
	Columns *int `mapstructure:"columns"`
	// Hidden 为 true 时统计以点开头的文件与目录。
	Hidden *bool `mapstructure:"hidden"`
	// NoIgnore 为 true 时忽略全部 ignore 文件。
	NoIgnore *bool `mapstructure:"no_ignore"`
	// NoIgnoreParent 为 true 时不读取扫描根之上目录的 ignore 文件。
	NoIgnoreParent *bool `mapstructure:"no_ignore_parent"`
	// NoIgnoreDot 为 true 时不读取 .ignore / .tokeignore。
	NoIgnoreDot *bool `mapstructure:"no_ignore_dot"`
	// NoIgnoreVCS 为 true 时不读取 .gitignore 与 .git/info/exclude。
	NoIgnoreVCS               *bool   `mapstructure:"no_ignore_vcs"`
	TreatDocStringsAsComments *bool   `mapstructure:"treat_doc_strings_as_comments"`
	Sort                      *string `mapstructure:"sort"`
	// Types 非空时只统计这些语言（展示名或常见别名）。
	Types []string `mapstructure:"types"`
}

// Default 返回全部未设置的配置。
func Default() Config {
	return Config{}
}

// Override 返回合并结果：other 中已设置的字段覆盖 c。
func (c Config) Override(other Config) Config {
	merged := c
	if other.Columns != nil {
		merged.Columns = other.Columns
	}
	if other.Hidden != nil {
		merged.Hidden = other.Hidden
	}
	if other.NoIgnore != nil {
		merged.NoIgnore = other.NoIgnore
	}
	if other.NoIgnoreParent != nil {
		merged.NoIgnoreParent = other.NoIgnoreParent
	}
	if other.NoIgnoreDot != nil {
		merged.NoIgnoreDot = other.NoIgnoreDot
	}
	if other.NoIgnoreVCS != nil {
		merged.NoIgnoreVCS = other.NoIgnoreVCS
	}
	if other.TreatDocStringsAsComments != nil {
		merged.TreatDocStringsAsComments = other.TreatDocStringsAsComments
	}
	if other.Sort != nil {
		merged.Sort = other.Sort
	}
	if len(other.Types) > 0 {
		merged.Types = append([]string(nil), other.Types...)
	}
	return merged
}

// Validate 检查已设置字段的取值。
func (c Config) Validate() error {
	if c.Columns != nil && *c.Columns <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidColumns, *c.Columns)
	}
	if _, _, err := c.SortCategory(); err != nil {
		return err
	}
	if _, err := c.LanguageTypes(); err != nil {
		return err
	}
	return nil
}

// ColumnWidth 返回列宽，未设置时为 0（不限制）。
func (c Config) ColumnWidth() int {
	if c.Columns == nil {
		return 0
	}
	return *c.Columns
}

// IsHidden 表示是否统计隐藏文件，默认 false。
func (c Config) IsHidden() bool {
	return boolValue(c.Hidden)
}

// IgnoreAll 表示完全不读取 ignore 文件。
func (c Config) IgnoreAll() bool {
	return boolValue(c.NoIgnore)
}

// SkipParentIgnores 表示不读取扫描根之上的 ignore 文件。
func (c Config) SkipParentIgnores() bool {
	return c.IgnoreAll() || boolValue(c.NoIgnoreParent)
}

// SkipDotIgnores 表示不读取 .ignore / .tokeignore。
func (c Config) SkipDotIgnores() bool {
	return c.IgnoreAll() || boolValue(c.NoIgnoreDot)
}

// SkipVCSIgnores 表示不读取 .gitignore 与 .git/info/exclude。
func (c Config) SkipVCSIgnores() bool {
	return c.IgnoreAll() || boolValue(c.NoIgnoreVCS)
}

// DocStringsAsComments 默认 false：文档字符串计为代码。
func (c Config) DocStringsAsComments() bool {
	return boolValue(c.TreatDocStringsAsComments)
}

// SortCategory 解析排序类别；未设置时 ok 为 false。
func (c Config) SortCategory() (sort model.Sort, ok bool, err error) {
	if c.Sort == nil || *c.Sort == "" {
		return 0, false, nil
	}
	sort, err = model.ParseSort(*c.Sort)
	if err != nil {
		return 0, false, err
	}
	return sort, true, nil
}

// LanguageTypes 把 Types 解析为语言集合；未知名称返回 languages.ErrUnknownLanguage。
func (c Config) LanguageTypes() ([]languages.LanguageType, error) {
	types := make([]languages.LanguageType, 0, len(c.Types))
	for _, name := range c.Types {
		lang, ok := languages.Lookup(name)
		if !ok {
			return nil, &languages.UnknownLanguageError{Name: name}
		}
		types = append(types, lang)
	}
	return types, nil
}

func boolValue(v *bool) bool {
	return v != nil && *v
}
