package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

// newLanguagesCmd 创建 languages 子命令，列出支持的语言及其后缀与文件名。
func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "languages",
		Aliases: []string{"language"},
		Short:   "列出支持的语言",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.Style().Options.DrawBorder = false
			tbl.Style().Options.SeparateColumns = false

			tbl.AppendHeader(table.Row{"LANGUAGE", "EXTENSIONS", "FILENAMES"})
			for _, lang := range languages.List() {
				tbl.AppendRow(table.Row{
					lang.Name(),
					strings.Join(lang.Extensions(), ", "),
					strings.Join(lang.FileNames(), ", "),
				})
			}
			tbl.Render()
			return nil
		},
	}
}

// newSortTypesCmd 列出 --sort 可用的类别。
func newSortTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort-types",
		Short: "列出可用的排序类别",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range model.SortTypes() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
