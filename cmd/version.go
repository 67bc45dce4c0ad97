package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"gotokei/internal/languages"
)

// newVersionCmd 创建 version 子命令。
// 命令示例：gotokei version
func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示当前版本号",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gotokei version %s (%d languages, %s)\n", version, len(languages.List()), runtime.Version())
		},
	}
}
