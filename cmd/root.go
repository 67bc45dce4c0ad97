// Package cmd 提供 gotokei 的命令行入口与子命令编排。
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gotokei/internal/config"
	"gotokei/internal/logger"
)

// app 保存根命令解析出的共享状态，供子命令使用。
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg    config.Config
	logger *slog.Logger
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
// 收到中断信号时取消扫描。
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd(version).ExecuteContext(ctx)
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	defaults := logger.DefaultConfig()
	state := &app{
		logLevel:  strings.ToLower(defaults.Level.String()),
		logFormat: defaults.Format,
	}

	rootCmd := &cobra.Command{
		Use:   "gotokei",
		Short: "统计代码、注释与空行",
		Long: "gotokei 按语言统计源码中的 code/comments/blanks 行数，\n" +
			"识别 HTML/Markdown/Jupyter 中内嵌的其他语言，支持并发扫描与 JSON/YAML 导出。",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "配置文件路径，默认读取 tokei.toml / .tokeirc")
	flags.StringVar(&state.logLevel, "log-level", state.logLevel, "日志级别: debug, info, warn, error")
	flags.StringVar(&state.logFormat, "log-format", state.logFormat, "日志格式: text 或 json")
	flags.BoolVar(&state.noColor, "no-color", false, "禁用彩色输出")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newSortTypesCmd())
	rootCmd.AddCommand(newScanCmd(state))

	return rootCmd
}

// setup 初始化日志并加载配置。显式 --config 优先于默认搜索路径。
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true
	}

	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{Level: level, Format: strings.ToLower(a.logFormat)}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = log

	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.FromConfigFiles()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.logger.Debug("config loaded", slog.String("path", a.configPath), slog.Any("types", a.cfg.Types))
	return nil
}
