package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"gotokei/internal/config"
	"gotokei/internal/model"
	"gotokei/internal/report"
	"gotokei/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format     string
	outputFile string
	metrics    string
	workers    int
	files      bool
	exclude    []string

	// 以下字段只有在命令行显式给出时才覆盖配置文件。
	columns              int
	sort                 string
	types                []string
	hidden               bool
	noIgnore             bool
	noIgnoreParent       bool
	noIgnoreDot          bool
	noIgnoreVCS          bool
	docStringsAsComments bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	gotokei scan .
//	gotokei scan ./src ./lib --sort code --files
//	gotokei scan . --output json --output-file out/result.json
func newScanCmd(state *app) *cobra.Command {
	options := scanOptions{
		format:  string(report.FormatTable),
		workers: runtime.NumCPU(),
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "扫描目录或文件并输出按语言汇总的行数统计",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runScan(cmd, state, options, args)
		},
	}

	flags := scanCmd.Flags()
	flags.StringVarP(&options.format, "output", "o", options.format, "输出格式: table, json 或 yaml")
	flags.StringVar(&options.outputFile, "output-file", "", "把结果写入文件而不是标准输出")
	flags.StringVar(&options.metrics, "metrics", "", "把扫描指标以 Prometheus 文本格式写入该文件")
	flags.IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	flags.BoolVarP(&options.files, "files", "f", false, "输出逐文件统计")
	flags.StringSliceVarP(&options.exclude, "exclude", "e", nil, "排除匹配的路径（glob 或路径片段），可重复")

	flags.IntVarP(&options.columns, "columns", "c", 0, "表格输出宽度")
	flags.StringVarP(&options.sort, "sort", "s", "", "排序类别: "+strings.Join(model.SortTypes(), ", "))
	flags.StringSliceVarP(&options.types, "type", "t", nil, "只统计这些语言，可重复或以逗号分隔")
	flags.BoolVar(&options.hidden, "hidden", false, "统计隐藏文件与目录")
	flags.BoolVar(&options.noIgnore, "no-ignore", false, "不读取任何 ignore 文件")
	flags.BoolVar(&options.noIgnoreParent, "no-ignore-parent", false, "不读取扫描根之上目录的 ignore 文件")
	flags.BoolVar(&options.noIgnoreDot, "no-ignore-dot", false, "不读取 .ignore / .tokeignore")
	flags.BoolVar(&options.noIgnoreVCS, "no-ignore-vcs", false, "不读取 .gitignore 与 .git/info/exclude")
	flags.BoolVar(&options.docStringsAsComments, "doc-strings-as-comments", false, "把文档字符串计为注释")

	return scanCmd
}

// cliConfig 只收集显式设置的命令行参数，保证未给出的参数不会覆盖配置文件。
func cliConfig(cmd *cobra.Command, options scanOptions) config.Config {
	flags := cmd.Flags()
	cfg := config.Default()

	if flags.Changed("columns") {
		cfg.Columns = &options.columns
	}
	if flags.Changed("sort") {
		cfg.Sort = &options.sort
	}
	if flags.Changed("type") {
		cfg.Types = options.types
	}

	bools := []struct {
		flag   string
		value  *bool
		target **bool
	}{
		{flag: "hidden", value: &options.hidden, target: &cfg.Hidden},
		{flag: "no-ignore", value: &options.noIgnore, target: &cfg.NoIgnore},
		{flag: "no-ignore-parent", value: &options.noIgnoreParent, target: &cfg.NoIgnoreParent},
		{flag: "no-ignore-dot", value: &options.noIgnoreDot, target: &cfg.NoIgnoreDot},
		{flag: "no-ignore-vcs", value: &options.noIgnoreVCS, target: &cfg.NoIgnoreVCS},
		{flag: "doc-strings-as-comments", value: &options.docStringsAsComments, target: &cfg.TreatDocStringsAsComments},
	}
	for _, b := range bools {
		if flags.Changed(b.flag) {
			*b.target = b.value
		}
	}
	return cfg
}

func runScan(cmd *cobra.Command, state *app, options scanOptions, paths []string) error {
	if options.workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	format, err := report.ParseFormat(options.format)
	if err != nil {
		return err
	}

	cfg := state.cfg.Override(cliConfig(cmd, options))
	if err := cfg.Validate(); err != nil {
		return err
	}
	sortCategory, sorted, err := cfg.SortCategory()
	if err != nil {
		return err
	}

	serviceOptions := []scanner.Option{
		scanner.WithWorkers(options.workers),
		scanner.WithLogger(state.logger),
	}
	registry := prometheus.NewRegistry()
	if options.metrics != "" {
		serviceOptions = append(serviceOptions, scanner.WithRegisterer(registry))
	}

	service, err := scanner.NewService(cfg, serviceOptions...)
	if err != nil {
		return err
	}

	result, err := service.Scan(cmd.Context(), paths, options.exclude)
	if err != nil {
		return err
	}
	state.logger.Info("scan finished",
		slog.Int("languages", result.Languages.Len()),
		slog.Int("errors", len(result.Errors)),
	)

	printOptions := report.Options{Files: options.files, Columns: cfg.ColumnWidth()}
	if sorted {
		printOptions.Sort = &sortCategory
	}

	if options.outputFile != "" {
		if err := report.WriteFile(options.outputFile, format, result, printOptions); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s exported to %s\n", strings.ToUpper(string(format)), options.outputFile)
	} else if err := report.Print(cmd.OutOrStdout(), format, result, printOptions); err != nil {
		return err
	}

	if options.metrics != "" {
		if err := report.WriteMetricsFile(options.metrics, registry); err != nil {
			return err
		}
	}
	return nil
}
