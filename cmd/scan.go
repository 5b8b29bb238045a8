package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"qrscan/internal/config"
	"qrscan/internal/imaging"
	"qrscan/internal/qr"
	"qrscan/internal/report"
	"qrscan/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	configPath string
	output     string
	workers    int
	color      string
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	qrscan scan
//	qrscan scan ./tickets --output codes.txt --workers 4
func newScanCmd(registry *imaging.Registry) *cobra.Command {
	options := scanOptions{}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "批量扫描目录中的图片并识别 QR 码",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args, options)
			if err != nil {
				return err
			}

			// 目录不可读属于 setup 失败，直接以错误返回让进程非零退出。
			files, err := scanner.ListImages(cfg.InputDir, registry)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			colorEnabled := cfg.ColorEnabled(isatty.IsTerminal(os.Stdout.Fd()))
			reporter := report.NewReporter(cmd.OutOrStdout(), colorEnabled)
			service := scanner.NewService(qr.NewDecoder(registry, logger), reporter, cfg.Workers)

			reporter.Header(cfg.InputDir, len(files), cfg.Workers)

			start := time.Now()
			result := service.ScanFiles(files)
			result.ScannedDir = cfg.InputDir

			// 结果文件是本次运行的交付物，写入失败同样是致命错误。
			if err := report.WriteResults(cfg.Output, result); err != nil {
				return err
			}

			reporter.Summary(result.Metrics, time.Since(start), cfg.Output)
			return nil
		},
	}

	scanCmd.Flags().StringVar(&options.configPath, "config", "", "TOML 配置文件路径，省略时使用内置默认值")
	scanCmd.Flags().StringVar(&options.output, "output", "", "识别结果文件路径，默认 qr_results.txt")
	scanCmd.Flags().IntVar(&options.workers, "workers", 0, "批次内并发度，默认为 CPU 数减一")
	scanCmd.Flags().StringVar(&options.color, "color", "", "状态行着色: auto、always 或 never")

	return scanCmd
}

// resolveConfig 按「标志 > 配置文件 > 默认值」的优先级合成最终配置。
func resolveConfig(cmd *cobra.Command, args []string, options scanOptions) (config.Config, error) {
	cfg := config.Default()

	if options.configPath != "" {
		loaded, err := config.Load(options.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = options.output
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = options.workers
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = options.color
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
