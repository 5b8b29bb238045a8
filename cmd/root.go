// Package cmd 提供 qrscan 的命令行入口与子命令编排。
package cmd

import (
	"qrscan/internal/imaging"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := imaging.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *imaging.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrscan",
		Short: "批量识别图片中 QR 码的扫描工具",
		Long: "qrscan 是一个批量扫描工具，按固定批次并发识别目录中图片文件的 QR 码，\n" +
			"将成功识别的载荷逐行写入结果文件，并输出有序进度与聚合指标。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newFormatsCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))

	return rootCmd
}
