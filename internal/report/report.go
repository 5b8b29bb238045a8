// Package report 提供 qrscan 的输出能力。
// 包含进度行/汇总块的控制台格式化，以及识别结果文件的落盘。
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qrscan/internal/model"
)

// displayWidth 是进度行的目标显示宽度，文件名右对齐到这一列。
const displayWidth = 80

// minGap 是状态文本与文件名之间的最小间隔。
// 文件名过长导致计算出的填充为负时，一律收缩到该下限，不截断文件名。
const minGap = 2

// 单文件状态文本。
const (
	statusSuccess  = "Success"
	statusNotFound = "No QR code found"
)

// ANSI 色彩序列。着色永远在纯文本填充完成之后套上，
// 避免转义字节参与 80 列对齐计算。
const (
	ansiGreen  = "\033[0;32m"
	ansiYellow = "\033[1;33m"
	ansiReset  = "\033[0m"
)

// Reporter 把进度与汇总信息写入监控流。
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter 创建 Reporter。
// color 决定状态文本是否带 ANSI 色彩（由调用方根据 TTY 与配置判定）。
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{
		out:   out,
		color: color,
	}
}

// Header 输出批量扫描的起始信息。
func (r *Reporter) Header(dir string, total int, workers int) {
	fmt.Fprintf(r.out, "Scanning %d files in %s (workers: %d)\n\n", total, dir, workers)
}

// FileLine 输出单文件进度行。
// 格式：`(index/total) <状态>` + 填充 + 文件名，文件名右对齐到第 80 列。
func (r *Reporter) FileLine(index int, total int, name string, found bool) {
	status := statusNotFound
	if found {
		status = statusSuccess
	}

	prefix := fmt.Sprintf("(%d/%d) %s", index, total, status)
	gap := displayWidth - len(prefix) - len(name)
	if gap < minGap {
		gap = minGap
	}

	fmt.Fprintf(r.out, "%s%s%s\n", r.colorize(prefix, found), strings.Repeat(" ", gap), name)
}

// BatchLine 输出单批次汇总行。
func (r *Reporter) BatchLine(batch int, batches int, delta model.Metrics) {
	fmt.Fprintf(r.out, "Batch %d/%d done: %d successful, %d failed\n\n",
		batch, batches, delta.Successful, delta.Failed)
}

// Summary 输出最终汇总块。
// 成功率保留两位小数；Total 为 0 时 SuccessRate 自身保证不除零。
func (r *Reporter) Summary(metrics model.Metrics, elapsed time.Duration, outputPath string) {
	if metrics.Total == 0 {
		fmt.Fprintln(r.out, "No image files found")
	}

	fmt.Fprintf(r.out, "Processed %d files: %d successful, %d failed\n",
		metrics.Total, metrics.Successful, metrics.Failed)
	fmt.Fprintf(r.out, "Success rate: %.2f%%\n", metrics.SuccessRate())
	fmt.Fprintf(r.out, "Elapsed: %.2fs\n", elapsed.Seconds())
	fmt.Fprintf(r.out, "Results written to %s\n", outputPath)
}

// colorize 为状态前缀套上 ANSI 色彩。
func (r *Reporter) colorize(text string, found bool) string {
	if !r.color {
		return text
	}
	if found {
		return ansiGreen + text + ansiReset
	}
	return ansiYellow + text + ansiReset
}

// WriteResults 把识别结果落盘到指定路径。
// 只写入成功识别的载荷，按原始文件序以换行连接，整体覆盖写入。
// 如果目录不存在会自动创建。
func WriteResults(path string, result model.ScanResult) error {
	content := strings.Join(result.Payloads(), "\n")

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, []byte(content), 0o644); writeErr != nil {
		return fmt.Errorf("write results file: %w", writeErr)
	}
	return nil
}
