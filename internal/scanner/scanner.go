// Package scanner 提供批次化并发扫描调度能力。
// 该层负责目录枚举、批次切分、并发执行和指标聚合，不负责图片与 QR 解码细节。
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"qrscan/internal/model"
)

// Decoder 定义单文件识别能力。
// 实现必须可并发调用，且永远不返回错误（失败即 found=false）。
type Decoder interface {
	Decode(path string) (payload string, found bool)
}

// Reporter 定义进度输出能力。
// 所有回调都由调度 goroutine 在批次边界串行触发，实现无需加锁。
type Reporter interface {
	// FileLine 输出单文件进度行，index 从 1 开始。
	FileLine(index int, total int, name string, found bool)
	// BatchLine 输出单批次汇总行，delta 是该批次新贡献的计数。
	BatchLine(batch int, batches int, delta model.Metrics)
}

// Filter 定义文件枚举时的后缀过滤能力。
type Filter interface {
	Recognized(path string) bool
}

// Service 是扫描调度服务对象。
type Service struct {
	decoder  Decoder
	reporter Reporter
	workers  int
}

// DefaultWorkers 返回默认并发度：可用 CPU 数减一，至少为 1。
// 留出一个核给调度与 I/O，避免解码把机器吃满。
func DefaultWorkers() int {
	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}
	return workers
}

// NewService 创建扫描调度服务。
func NewService(decoder Decoder, reporter Reporter, workers int) *Service {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Service{
		decoder:  decoder,
		reporter: reporter,
		workers:  workers,
	}
}

// ListImages 枚举目录下受支持的图片文件。
// 只看目录第一层，不递归子目录；返回顺序即 os.ReadDir 的目录序，
// 该顺序是后续批次切分与结果输出的规范顺序。
func ListImages(dir string, filter Filter) ([]string, error) {
	trimmedDir := strings.TrimSpace(dir)
	if trimmedDir == "" {
		return nil, errors.New("input directory is empty")
	}

	entries, err := os.ReadDir(trimmedDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(trimmedDir, entry.Name())
		if filter.Recognized(path) {
			files = append(files, path)
		}
	}
	return files, nil
}

// ScanFiles 按批次扫描全部文件并返回聚合结果。
//
// 调度模型：
// 1. 输入列表按 workers 大小切成连续批次，末批可以更短
// 2. 批次之间严格串行，批次内部并发执行，峰值并发恰好受 workers 约束
// 3. 批次完成后按原始文件序恢复结果顺序，再串行折叠指标并输出进度
//
// 单文件识别失败只计入 Failed，不会中断批次或整次运行。
func (s *Service) ScanFiles(files []string) model.ScanResult {
	result := model.ScanResult{
		Outcomes: make([]model.Outcome, 0, len(files)),
	}

	total := len(files)
	if total == 0 {
		return result
	}

	batches := (total + s.workers - 1) / s.workers

	for batch := 0; batch < batches; batch++ {
		start := batch * s.workers
		end := start + s.workers
		if end > total {
			end = total
		}

		outcomes := s.runBatch(files[start:end])

		// 指标折叠和进度输出只发生在这里：单一调度 goroutine、
		// 批次边界串行执行，因此全程无锁。
		before := result.Metrics
		for i, outcome := range outcomes {
			result.Metrics = result.Metrics.Accumulate(outcome)
			result.Outcomes = append(result.Outcomes, outcome)
			if s.reporter != nil {
				s.reporter.FileLine(start+i+1, total, filepath.Base(outcome.Path), outcome.Found)
			}
		}
		if s.reporter != nil {
			s.reporter.BatchLine(batch+1, batches, result.Metrics.Delta(before))
		}
	}

	return result
}

// runBatch 并发执行一个批次的全部识别任务。
// 结果按输入下标写入预分配切片，完成顺序不确定但返回顺序恒定。
func (s *Service) runBatch(batch []string) []model.Outcome {
	outcomes := make([]model.Outcome, len(batch))

	var group sync.WaitGroup
	for i, path := range batch {
		group.Add(1)
		go func() {
			defer group.Done()
			payload, found := s.decoder.Decode(path)
			outcomes[i] = model.Outcome{
				Path:    path,
				Payload: payload,
				Found:   found,
			}
		}()
	}
	group.Wait()

	return outcomes
}
