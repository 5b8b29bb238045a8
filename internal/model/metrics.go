// Package model 定义 qrscan 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// Outcome 表示单文件扫描结果。
//
// 注意：
// - Found 为 false 时 Payload 必须为空字符串
// - Outcome 创建后不可修改，由所属批次产出并在批次完成后统一合并
type Outcome struct {
	Path    string
	Payload string
	Found   bool
}

// Metrics 表示一组聚合计数值。
// 全程保持不变式 Successful + Failed == Total。
type Metrics struct {
	Total      int64
	Successful int64
	Failed     int64
}

// Accumulate 把一个扫描结果叠加到当前计数并返回新值。
// 值语义设计：每次累加产生新 Metrics，不存在共享可变状态。
func (m Metrics) Accumulate(outcome Outcome) Metrics {
	m.Total++
	if outcome.Found {
		m.Successful++
	} else {
		m.Failed++
	}
	return m
}

// Delta 返回当前计数相对于 prev 的增量。
// 用于计算单个批次新贡献的成功/失败数量。
func (m Metrics) Delta(prev Metrics) Metrics {
	return Metrics{
		Total:      m.Total - prev.Total,
		Successful: m.Successful - prev.Successful,
		Failed:     m.Failed - prev.Failed,
	}
}

// SuccessRate 返回成功率百分比。
// Total 为 0 时直接返回 0，避免除零。
func (m Metrics) SuccessRate() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Successful) / float64(m.Total) * 100
}

// ScanResult 是 scan 命令的完整输出模型。
// Outcomes 严格按原始文件顺序排列，在全部批次完成后定型。
type ScanResult struct {
	ScannedDir string
	Outcomes   []Outcome
	Metrics    Metrics
}

// Payloads 返回全部成功识别的载荷，保持原始文件顺序。
// 未识别的文件被静默排除，不会产生空行或占位符。
func (r ScanResult) Payloads() []string {
	payloads := make([]string, 0, r.Metrics.Successful)
	for _, outcome := range r.Outcomes {
		if outcome.Found {
			payloads = append(payloads, outcome.Payload)
		}
	}
	return payloads
}
