package model

import "testing"

// TestAccumulateInvariant 验证任意累加序列都保持 Successful+Failed==Total。
func TestAccumulateInvariant(t *testing.T) {
	outcomes := []Outcome{
		{Path: "a.png", Payload: "X", Found: true},
		{Path: "b.png", Found: false},
		{Path: "c.png", Payload: "Y", Found: true},
		{Path: "d.png", Found: false},
		{Path: "e.png", Payload: "Z", Found: true},
	}

	var metrics Metrics
	for i, outcome := range outcomes {
		metrics = metrics.Accumulate(outcome)
		if metrics.Successful+metrics.Failed != metrics.Total {
			t.Fatalf("invariant violated after outcome %d: %+v", i, metrics)
		}
		if metrics.Total != int64(i+1) {
			t.Fatalf("expected total %d, got %d", i+1, metrics.Total)
		}
	}

	if metrics != (Metrics{Total: 5, Successful: 3, Failed: 2}) {
		t.Fatalf("unexpected final metrics: %+v", metrics)
	}
}

// TestAccumulateIsPure 验证累加不会修改原值。
func TestAccumulateIsPure(t *testing.T) {
	base := Metrics{Total: 2, Successful: 1, Failed: 1}
	next := base.Accumulate(Outcome{Path: "a.png", Payload: "X", Found: true})

	if base != (Metrics{Total: 2, Successful: 1, Failed: 1}) {
		t.Fatalf("base metrics mutated: %+v", base)
	}
	if next != (Metrics{Total: 3, Successful: 2, Failed: 1}) {
		t.Fatalf("unexpected next metrics: %+v", next)
	}
}

// TestDelta 验证批次增量计算。
func TestDelta(t *testing.T) {
	before := Metrics{Total: 4, Successful: 2, Failed: 2}
	after := Metrics{Total: 7, Successful: 4, Failed: 3}

	delta := after.Delta(before)
	if delta != (Metrics{Total: 3, Successful: 2, Failed: 1}) {
		t.Fatalf("unexpected delta: %+v", delta)
	}
}

// TestSuccessRate 验证成功率计算及零输入保护。
func TestSuccessRate(t *testing.T) {
	cases := []struct {
		metrics Metrics
		want    float64
	}{
		{Metrics{}, 0},
		{Metrics{Total: 5, Successful: 3, Failed: 2}, 60},
		{Metrics{Total: 3, Successful: 3}, 100},
		{Metrics{Total: 3, Failed: 3}, 0},
	}

	for _, item := range cases {
		if got := item.metrics.SuccessRate(); got != item.want {
			t.Fatalf("SuccessRate(%+v) = %v, want %v", item.metrics, got, item.want)
		}
	}
}

// TestPayloadsPreserveOrder 验证载荷提取保序且静默排除未识别文件。
func TestPayloadsPreserveOrder(t *testing.T) {
	result := ScanResult{
		Outcomes: []Outcome{
			{Path: "a.png", Payload: "X", Found: true},
			{Path: "b.png", Found: false},
			{Path: "c.png", Payload: "Y", Found: true},
			{Path: "d.png", Found: false},
			{Path: "e.png", Payload: "Z", Found: true},
		},
		Metrics: Metrics{Total: 5, Successful: 3, Failed: 2},
	}

	payloads := result.Payloads()
	if len(payloads) != 3 {
		t.Fatalf("expected 3 payloads, got %d", len(payloads))
	}
	for i, want := range []string{"X", "Y", "Z"} {
		if payloads[i] != want {
			t.Fatalf("payload %d: got %q, want %q", i, payloads[i], want)
		}
	}
}
