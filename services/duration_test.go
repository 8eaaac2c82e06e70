package services

import (
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time { return &t }
func floatPtr(v float64) *float64    { return &v }
func mustAt(h, m int) time.Time      { return time.Date(2024, 3, 1, h, m, 0, 0, time.UTC) }

func TestComputeWorkedHours_InstantDiff(t *testing.T) {
	// 08:00 → 16:30, nghỉ 30 phút = 8.0 giờ
	in := mustAt(8, 0)
	out := mustAt(16, 30)

	hours, clamped := ComputeWorkedHours(timePtr(in), timePtr(out), nil, 30)
	if hours == nil {
		t.Fatal("hours = nil, want 8.0")
	}
	if *hours != 8.0 {
		t.Errorf("hours = %v, want 8.0", *hours)
	}
	if clamped {
		t.Error("breakExceedsSpan should be false")
	}
}

func TestComputeWorkedHours_NoBreak(t *testing.T) {
	in := mustAt(9, 0)
	out := mustAt(17, 15)

	hours, _ := ComputeWorkedHours(timePtr(in), timePtr(out), nil, 0)
	if hours == nil || *hours != 8.25 {
		t.Errorf("hours = %v, want 8.25", hours)
	}
}

func TestComputeWorkedHours_OverridePriority(t *testing.T) {
	// Override được tin hơn hiệu hai mốc giờ: giờ ra lúc này chỉ là bản
	// sao tổng hợp
	in := mustAt(0, 0)
	out := mustAt(7, 30)

	hours, _ := ComputeWorkedHours(timePtr(in), timePtr(out), floatPtr(7.5), 0)
	if hours == nil || *hours != 7.5 {
		t.Errorf("hours = %v, want 7.5", hours)
	}

	hours, _ = ComputeWorkedHours(timePtr(in), timePtr(out), floatPtr(6), 30)
	if hours == nil || *hours != 5.5 {
		t.Errorf("override with break: hours = %v, want 5.5", hours)
	}
}

func TestComputeWorkedHours_OverrideWithoutInstants(t *testing.T) {
	// Override chỉ có hiệu lực khi bản ghi có đủ cặp giờ vào/ra
	hours, _ := ComputeWorkedHours(nil, nil, floatPtr(7.5), 0)
	if hours != nil {
		t.Errorf("hours = %v, want nil without instants", *hours)
	}
}

func TestComputeWorkedHours_BreakExceedsSpan(t *testing.T) {
	// Phiên 4 tiếng, nghỉ 300 phút: ra 0 giờ kèm cờ, không bao giờ âm
	in := mustAt(8, 0)
	out := mustAt(12, 0)

	hours, clamped := ComputeWorkedHours(timePtr(in), timePtr(out), nil, 300)
	if hours == nil {
		t.Fatal("hours = nil, want 0")
	}
	if *hours != 0 {
		t.Errorf("hours = %v, want 0", *hours)
	}
	if !clamped {
		t.Error("breakExceedsSpan should be true")
	}
}

func TestComputeWorkedHours_OutBeforeIn(t *testing.T) {
	// Bản ghi hỏng từ thiết bị lệch giờ: giờ ra trước giờ vào. Kết quả chặn
	// tại 0, không bao giờ trả số giờ âm.
	in := mustAt(16, 0)
	out := mustAt(8, 0)

	hours, clamped := ComputeWorkedHours(timePtr(in), timePtr(out), nil, 0)
	if hours == nil {
		t.Fatal("hours = nil, want 0")
	}
	if *hours != 0 {
		t.Errorf("hours = %v, want 0", *hours)
	}
	if clamped {
		t.Error("breakExceedsSpan should stay false for a malformed pair")
	}

	hours, _ = ComputeWorkedHours(timePtr(in), timePtr(out), nil, 60)
	if hours == nil || *hours != 0 {
		t.Errorf("malformed pair with break: hours = %v, want 0", hours)
	}
}

func TestComputeWorkedHours_MissingInstants(t *testing.T) {
	in := mustAt(8, 0)

	if hours, _ := ComputeWorkedHours(timePtr(in), nil, nil, 0); hours != nil {
		t.Errorf("open session: hours = %v, want nil", *hours)
	}
	if hours, _ := ComputeWorkedHours(nil, timePtr(in), nil, 0); hours != nil {
		t.Errorf("out-only session: hours = %v, want nil", *hours)
	}
	if hours, _ := ComputeWorkedHours(nil, nil, nil, 60); hours != nil {
		t.Errorf("degenerate session: hours = %v, want nil", *hours)
	}
}
