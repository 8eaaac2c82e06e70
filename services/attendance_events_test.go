package services

import (
	"testing"
	"time"

	"hrm/models"
)

func record(id uint, in, out *time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:           id,
		WorkerID:     7,
		WorkerName:   "Nguyễn Văn An",
		ClockInTime:  in,
		ClockOutTime: out,
		Status:       models.AttendanceStatusApproved,
	}
}

func TestDeriveEvents_SortedDescending(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)

	events := DeriveEvents([]models.AttendanceRecord{
		record(1, timePtr(t1), nil),
		record(2, timePtr(t3), nil),
		record(3, timePtr(t2), nil),
	})

	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	wantOrder := []uint{2, 3, 1}
	for i, want := range wantOrder {
		if events[i].EventID != want {
			t.Errorf("events[%d].EventID = %d, want %d", i, events[i].EventID, want)
		}
	}
}

func TestDeriveEvents_EffectiveTimestampFallsBackToClockOut(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 17, 0, 0, 0, time.UTC)

	events := DeriveEvents([]models.AttendanceRecord{
		record(1, timePtr(t1), nil),
		record(2, nil, timePtr(t2)), // chỉ có giờ ra
	})

	if events[0].EventID != 2 {
		t.Errorf("first event = %d, want 2 (sorted by clock-out fallback)", events[0].EventID)
	}
}

func TestDeriveEvents_StableOnTiesAndInvalidRows(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	rows := []models.AttendanceRecord{
		record(10, timePtr(t1), nil),
		record(11, timePtr(t1), nil),
		record(12, nil, nil),
		record(13, nil, nil),
	}

	first := DeriveEvents(rows)
	second := DeriveEvents(rows)

	wantOrder := []uint{10, 11, 12, 13}
	for i, want := range wantOrder {
		if first[i].EventID != want {
			t.Errorf("first[%d].EventID = %d, want %d", i, first[i].EventID, want)
		}
		if second[i].EventID != first[i].EventID {
			t.Errorf("order not stable across derivations at index %d", i)
		}
	}
}

func TestDeriveEvents_DegenerateRow(t *testing.T) {
	events := DeriveEvents([]models.AttendanceRecord{record(5, nil, nil)})

	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	event := events[0]
	if event.HoursWorked != nil {
		t.Errorf("HoursWorked = %v, want nil", *event.HoursWorked)
	}
	if event.ClockInID != nil || event.ClockInTime != nil || event.ClockInStatus != "" {
		t.Error("clock-in sub-fields should be empty")
	}
	if event.ClockOutID != nil || event.ClockOutTime != nil || event.ClockOutStatus != "" {
		t.Error("clock-out sub-fields should be empty")
	}
}

func TestDeriveEvents_SingleRowCarriesBothSides(t *testing.T) {
	in := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)

	rec := record(9, timePtr(in), timePtr(out))
	rec.BreakMinutes = 30
	rec.ReasonText = "JOB_TYPE:0"

	events := DeriveEvents([]models.AttendanceRecord{rec})
	event := events[0]

	if event.ClockInID == nil || *event.ClockInID != 9 {
		t.Error("clock-in id should be the record id")
	}
	if event.ClockOutID == nil || *event.ClockOutID != 9 {
		t.Error("clock-out id should be the record id")
	}
	if event.ClockInReason != "JOB_TYPE:0" || event.ClockOutReason != "JOB_TYPE:0" {
		t.Error("reason text should be carried on both sides")
	}
	if event.HoursWorked == nil || *event.HoursWorked != 8.0 {
		t.Errorf("HoursWorked = %v, want 8.0", event.HoursWorked)
	}
	if event.IsHoursWorked {
		t.Error("IsHoursWorked should be false for a time-pair record")
	}
}

func TestDeriveEvents_LegacyReasonTextFallback(t *testing.T) {
	// Bản ghi cũ chưa có cột kiểu thật: metadata lấy từ ReasonText
	in := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 30*time.Minute)

	rec := record(20, timePtr(in), timePtr(out))
	rec.ReasonText = "JOB_TYPE:1|HOURS_WORKED:7.5"

	event := DeriveEvents([]models.AttendanceRecord{rec})[0]
	if !event.IsHoursWorked {
		t.Error("IsHoursWorked should be true from legacy reason text")
	}
	if event.HoursWorked == nil || *event.HoursWorked != 7.5 {
		t.Errorf("HoursWorked = %v, want 7.5", event.HoursWorked)
	}
	if event.JobType != "1" {
		t.Errorf("JobType = %q, want 1 (decoded from reason text)", event.JobType)
	}
}

func TestDeriveEvents_TypedColumnsBeatLegacyText(t *testing.T) {
	in := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	out := in.Add(6 * time.Hour)

	rec := record(21, timePtr(in), timePtr(out))
	rec.ReasonText = "JOB_TYPE:1|HOURS_WORKED:7.5"
	rec.JobType = "3"
	rec.HoursOverride = floatPtr(6)

	event := DeriveEvents([]models.AttendanceRecord{rec})[0]
	if event.JobType != "3" {
		t.Errorf("JobType = %q, want typed column value 3", event.JobType)
	}
	if event.HoursWorked == nil || *event.HoursWorked != 6 {
		t.Errorf("HoursWorked = %v, want 6 from typed column", event.HoursWorked)
	}
}

func TestDeriveEvents_BreakExceedsSpanFlag(t *testing.T) {
	in := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	out := in.Add(4 * time.Hour)

	rec := record(30, timePtr(in), timePtr(out))
	rec.BreakMinutes = 300

	event := DeriveEvents([]models.AttendanceRecord{rec})[0]
	if event.HoursWorked == nil || *event.HoursWorked != 0 {
		t.Errorf("HoursWorked = %v, want 0", event.HoursWorked)
	}
	if !event.BreakExceedsSpan {
		t.Error("BreakExceedsSpan should be true so payroll can tell 0h from no data")
	}
}
