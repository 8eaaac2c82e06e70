package services

import (
	"sort"
	"time"

	"hrm/dto"
	"hrm/models"
)

// DeriveEvents dựng danh sách sự kiện chấm công từ ảnh chụp bản ghi gốc.
// Hàm thuần, không chạm storage và không bao giờ lỗi: bản ghi thiếu cả hai
// mốc giờ vẫn ra một sự kiện với HoursWorked nil và hai nhóm trường vào/ra
// để trống.
//
// Kết quả sắp xếp giảm dần theo mốc hiệu lực (giờ vào nếu có, không thì giờ
// ra, không có gì thì coi như sớm nhất). Sắp xếp ổn định: các bản ghi trùng
// mốc hoặc không có mốc giữ nguyên thứ tự đầu vào giữa các lần dẫn xuất.
func DeriveEvents(records []models.AttendanceRecord) []dto.AttendanceEvent {
	events := make([]dto.AttendanceEvent, 0, len(records))
	for _, record := range records {
		events = append(events, deriveEvent(record))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return effectiveTime(events[i]).After(effectiveTime(events[j]))
	})
	return events
}

func deriveEvent(record models.AttendanceRecord) dto.AttendanceEvent {
	meta := recordMeta(record)

	event := dto.AttendanceEvent{
		EventID:        record.ID,
		WorkerID:       record.WorkerID,
		WorkerName:     record.WorkerName,
		JobType:        record.JobType,
		JobName:        record.JobName,
		ProjectName:    record.ProjectName,
		ShiftID:        record.ShiftID,
		ShiftDeleted:   record.ShiftDeleted,
		ShiftDeletedBy: record.ShiftDeletedBy,
		ShiftDeletedAt: record.ShiftDeletedAt,
		BreakMinutes:   record.BreakMinutes,
		IsHoursWorked:  meta.HoursOverride != nil,
	}

	if event.JobType == "" && meta.JobType != nil {
		event.JobType = *meta.JobType
	}

	if record.ClockInTime != nil {
		id := record.ID
		event.ClockInID = &id
		event.ClockInTime = record.ClockInTime
		event.ClockInStatus = record.Status
		event.ClockInReason = record.ReasonText
	}
	if record.ClockOutTime != nil {
		id := record.ID
		event.ClockOutID = &id
		event.ClockOutTime = record.ClockOutTime
		event.ClockOutStatus = record.Status
		event.ClockOutReason = record.ReasonText
	}

	event.HoursWorked, event.BreakExceedsSpan = ComputeWorkedHours(
		record.ClockInTime, record.ClockOutTime, meta.HoursOverride, record.BreakMinutes)

	return event
}

// recordMeta gom metadata của bản ghi: ưu tiên cột kiểu thật, rơi về giải mã
// ReasonText cho các bản ghi cũ chưa được chuyển đổi
func recordMeta(record models.AttendanceRecord) ReasonMeta {
	meta := DecodeReason(record.ReasonText)
	if record.HoursOverride != nil {
		meta.HoursOverride = record.HoursOverride
	}
	if record.JobType != "" {
		jobType := record.JobType
		meta.JobType = &jobType
	}
	return meta
}

// effectiveTime trả về mốc dùng để sắp xếp sự kiện
func effectiveTime(event dto.AttendanceEvent) time.Time {
	if event.ClockInTime != nil {
		return *event.ClockInTime
	}
	if event.ClockOutTime != nil {
		return *event.ClockOutTime
	}
	return time.Time{}
}
