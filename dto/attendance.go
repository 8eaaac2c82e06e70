package dto

import "time"

// AttendanceEvent là sự kiện chấm công dẫn xuất cho màn hình xem/sửa, dựng
// lại từ bản ghi gốc sau mỗi lần fetch, không được lưu trữ
type AttendanceEvent struct {
	EventID     uint   `json:"eventId"`
	WorkerID    uint   `json:"workerId"`
	WorkerName  string `json:"workerName"`
	JobType     string `json:"jobType"`
	JobName     string `json:"jobName"`
	ProjectName string `json:"projectName"`

	ShiftID        *uint      `json:"shiftId,omitempty"`
	ShiftDeleted   bool       `json:"shiftDeleted"`
	ShiftDeletedBy string     `json:"shiftDeletedBy,omitempty"`
	ShiftDeletedAt *time.Time `json:"shiftDeletedAt,omitempty"`

	ClockInID     *uint      `json:"clockInId,omitempty"`
	ClockInTime   *time.Time `json:"clockInTime,omitempty"`
	ClockInStatus string     `json:"clockInStatus,omitempty"`
	ClockInReason string     `json:"clockInReason,omitempty"`

	ClockOutID     *uint      `json:"clockOutId,omitempty"`
	ClockOutTime   *time.Time `json:"clockOutTime,omitempty"`
	ClockOutStatus string     `json:"clockOutStatus,omitempty"`
	ClockOutReason string     `json:"clockOutReason,omitempty"`

	HoursWorked  *float64 `json:"hoursWorked"`
	BreakMinutes int      `json:"breakMinutes"`

	// IsHoursWorked đánh dấu bản ghi nhập theo số giờ thay vì cặp giờ vào/ra
	IsHoursWorked bool `json:"isHoursWorked"`
	// BreakExceedsSpan đánh dấu phiên bị chặn về 0 giờ vì nghỉ vượt thời lượng
	BreakExceedsSpan bool `json:"breakExceedsSpan"`
}

// Entry mode của tạo bản ghi thủ công
const (
	EntryModeTime  = "time"
	EntryModeHours = "hours"
)

// AttendanceListFilter là bộ lọc truy vấn danh sách bản ghi chấm công
type AttendanceListFilter struct {
	WorkerID  uint
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	ProjectID uint
}

// CreateAttendanceRequest là DTO cho yêu cầu tạo bản ghi chấm công thủ công.
// Mode "time" cần đủ giờ vào và giờ ra; mode "hours" cần ngày và số giờ dương.
type CreateAttendanceRequest struct {
	WorkerID     uint     `json:"workerId" binding:"required"`
	Mode         string   `json:"mode" binding:"required"`
	Date         string   `json:"date" binding:"required"` // dd/MM/yyyy
	ClockInTime  string   `json:"clockInTime,omitempty"`   // HH:mm
	ClockOutTime string   `json:"clockOutTime,omitempty"`  // HH:mm
	ClockOutDate string   `json:"clockOutDate,omitempty"`  // dd/MM/yyyy, mặc định cùng ngày
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
	JobType      string   `json:"jobType,omitempty"`
	Status       string   `json:"status,omitempty"`
	BreakMinutes int      `json:"breakMinutes,omitempty"`
}

// UpdateAttendanceRequest là DTO cho yêu cầu sửa một phần bản ghi. Trường
// nil giữ nguyên giá trị cũ. JobType bị bỏ qua khi bản ghi thuộc một ca làm
// việc còn liên kết.
type UpdateAttendanceRequest struct {
	ID           uint     `json:"id" binding:"required"`
	ClockInTime  *string  `json:"clockInTime,omitempty"`  // dd/MM/yyyy HH:mm
	ClockOutTime *string  `json:"clockOutTime,omitempty"` // dd/MM/yyyy HH:mm
	Status       *string  `json:"status,omitempty"`
	JobType      *string  `json:"jobType,omitempty"`
	BreakMinutes *int     `json:"breakMinutes,omitempty"`
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
}

// DeleteAttendanceRequest là DTO cho yêu cầu xóa nhiều bản ghi
type DeleteAttendanceRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// BulkDeleteFailure mô tả một id xóa thất bại trong lô
type BulkDeleteFailure struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// BulkDeleteResult là kết quả có cấu trúc của xóa theo lô: bên gọi nhận
// đúng danh sách thành công/thất bại thay vì một con số phỏng đoán
type BulkDeleteResult struct {
	Succeeded []uint              `json:"succeeded"`
	Failed    []BulkDeleteFailure `json:"failed"`
}

// SucceededCount trả về số bản ghi đã xóa thật sự
func (r BulkDeleteResult) SucceededCount() int {
	return len(r.Succeeded)
}
