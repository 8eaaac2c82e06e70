package models

import (
	"time"
)

// Attendance status constants
const (
	AttendanceStatusApproved = "approved"
	AttendanceStatusPending  = "pending"
	AttendanceStatusRejected = "rejected"
)

// Attendance source constants
const (
	AttendanceSourceDevice = "device"
	AttendanceSourceManual = "manual"
)

// AttendanceRecord là bản ghi chấm công gốc. Một bản ghi có thể là phiên
// đang mở (chưa có giờ ra), phiên đã đóng, hoặc phiên nhập tay theo số giờ.
type AttendanceRecord struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	WorkerID     uint       `json:"workerId" gorm:"index;not null"`
	Worker       *Worker    `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	WorkerName   string     `json:"workerName"`
	ClockInTime  *time.Time `json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Source       string     `json:"source" gorm:"type:varchar(30);default:'manual'"`

	// Ca làm việc liên kết. Khi ShiftID khác nil thì ca là nơi quản lý
	// metadata công việc, người sửa không được ghi đè ReasonText.
	ShiftID        *uint      `json:"shiftId,omitempty"`
	ShiftDeleted   bool       `json:"shiftDeleted" gorm:"default:false"`
	ShiftDeletedBy string     `json:"shiftDeletedBy,omitempty"`
	ShiftDeletedAt *time.Time `json:"shiftDeletedAt,omitempty"`

	JobType     string `json:"jobType"` // mã gốc trong danh mục công việc
	JobName     string `json:"jobName"`
	ProjectName string `json:"projectName"`

	// HoursOverride là cột có kiểu thật cho số giờ nhập tay; các bản ghi cũ
	// chỉ có giá trị mã hóa trong ReasonText.
	HoursOverride *float64 `json:"hoursOverride,omitempty"`
	BreakMinutes  int      `json:"breakMinutes" gorm:"default:0"`
	ReasonText    string   `json:"reasonText"`

	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
}
