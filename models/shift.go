package models

import "time"

// Shift là ca làm việc được xếp lịch từ bên ngoài. Khi ca bị xóa, các bản
// ghi chấm công liên kết chỉ được đánh dấu cảnh báo, không bị khóa sửa.
type Shift struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WorkerID  uint      `json:"workerId" gorm:"index;not null"`
	JobType   string    `json:"jobType"`
	JobName   string    `json:"jobName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
