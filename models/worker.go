package models

import "time"

// Worker là nhân viên được chấm công
type Worker struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string             `gorm:"not null" json:"name"`
	Email       string             `gorm:"unique" json:"email"`
	PhoneNumber string             `gorm:"type:varchar(11)" json:"phoneNumber"`
	Department  string             `json:"department"`
	Status      int                `gorm:"default:1" json:"status"`
	Records     []AttendanceRecord `json:"records,omitempty" gorm:"foreignKey:WorkerID"`
}
