package models

import "time"

// Project là mục động trong danh mục công việc, bổ sung cho các mã cố định
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `gorm:"unique" json:"code"`
	Status    int       `gorm:"default:1" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
