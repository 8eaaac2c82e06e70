package models

import (
	"time"

	"github.com/lib/pq"
)

// User là tài khoản đăng nhập trang quản trị
type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New User" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"password"`
	Avatar      string        `json:"avatar"`
	Role        int           `gorm:"default:0" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	WorkerIDs   pq.Int64Array `json:"worker_ids" gorm:"type:integer[]"` // nhân viên thuộc quyền quản lý
	LastLoginAt time.Time     `json:"lastLoginAt"`
}
