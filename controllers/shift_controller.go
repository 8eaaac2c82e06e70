package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"hrm/config"
	"hrm/models"
	"hrm/response"
	"hrm/services"
)

// DeleteShift xóa một ca làm việc và đóng dấu cảnh báo lên các bản ghi chấm
// công còn liên kết. Cờ chỉ mang tính thông tin, không bao giờ chặn sửa
// bản ghi.
func DeleteShift(c *gin.Context) {
	var shift models.Shift
	if err := config.DB.Where("id = ?", c.Param("id")).First(&shift).Error; err != nil {
		response.NotFound(c)
		return
	}

	actor := actorName(c)
	now := time.Now()

	tx := config.DB.Begin()
	if err := tx.Delete(&shift).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Model(&models.AttendanceRecord{}).
		Where("shift_id = ?", shift.ID).
		Updates(map[string]interface{}{
			"shift_deleted":    true,
			"shift_deleted_by": actor,
			"shift_deleted_at": now,
		}).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Commit().Error; err != nil {
		response.ServerError(c)
		return
	}

	// Xóa cache danh sách của nhân viên có bản ghi bị ảnh hưởng
	if config.RedisClient != nil {
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, services.EventsCacheKey(shift.WorkerID))
	}

	response.Success(c, gin.H{
		"shiftId":   shift.ID,
		"deletedBy": actor,
		"deletedAt": now,
	})
}
