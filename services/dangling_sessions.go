package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/olahol/melody"

	"hrm/config"
	"hrm/models"
)

// Phiên mở quá 24h gần như chắc chắn là quên chấm ra; chuyển về chờ duyệt
// để người quản lý đóng phiên bằng tay.
const danglingSessionMaxAge = 24 * time.Hour

// DanglingSessionService rà soát các phiên chấm công quên đóng, chạy theo
// lịch cron hằng đêm
type DanglingSessionService struct{}

func NewDanglingSessionService() *DanglingSessionService {
	return &DanglingSessionService{}
}

// FlagDanglingSessions chuyển các bản ghi đã duyệt nhưng còn mở quá hạn về
// trạng thái chờ duyệt, xóa cache danh sách liên quan và báo cho client
// fetch lại
func (s *DanglingSessionService) FlagDanglingSessions(m *melody.Melody) (int, error) {
	db := config.DB
	cutoff := time.Now().Add(-danglingSessionMaxAge)

	var records []models.AttendanceRecord
	if err := db.
		Where("clock_out_time IS NULL").
		Where("clock_in_time IS NOT NULL AND clock_in_time < ?", cutoff).
		Where("status = ?", models.AttendanceStatusApproved).
		Find(&records).Error; err != nil {
		return 0, fmt.Errorf("lỗi truy vấn phiên chấm công mở: %w", err)
	}

	if len(records) == 0 {
		return 0, nil
	}

	tx := db.Begin()
	workers := make(map[uint]bool)
	for _, record := range records {
		if err := tx.Model(&models.AttendanceRecord{}).
			Where("id = ?", record.ID).
			Updates(map[string]interface{}{
				"status":      models.AttendanceStatusPending,
				"approved_at": nil,
				"approved_by": "",
			}).Error; err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("lỗi cập nhật bản ghi %d: %w", record.ID, err)
		}
		workers[record.WorkerID] = true
		log.Printf("Phiên chấm công %d của nhân viên %d mở quá hạn, chuyển về chờ duyệt", record.ID, record.WorkerID)
	}
	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("lỗi commit cập nhật phiên chấm công: %w", err)
	}

	for workerID := range workers {
		if config.RedisClient != nil {
			_ = DeleteFromRedis(config.Ctx, config.RedisClient, EventsCacheKey(workerID))
		}
		if m != nil {
			message := fmt.Sprintf(`{"type":"attendance:changed","workerId":%d}`, workerID)
			if err := m.Broadcast([]byte(message)); err != nil {
				log.Printf("Broadcast thông báo chấm công thất bại: %v", err)
			}
		}
	}

	return len(records), nil
}
