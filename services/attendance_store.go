package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
)

// AttendanceStore trừu tượng hóa tầng lưu trữ bản ghi chấm công để service
// test được bằng mock
type AttendanceStore interface {
	List(ctx context.Context, filter dto.AttendanceListFilter) ([]models.AttendanceRecord, error)
	Get(ctx context.Context, id uint) (*models.AttendanceRecord, error)
	Create(ctx context.Context, record *models.AttendanceRecord) error
	Save(ctx context.Context, record *models.AttendanceRecord) error
	Delete(ctx context.Context, id uint) error
	HasOverlap(ctx context.Context, workerID uint, start, end time.Time, excludeID uint) (bool, error)
	GetWorker(ctx context.Context, id uint) (*models.Worker, error)
}

// GormAttendanceStore là implementation GORM/Postgres của AttendanceStore
type GormAttendanceStore struct {
	db *gorm.DB
}

func NewGormAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{db: db}
}

func (s *GormAttendanceStore) List(ctx context.Context, filter dto.AttendanceListFilter) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord

	tx := s.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Where("worker_id = ?", filter.WorkerID)

	if filter.StartDate != nil {
		tx = tx.Where("COALESCE(clock_in_time, clock_out_time) >= ?", *filter.StartDate)
	}
	// Cận trên là mốc loại trừ: controller đã cộng một ngày vào endDate nên
	// cú chấm đúng 0h của ngày kế tiếp không được lọt vào khoảng
	if filter.EndDate != nil {
		tx = tx.Where("COALESCE(clock_in_time, clock_out_time) < ?", *filter.EndDate)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != 0 {
		tx = tx.Where("job_type = ?", fmt.Sprintf("P%d", filter.ProjectID))
	}

	// Thứ tự ổn định theo id để hai lần fetch cùng snapshot ra cùng thứ tự
	// đầu vào cho bước dẫn xuất
	if err := tx.Order("id asc").Find(&records).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn bản ghi chấm công", err)
	}
	return records, nil
}

func (s *GormAttendanceStore) Get(ctx context.Context, id uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRecordNotFound, "Bản ghi chấm công không tồn tại", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn bản ghi chấm công", err)
	}
	return &record, nil
}

func (s *GormAttendanceStore) Create(ctx context.Context, record *models.AttendanceRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi tạo bản ghi chấm công", err)
	}
	return nil
}

func (s *GormAttendanceStore) Save(ctx context.Context, record *models.AttendanceRecord) error {
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi cập nhật bản ghi chấm công", err)
	}
	return nil
}

func (s *GormAttendanceStore) Delete(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Delete(&models.AttendanceRecord{}, id)
	if tx.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi xóa bản ghi chấm công", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRecordNotFound, "Bản ghi chấm công không tồn tại", nil)
	}
	return nil
}

// HasOverlap kiểm tra nhân viên đã có bản ghi chồng lấn với khung giờ
// [start, end) chưa. Bản ghi đang mở (chưa có giờ ra) được coi là kéo dài
// vô hạn về sau.
func (s *GormAttendanceStore) HasOverlap(ctx context.Context, workerID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	tx := s.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Where("worker_id = ?", workerID).
		Where("clock_in_time IS NOT NULL").
		Where("clock_in_time < ?", end).
		Where("clock_out_time IS NULL OR clock_out_time > ?", start)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi kiểm tra chồng lấn", err)
	}
	return count > 0, nil
}

func (s *GormAttendanceStore) GetWorker(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := s.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeWorkerNotFound, "Nhân viên không tồn tại", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn nhân viên", err)
	}
	return &worker, nil
}
