package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"

	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/logger"
	"hrm/validator"
)

// JobResolver tra tên hiển thị cho một mã công việc trong danh mục
type JobResolver interface {
	Resolve(ctx context.Context, token string) (jobName, projectName string, err error)
}

// AttendanceService là cổng đọc/ghi bản ghi chấm công: dẫn xuất danh sách
// sự kiện, tạo thủ công, sửa một phần, xóa đơn lẻ và xóa theo lô. Mọi ghi
// thành công đều phát thông báo để client bỏ cache và fetch lại, không vá
// trạng thái cục bộ.
type AttendanceService struct {
	store  AttendanceStore
	jobs   JobResolver
	logger logger.Logger
	loc    *time.Location
	melody *melody.Melody
	rdb    *redis.Client
}

type AttendanceServiceOptions struct {
	Store    AttendanceStore
	Jobs     JobResolver
	Logger   logger.Logger
	Location *time.Location
	Melody   *melody.Melody
	Redis    *redis.Client
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	loc := opts.Location
	if loc == nil {
		loc = AppLocation()
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AttendanceService{
		store:  opts.Store,
		jobs:   opts.Jobs,
		logger: l,
		loc:    loc,
		melody: opts.Melody,
		rdb:    opts.Redis,
	}
}

// EventsCacheKey là khóa cache Redis cho danh sách sự kiện của một nhân viên
func EventsCacheKey(workerID uint) string {
	return fmt.Sprintf("attendance:%d", workerID)
}

// ListEvents lấy snapshot bản ghi theo bộ lọc và dẫn xuất danh sách sự kiện
func (s *AttendanceService) ListEvents(ctx context.Context, filter dto.AttendanceListFilter) ([]dto.AttendanceEvent, error) {
	if filter.WorkerID == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Thiếu ID nhân viên", nil)
	}
	records, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return DeriveEvents(records), nil
}

// CreateManual tạo bản ghi chấm công thủ công. Mode "time" nhận cặp giờ
// vào/ra địa phương; mode "hours" nhận ngày và tổng số giờ, hệ thống tự
// sinh khoảng đóng bắt đầu từ 0h địa phương.
func (s *AttendanceService) CreateManual(ctx context.Context, req dto.CreateAttendanceRequest, actor string) (*models.AttendanceRecord, error) {
	if err := validator.ValidateCreateAttendance(&req); err != nil {
		return nil, err
	}

	worker, err := s.store.GetWorker(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = constants.JobTypeGeneral
	}
	jobName, projectName, err := s.resolveJob(ctx, jobType)
	if err != nil {
		return nil, err
	}

	record := models.AttendanceRecord{
		WorkerID:     worker.ID,
		WorkerName:   worker.Name,
		Source:       models.AttendanceSourceManual,
		Status:       req.Status,
		JobType:      jobType,
		JobName:      jobName,
		ProjectName:  projectName,
		BreakMinutes: req.BreakMinutes,
	}
	if record.Status == "" {
		record.Status = models.AttendanceStatusPending
	}

	switch req.Mode {
	case dto.EntryModeTime:
		clockIn, err := ParseLocalDateTime(req.Date, req.ClockInTime, s.loc)
		if err != nil {
			return nil, err
		}
		outDate := req.ClockOutDate
		if outDate == "" {
			outDate = req.Date
		}
		clockOut, err := ParseLocalDateTime(outDate, req.ClockOutTime, s.loc)
		if err != nil {
			return nil, err
		}
		if !clockOut.After(clockIn) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Giờ ra phải sau giờ vào", nil)
		}
		record.ClockInTime = &clockIn
		record.ClockOutTime = &clockOut
		record.ReasonText = EncodeReason(jobType, 0)

	case dto.EntryModeHours:
		start, err := ParseLocalDate(req.Date, s.loc)
		if err != nil {
			return nil, err
		}
		hours := *req.HoursWorked
		end := SyntheticClockOut(start, hours)
		record.ClockInTime = &start
		record.ClockOutTime = &end
		record.HoursOverride = &hours
		record.ReasonText = EncodeReason(jobType, hours)
	}

	if err := s.checkOverlap(ctx, worker.ID, *record.ClockInTime, *record.ClockOutTime, 0); err != nil {
		return nil, err
	}

	if record.Status == models.AttendanceStatusApproved {
		now := time.Now()
		record.ApprovedAt = &now
		record.ApprovedBy = actor
	}

	if err := s.store.Create(ctx, &record); err != nil {
		return nil, err
	}

	s.logger.Info("Tạo bản ghi chấm công %d cho nhân viên %d (mode %s)", record.ID, worker.ID, req.Mode)
	s.notifyChanged(worker.ID)
	return &record, nil
}

// Update sửa một phần bản ghi. Khi bản ghi còn liên kết ca làm việc thì ca
// là nơi quản lý metadata công việc: JobType gửi lên bị bỏ qua, các trường
// giờ, trạng thái và phút nghỉ vẫn sửa được.
func (s *AttendanceService) Update(ctx context.Context, req dto.UpdateAttendanceRequest, actor string) (*models.AttendanceRecord, error) {
	if err := validator.ValidateUpdateAttendance(&req); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ClockInTime != nil {
		t, err := s.parseDateTime(*req.ClockInTime)
		if err != nil {
			return nil, err
		}
		record.ClockInTime = &t
	}
	if req.ClockOutTime != nil {
		t, err := s.parseDateTime(*req.ClockOutTime)
		if err != nil {
			return nil, err
		}
		record.ClockOutTime = &t
	}
	if record.ClockInTime != nil && record.ClockOutTime != nil && !record.ClockOutTime.After(*record.ClockInTime) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Giờ ra phải sau giờ vào", nil)
	}

	// Người sửa nhập cặp giờ mới mà không nhập số giờ: bản ghi quay về kiểu
	// theo cặp giờ, bỏ số giờ tổng hợp cũ để nó không đè lên giờ vừa nhập
	if (req.ClockInTime != nil || req.ClockOutTime != nil) && req.HoursWorked == nil {
		record.HoursOverride = nil
	}

	if req.BreakMinutes != nil {
		record.BreakMinutes = *req.BreakMinutes
	}

	if req.JobType != nil {
		if record.ShiftID != nil {
			s.logger.Info("Bỏ qua JobType cho bản ghi %d: bản ghi thuộc ca làm việc %d", record.ID, *record.ShiftID)
		} else {
			jobName, projectName, err := s.resolveJob(ctx, *req.JobType)
			if err != nil {
				return nil, err
			}
			record.JobType = *req.JobType
			record.JobName = jobName
			record.ProjectName = projectName
		}
	}

	if req.HoursWorked != nil {
		if record.ClockInTime == nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Bản ghi chưa có giờ vào để tính theo số giờ", nil)
		}
		hours := *req.HoursWorked
		end := SyntheticClockOut(*record.ClockInTime, hours)
		record.HoursOverride = &hours
		record.ClockOutTime = &end
	}

	// ReasonText chỉ được ghi lại khi ca làm việc không còn là chủ metadata
	if record.ShiftID == nil {
		override := float64(0)
		if record.HoursOverride != nil {
			override = *record.HoursOverride
		}
		record.ReasonText = EncodeReason(record.JobType, override)
	}

	if req.Status != nil && *req.Status != record.Status {
		record.Status = *req.Status
		if record.Status == models.AttendanceStatusApproved {
			now := time.Now()
			record.ApprovedAt = &now
			record.ApprovedBy = actor
		} else {
			record.ApprovedAt = nil
			record.ApprovedBy = ""
		}
	}

	if record.ClockInTime != nil && record.ClockOutTime != nil {
		if err := s.checkOverlap(ctx, record.WorkerID, *record.ClockInTime, *record.ClockOutTime, record.ID); err != nil {
			return nil, err
		}
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Cập nhật bản ghi chấm công %d", record.ID)
	s.notifyChanged(record.WorkerID)
	return record, nil
}

// Delete xóa một bản ghi chấm công
func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Xóa bản ghi chấm công %d", id)
	s.notifyChanged(record.WorkerID)
	return nil
}

// DeleteMany xóa một lô bản ghi: mỗi id một request độc lập chạy song song,
// chờ tất cả xong rồi mới báo một lần. Id lỗi không chặn các id còn lại;
// kết quả trả về đúng danh sách thành công/thất bại, không phỏng đoán theo
// số lượng yêu cầu.
func (s *AttendanceService) DeleteMany(ctx context.Context, ids []uint) dto.BulkDeleteResult {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		result  dto.BulkDeleteResult
		workers = make(map[uint]bool)
	)

	for _, id := range ids {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			record, err := s.store.Get(ctx, id)
			if err == nil {
				err = s.store.Delete(ctx, id)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("Xóa bản ghi chấm công %d thất bại: %v", id, err)
				result.Failed = append(result.Failed, dto.BulkDeleteFailure{ID: id, Error: err.Error()})
				return
			}
			result.Succeeded = append(result.Succeeded, id)
			workers[record.WorkerID] = true
		}(id)
	}
	wg.Wait()

	s.logger.Info("Xóa lô bản ghi chấm công: %d thành công, %d thất bại", len(result.Succeeded), len(result.Failed))
	for workerID := range workers {
		s.notifyChanged(workerID)
	}
	return result
}

func (s *AttendanceService) parseDateTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, v, s.loc)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Sai định dạng ngày giờ", err)
	}
	return t, nil
}

func (s *AttendanceService) resolveJob(ctx context.Context, token string) (string, string, error) {
	if s.jobs != nil {
		return s.jobs.Resolve(ctx, token)
	}
	if name, ok := constants.JobTypeNames[token]; ok {
		return name, "", nil
	}
	return "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidJobType, "Mã công việc không hợp lệ", nil)
}

func (s *AttendanceService) checkOverlap(ctx context.Context, workerID uint, start, end time.Time, excludeID uint) error {
	overlap, err := s.store.HasOverlap(ctx, workerID, start, end, excludeID)
	if err != nil {
		return err
	}
	if overlap {
		return apperrors.NewAppError(apperrors.ErrCodeRecordConflict, "Khung giờ trùng với bản ghi chấm công khác của nhân viên", nil)
	}
	return nil
}

// notifyChanged xóa cache danh sách của nhân viên và phát tín hiệu cho
// client fetch lại. Trạng thái hiển thị luôn lấy từ storage, không vá tại chỗ.
func (s *AttendanceService) notifyChanged(workerID uint) {
	if s.rdb != nil {
		_ = DeleteFromRedis(context.Background(), s.rdb, EventsCacheKey(workerID))
	}
	if s.melody != nil {
		message := fmt.Sprintf(`{"type":"attendance:changed","workerId":%d}`, workerID)
		if err := s.melody.Broadcast([]byte(message)); err != nil {
			s.logger.Error("Broadcast thông báo chấm công thất bại: %v", err)
		}
	}
}
