package validator

import (
	"hrm/dto"
	"hrm/errors"
	"hrm/models"
	"regexp"
)

// ValidateCreateAttendance kiểm tra yêu cầu tạo bản ghi chấm công thủ công
// theo mode khai báo. Lỗi ở đây chặn trước khi chạm tới database.
func ValidateCreateAttendance(req *dto.CreateAttendanceRequest) error {
	if req.WorkerID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu ID nhân viên", nil)
	}
	if req.Date == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu ngày chấm công", nil)
	}

	switch req.Mode {
	case dto.EntryModeTime:
		if req.ClockInTime == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu giờ vào", nil)
		}
		if req.ClockOutTime == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu giờ ra", nil)
		}
	case dto.EntryModeHours:
		if req.HoursWorked == nil || *req.HoursWorked <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidDuration, "Số giờ làm phải lớn hơn 0", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Mode chấm công không hợp lệ", nil)
	}

	if req.BreakMinutes < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phút nghỉ không được âm", nil)
	}
	if req.Status != "" {
		if err := ValidateAttendanceStatus(req.Status); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdateAttendance kiểm tra yêu cầu sửa bản ghi chấm công
func ValidateUpdateAttendance(req *dto.UpdateAttendanceRequest) error {
	if req.ID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu ID bản ghi", nil)
	}
	if req.Status != nil {
		if err := ValidateAttendanceStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.BreakMinutes != nil && *req.BreakMinutes < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phút nghỉ không được âm", nil)
	}
	if req.HoursWorked != nil && *req.HoursWorked <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidDuration, "Số giờ làm phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateAttendanceStatus kiểm tra trạng thái chấm công hợp lệ
func ValidateAttendanceStatus(status string) error {
	switch status {
	case models.AttendanceStatusApproved, models.AttendanceStatusPending, models.AttendanceStatusRejected:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái chấm công không hợp lệ", nil)
}

// ValidateWorker kiểm tra thông tin nhân viên
func ValidateWorker(worker *models.Worker) error {
	if worker.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhân viên không được để trống", nil)
	}
	if worker.Email != "" && !isValidEmail(worker.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if worker.PhoneNumber != "" && !isValidPhone(worker.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
