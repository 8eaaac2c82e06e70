package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hrm/dto"
	"hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/logger"
)

type AttendanceController struct {
	db      *gorm.DB
	redis   *redis.Client
	service *services.AttendanceService
}

func NewAttendanceController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *AttendanceController {
	store := services.NewGormAttendanceStore(db)
	catalog := services.NewJobCatalogService(db, redisCli)
	service := services.NewAttendanceService(services.AttendanceServiceOptions{
		Store:  store,
		Jobs:   catalog,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
		Melody: m,
		Redis:  redisCli,
	})
	return &AttendanceController{
		db:      db,
		redis:   redisCli,
		service: service,
	}
}

// GetAttendanceEvents trả về danh sách sự kiện chấm công dẫn xuất của một
// nhân viên trong khoảng thời gian. Danh sách không lọc được cache Redis
// ngắn hạn, mọi mutation sẽ xóa cache này.
func (a *AttendanceController) GetAttendanceEvents(c *gin.Context) {
	workerIDStr := c.Query("workerId")
	if workerIDStr == "" {
		response.BadRequest(c, "Thiếu tham số workerId")
		return
	}
	workerID, err := strconv.ParseUint(workerIDStr, 10, 64)
	if err != nil || workerID == 0 {
		response.BadRequest(c, "workerId không hợp lệ")
		return
	}

	filter := dto.AttendanceListFilter{WorkerID: uint(workerID)}
	loc := services.AppLocation()

	if startStr := c.Query("startDate"); startStr != "" {
		start, err := services.ParseLocalDate(startStr, loc)
		if err != nil {
			response.BadRequest(c, "Sai định dạng startDate")
			return
		}
		filter.StartDate = &start
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := services.ParseLocalDate(endStr, loc)
		if err != nil {
			response.BadRequest(c, "Sai định dạng endDate")
			return
		}
		// endDate bao trùm cả ngày
		end = end.AddDate(0, 0, 1)
		filter.EndDate = &end
	}
	if status := c.Query("status"); status != "" {
		if status != models.AttendanceStatusApproved && status != models.AttendanceStatusPending && status != models.AttendanceStatusRejected {
			response.BadRequest(c, "Trạng thái lọc không hợp lệ")
			return
		}
		filter.Status = status
	}
	if projectStr := c.Query("projectId"); projectStr != "" {
		projectID, err := strconv.ParseUint(projectStr, 10, 64)
		if err != nil {
			response.BadRequest(c, "projectId không hợp lệ")
			return
		}
		filter.ProjectID = uint(projectID)
	}

	unfiltered := filter.StartDate == nil && filter.EndDate == nil && filter.Status == "" && filter.ProjectID == 0
	cacheKey := services.EventsCacheKey(filter.WorkerID)

	if unfiltered && a.redis != nil {
		var cached []dto.AttendanceEvent
		if err := services.GetFromRedis(c.Request.Context(), a.redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	events, err := a.service.ListEvents(c.Request.Context(), filter)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	if unfiltered && a.redis != nil && len(events) > 0 {
		_ = services.SetToRedis(c.Request.Context(), a.redis, cacheKey, events, 5*time.Minute)
	}

	response.SuccessWithTotal(c, events, len(events))
}

// CreateAttendance tạo bản ghi chấm công thủ công
func (a *AttendanceController) CreateAttendance(c *gin.Context) {
	var request dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := a.service.CreateManual(c.Request.Context(), request, actorName(c))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	response.Success(c, record)
}

// UpdateAttendance sửa một phần bản ghi chấm công
func (a *AttendanceController) UpdateAttendance(c *gin.Context) {
	var request dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := a.service.Update(c.Request.Context(), request, actorName(c))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	response.Success(c, record)
}

// DeleteAttendance xóa một bản ghi chấm công
func (a *AttendanceController) DeleteAttendance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := a.service.Delete(c.Request.Context(), uint(id)); err != nil {
		respondAttendanceError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteAttendanceBatch xóa một lô bản ghi. Response luôn 200 kèm danh sách
// thành công/thất bại thật sự để client tự quyết cách báo kết quả từng phần.
func (a *AttendanceController) DeleteAttendanceBatch(c *gin.Context) {
	var request dto.DeleteAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if len(request.IDs) == 0 {
		response.BadRequest(c, "Không có ID nào được cung cấp")
		return
	}

	result := a.service.DeleteMany(c.Request.Context(), request.IDs)
	response.SuccessWithTotal(c, result, result.SucceededCount())
}

// actorName lấy tên người thao tác từ token để ghi audit
func actorName(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	name, err := services.GetActorNameFromToken(tokenString)
	if err != nil {
		return ""
	}
	return name
}

// respondAttendanceError ánh xạ AppError sang response HTTP. Lỗi conflict
// trả 409 kèm thông báo cụ thể để form sửa vẫn mở; lỗi validation trả 400;
// còn lại là lỗi server.
func respondAttendanceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeRecordConflict:
		response.ConflictWithMessage(c, appErr.Message)
	case errors.ErrCodeRecordNotFound, errors.ErrCodeWorkerNotFound, errors.ErrCodeShiftNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidJobType, errors.ErrCodeInvalidDuration:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}
