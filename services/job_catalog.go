package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
)

const jobCatalogCacheKey = "job_types:all"

// JobCatalogService cung cấp danh mục công việc: bộ mã cố định cộng danh
// sách project động trong database. Project được gán mã "P<id>".
type JobCatalogService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewJobCatalogService(db *gorm.DB, rdb *redis.Client) *JobCatalogService {
	return &JobCatalogService{db: db, rdb: rdb}
}

// ListJobTypes trả về toàn bộ danh mục, có cache Redis 30 phút
func (s *JobCatalogService) ListJobTypes(ctx context.Context) ([]dto.JobTypeResponse, error) {
	if s.rdb != nil {
		var cached []dto.JobTypeResponse
		if err := GetFromRedis(ctx, s.rdb, jobCatalogCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	jobTypes := make([]dto.JobTypeResponse, 0, len(constants.JobTypeNames))
	for token, name := range constants.JobTypeNames {
		jobTypes = append(jobTypes, dto.JobTypeResponse{Token: token, Name: name})
	}
	sort.Slice(jobTypes, func(i, j int) bool { return jobTypes[i].Token < jobTypes[j].Token })

	var projects []models.Project
	if err := s.db.WithContext(ctx).Where("status = ?", 1).Order("name asc").Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn danh mục project", err)
	}
	for _, p := range projects {
		jobTypes = append(jobTypes, dto.JobTypeResponse{
			Token: fmt.Sprintf("P%d", p.ID),
			Name:  p.Name,
		})
	}

	if s.rdb != nil {
		_ = SetToRedis(ctx, s.rdb, jobCatalogCacheKey, jobTypes, 30*time.Minute)
	}
	return jobTypes, nil
}

// Resolve tra tên hiển thị cho một mã công việc. Mã "P<id>" trả thêm tên
// project, mã cố định chỉ có tên công việc.
func (s *JobCatalogService) Resolve(ctx context.Context, token string) (string, string, error) {
	if name, ok := constants.JobTypeNames[token]; ok {
		return name, "", nil
	}

	if strings.HasPrefix(token, "P") {
		var project models.Project
		if err := s.db.WithContext(ctx).Where("id = ? AND status = ?", strings.TrimPrefix(token, "P"), 1).First(&project).Error; err == nil {
			return project.Name, project.Name, nil
		}
	}
	return "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidJobType, "Mã công việc không hợp lệ", nil)
}

// InvalidateCache xóa cache danh mục sau khi sửa project
func (s *JobCatalogService) InvalidateCache(ctx context.Context) {
	if s.rdb != nil {
		_ = DeleteFromRedis(ctx, s.rdb, jobCatalogCacheKey)
	}
}
