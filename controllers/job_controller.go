package controllers

import (
	"github.com/gin-gonic/gin"

	"hrm/config"
	"hrm/response"
	"hrm/services"
)

// GetJobTypes trả về danh mục công việc: bộ mã cố định cộng project động
func GetJobTypes(c *gin.Context) {
	catalog := services.NewJobCatalogService(config.DB, config.RedisClient)
	jobTypes, err := catalog.ListJobTypes(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, jobTypes, len(jobTypes))
}
