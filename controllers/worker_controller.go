package controllers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"hrm/config"
	"hrm/models"
	"hrm/response"
	"hrm/services"
)

// GetWorkers liệt kê nhân viên cho ô chọn của màn hình chấm công. Tham số
// query được chấm điểm gần đúng (gõ không dấu, sai chính tả nhẹ vẫn khớp).
func GetWorkers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	query := c.Query("query")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var workers []models.Worker
	if err := config.DB.Where("status = ?", 1).Order("name asc").Find(&workers).Error; err != nil {
		response.ServerError(c)
		return
	}

	if query != "" {
		decodedQuery, err := url.QueryUnescape(query)
		if err != nil {
			response.ServerError(c)
			return
		}
		scored := services.SearchWorkers(decodedQuery, workers)
		workers = workers[:0]
		for _, s := range scored {
			workers = append(workers, s.Worker)
		}
	}

	total := len(workers)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, workers[start:end], page, limit, total)
}

// GetWorkerDetail trả về thông tin một nhân viên
func GetWorkerDetail(c *gin.Context) {
	var worker models.Worker
	if err := config.DB.Where("id = ?", c.Param("id")).First(&worker).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, worker)
}
