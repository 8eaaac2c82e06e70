package dto

import "hrm/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// JobTypeResponse là một mục trong danh mục công việc
type JobTypeResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
