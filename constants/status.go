package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleViewer  = 0
	RoleManager = 1
	RoleAdmin   = 2
)

// Job type tokens: phần cố định của danh mục công việc. Các project động
// dùng mã "P<id>" do JobCatalog sinh ra.
const (
	JobTypeGeneral     = "0"
	JobTypeOvertime    = "1"
	JobTypeTraining    = "2"
	JobTypeMaintenance = "3"
)

// JobTypeNames ánh xạ mã cố định sang tên hiển thị
var JobTypeNames = map[string]string{
	JobTypeGeneral:     "Công việc chung",
	JobTypeOvertime:    "Tăng ca",
	JobTypeTraining:    "Đào tạo",
	JobTypeMaintenance: "Bảo trì",
}
