package services

import (
	"strconv"
	"strings"
)

// Các bản ghi chấm công cũ không có cột riêng cho mã công việc và số giờ
// nhập tay; hai giá trị này được ghép vào trường ReasonText dạng
// "JOB_TYPE:<mã>|HOURS_WORKED:<số>". Codec này là nơi duy nhất hiểu định
// dạng đó: ghi để tương thích ngược và đọc lại các bản ghi chưa có cột kiểu
// thật.

const (
	reasonSegmentSep = "|"
	reasonJobTypeKey = "JOB_TYPE:"
	reasonHoursKey   = "HOURS_WORKED:"
)

// ReasonMeta là kết quả giải mã ReasonText
type ReasonMeta struct {
	JobType       *string
	HoursOverride *float64
}

// IsHoursWorked cho biết bản ghi có phải kiểu nhập theo số giờ không
func (m ReasonMeta) IsHoursWorked() bool {
	return m.HoursOverride != nil
}

// EncodeReason mã hóa mã công việc và số giờ nhập tay vào chuỗi ReasonText.
// Segment HOURS_WORKED bị bỏ qua khi override không dương.
func EncodeReason(jobType string, hoursOverride float64) string {
	var segments []string
	if jobType != "" {
		segments = append(segments, reasonJobTypeKey+jobType)
	}
	if hoursOverride > 0 {
		segments = append(segments, reasonHoursKey+strconv.FormatFloat(hoursOverride, 'f', -1, 64))
	}
	return strings.Join(segments, reasonSegmentSep)
}

// DecodeReason giải mã chuỗi ReasonText. Segment thiếu trả về nil, segment
// lạ bị bỏ qua, giá trị giờ không phải số trả về override nil thay vì lỗi;
// bên gọi khi đó tính lại thời lượng từ cặp giờ vào/ra.
func DecodeReason(reasonText string) ReasonMeta {
	var meta ReasonMeta
	if reasonText == "" {
		return meta
	}

	for _, segment := range strings.Split(reasonText, reasonSegmentSep) {
		switch {
		case strings.HasPrefix(segment, reasonJobTypeKey):
			jobType := strings.TrimPrefix(segment, reasonJobTypeKey)
			meta.JobType = &jobType
		case strings.HasPrefix(segment, reasonHoursKey):
			raw := strings.TrimPrefix(segment, reasonHoursKey)
			hours, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			meta.HoursOverride = &hours
		}
	}
	return meta
}
