package services

import "time"

// ComputeWorkedHours tính số giờ làm của một phiên chấm công.
//
// Thứ tự ưu tiên: số giờ nhập tay (khi có đủ cặp giờ vào/ra) → hiệu hai mốc
// thời gian → không xác định (nil). Số giờ nhập tay là giá trị người dùng gõ
// trực tiếp nên được tin hơn; giờ ra lúc đó chỉ là bản sao tổng hợp
// (vào + override) giữ cho bản ghi có khoảng đóng để liệt kê và đối soát.
//
// Phút nghỉ chỉ trừ vào con số giờ làm báo cáo, không bao giờ dịch mốc giờ
// ra đã lưu. Kết quả luôn chặn dưới tại 0: bản ghi hỏng có giờ ra trước giờ
// vào (thiết bị lệch giờ, dữ liệu cũ) ra 0 giờ thay vì số âm, và phiên ngắn
// hơn giờ nghỉ đã khai báo cũng ra 0 giờ kèm cờ breakExceedsSpan để nơi
// duyệt công phân biệt "0 giờ vì nghỉ vượt phiên" với "không có dữ liệu".
func ComputeWorkedHours(clockIn, clockOut *time.Time, hoursOverride *float64, breakMinutes int) (hours *float64, breakExceedsSpan bool) {
	var base float64
	switch {
	case hoursOverride != nil && clockIn != nil && clockOut != nil:
		base = *hoursOverride
	case clockIn != nil && clockOut != nil:
		base = clockOut.Sub(*clockIn).Hours()
	default:
		return nil, false
	}
	if base < 0 {
		base = 0
	}

	if breakMinutes > 0 {
		base -= float64(breakMinutes) / 60
		if base < 0 {
			base = 0
			breakExceedsSpan = true
		}
	}
	return &base, breakExceedsSpan
}
