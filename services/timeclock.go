package services

import (
	"os"
	"time"
	_ "time/tzdata"

	"hrm/errors"
)

const (
	DefaultTimezone = "Asia/Ho_Chi_Minh"

	DateLayout     = "02/01/2006"
	TimeLayout     = "15:04"
	DateTimeLayout = "02/01/2006 15:04"
)

// LocalClock là bộ thành phần lịch địa phương nhập từ form, chính xác tới phút
type LocalClock struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// AppLocation trả về múi giờ của hệ thống, đọc từ biến môi trường TIMEZONE
func AppLocation() *time.Location {
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ToInstant đổi thành phần lịch địa phương sang mốc thời gian tuyệt đối.
// Ghép qua time.Date nên đi vòng ToInstant → LocalClockFromInstant giữ nguyên
// từng thành phần tới phút, trừ các tổ hợp rơi đúng khoảng trống DST.
func (lc LocalClock) ToInstant(loc *time.Location) time.Time {
	return time.Date(lc.Year, lc.Month, lc.Day, lc.Hour, lc.Minute, 0, 0, loc)
}

// LocalClockFromInstant đổi mốc thời gian tuyệt đối về thành phần lịch địa phương
func LocalClockFromInstant(t time.Time, loc *time.Location) LocalClock {
	local := t.In(loc)
	return LocalClock{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

// LocalMidnight trả về 0h địa phương của một ngày. Chính sách cho ngày có
// chuyển DST: luôn neo tại 0h do time.Date phân giải, bất kể ngày đó dài
// 23 hay 25 tiếng.
func LocalMidnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// SyntheticClockOut tính giờ ra tổng hợp cho bản ghi nhập theo số giờ:
// start cộng đúng số giờ tuyệt đối (cho phép lẻ, vd 7.5h), không trừ nghỉ
// và không co giãn theo độ dài ngày địa phương.
func SyntheticClockOut(start time.Time, hours float64) time.Time {
	return start.Add(time.Duration(hours * float64(time.Hour)))
}

// ParseLocalDateTime ghép chuỗi ngày dd/MM/yyyy và giờ HH:mm thành mốc thời
// gian trong múi giờ loc
func ParseLocalDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Sai định dạng ngày", err)
	}
	t, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Sai định dạng giờ", err)
	}
	lc := LocalClock{
		Year:   d.Year(),
		Month:  d.Month(),
		Day:    d.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
	return lc.ToInstant(loc), nil
}

// ParseLocalDate đọc chuỗi ngày dd/MM/yyyy và trả về 0h địa phương của ngày đó
func ParseLocalDate(dateStr string, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Sai định dạng ngày", err)
	}
	return LocalMidnight(d.Year(), d.Month(), d.Day(), loc), nil
}
