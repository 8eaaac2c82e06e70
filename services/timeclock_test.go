package services

import (
	"testing"
	"time"
)

func ictZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestLocalClock_RoundTrip(t *testing.T) {
	loc := ictZone(t)

	clocks := []LocalClock{
		{2024, time.March, 1, 8, 0},
		{2024, time.March, 1, 16, 30},
		{2024, time.December, 31, 23, 59},
		{2025, time.January, 1, 0, 0},
		{2024, time.February, 29, 12, 1},
	}

	for _, lc := range clocks {
		instant := lc.ToInstant(loc)
		back := LocalClockFromInstant(instant, loc)
		if back != lc {
			t.Errorf("round trip %+v: got %+v", lc, back)
		}
	}
}

func TestLocalClock_RoundTripAcrossZones(t *testing.T) {
	// Mốc tuyệt đối không phụ thuộc cách lưu: đổi qua UTC rồi đọc lại theo
	// múi giờ gốc vẫn ra đúng từng thành phần
	loc := ictZone(t)
	lc := LocalClock{2024, time.March, 1, 8, 0}

	instant := lc.ToInstant(loc).UTC()
	back := LocalClockFromInstant(instant, loc)
	if back != lc {
		t.Errorf("round trip via UTC %+v: got %+v", lc, back)
	}
}

func TestParseLocalDateTime(t *testing.T) {
	loc := ictZone(t)

	got, err := ParseLocalDateTime("01/03/2024", "08:00", loc)
	if err != nil {
		t.Fatalf("ParseLocalDateTime: %v", err)
	}
	want := time.Date(2024, time.March, 1, 8, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseLocalDateTime("2024-03-01", "08:00", loc); err == nil {
		t.Error("expected error for wrong date layout")
	}
	if _, err := ParseLocalDateTime("01/03/2024", "8h00", loc); err == nil {
		t.Error("expected error for wrong time layout")
	}
}

func TestParseLocalDate_Midnight(t *testing.T) {
	loc := ictZone(t)

	got, err := ParseLocalDate("02/03/2024", loc)
	if err != nil {
		t.Fatalf("ParseLocalDate: %v", err)
	}
	want := time.Date(2024, time.March, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSyntheticClockOut(t *testing.T) {
	loc := ictZone(t)
	start := LocalMidnight(2024, time.March, 2, loc)

	end := SyntheticClockOut(start, 7.5)
	if got := end.Sub(start); got != 7*time.Hour+30*time.Minute {
		t.Errorf("span = %v, want 7h30m", got)
	}
	local := LocalClockFromInstant(end, loc)
	if local.Hour != 7 || local.Minute != 30 {
		t.Errorf("local end = %02d:%02d, want 07:30", local.Hour, local.Minute)
	}
}

func TestSyntheticClockOut_DSTTransition(t *testing.T) {
	// Chính sách cho ngày chuyển DST: luôn neo tại 0h địa phương và cộng
	// đúng số giờ tuyệt đối. Ngày 31/03/2024 ở Berlin chỉ có 23 tiếng
	// (02:00 nhảy lên 03:00) nên 0h + 7.5h tuyệt đối rơi vào 08:30 giờ
	// địa phương chứ không phải 07:30.
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	start := LocalMidnight(2024, time.March, 31, berlin)
	end := SyntheticClockOut(start, 7.5)

	if got := end.Sub(start); got != 7*time.Hour+30*time.Minute {
		t.Errorf("absolute span = %v, want 7h30m", got)
	}
	local := LocalClockFromInstant(end, berlin)
	if local.Hour != 8 || local.Minute != 30 {
		t.Errorf("local end = %02d:%02d, want 08:30", local.Hour, local.Minute)
	}
}
