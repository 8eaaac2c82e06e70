package services

import "testing"

func TestEncodeReason(t *testing.T) {
	tests := []struct {
		name     string
		jobType  string
		hours    float64
		expected string
	}{
		{"job type only", "0", 0, "JOB_TYPE:0"},
		{"job type and hours", "0", 7.5, "JOB_TYPE:0|HOURS_WORKED:7.5"},
		{"negative hours omitted", "3", -2, "JOB_TYPE:3"},
		{"integer hours", "1", 8, "JOB_TYPE:1|HOURS_WORKED:8"},
		{"empty job type", "", 7.5, "HOURS_WORKED:7.5"},
		{"empty everything", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeReason(tt.jobType, tt.hours)
			if got != tt.expected {
				t.Errorf("EncodeReason(%q, %v) = %q, want %q", tt.jobType, tt.hours, got, tt.expected)
			}
		})
	}
}

func TestDecodeReason_RoundTrip(t *testing.T) {
	jobTypes := []string{"0", "1", "3", "P12"}
	hours := []float64{0.5, 1, 7.5, 8, 23.75}

	for _, jobType := range jobTypes {
		for _, h := range hours {
			encoded := EncodeReason(jobType, h)
			meta := DecodeReason(encoded)
			if meta.JobType == nil || *meta.JobType != jobType {
				t.Errorf("decode(encode(%q, %v)): job type = %v, want %q", jobType, h, meta.JobType, jobType)
			}
			if meta.HoursOverride == nil || *meta.HoursOverride != h {
				t.Errorf("decode(encode(%q, %v)): hours = %v, want %v", jobType, h, meta.HoursOverride, h)
			}
		}
	}
}

func TestDecodeReason_MissingSegments(t *testing.T) {
	meta := DecodeReason("")
	if meta.JobType != nil || meta.HoursOverride != nil {
		t.Errorf("decode empty string: want both nil, got %+v", meta)
	}

	meta = DecodeReason("JOB_TYPE:2")
	if meta.JobType == nil || *meta.JobType != "2" {
		t.Errorf("job type = %v, want 2", meta.JobType)
	}
	if meta.HoursOverride != nil {
		t.Errorf("hours override = %v, want nil", *meta.HoursOverride)
	}
	if meta.IsHoursWorked() {
		t.Error("IsHoursWorked should be false without HOURS_WORKED segment")
	}
}

func TestDecodeReason_UnknownSegmentsIgnored(t *testing.T) {
	meta := DecodeReason("FOO:bar|JOB_TYPE:1|LEGACY_NOTE:abc|HOURS_WORKED:4.25")
	if meta.JobType == nil || *meta.JobType != "1" {
		t.Errorf("job type = %v, want 1", meta.JobType)
	}
	if meta.HoursOverride == nil || *meta.HoursOverride != 4.25 {
		t.Errorf("hours override = %v, want 4.25", meta.HoursOverride)
	}
}

func TestDecodeReason_NonNumericHours(t *testing.T) {
	// Giá trị giờ hỏng không được gây lỗi, chỉ trả về override nil để bên
	// gọi tính lại từ cặp giờ vào/ra
	meta := DecodeReason("JOB_TYPE:3|HOURS_WORKED:abc")
	if meta.JobType == nil || *meta.JobType != "3" {
		t.Errorf("job type = %v, want 3", meta.JobType)
	}
	if meta.HoursOverride != nil {
		t.Errorf("hours override = %v, want nil for non-numeric value", *meta.HoursOverride)
	}
}
