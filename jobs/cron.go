package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DanglingSessionFlagger định nghĩa interface cho việc rà soát các phiên
// chấm công còn mở quá lâu
type DanglingSessionFlagger interface {
	FlagDanglingSessions(m *melody.Melody) (int, error)
}

var danglingFlagger DanglingSessionFlagger

// SetDanglingSessionFlagger thiết lập implementation cho DanglingSessionFlagger
func SetDanglingSessionFlagger(flagger DanglingSessionFlagger) {
	danglingFlagger = flagger
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h30 mỗi ngày: đánh dấu các phiên quên chấm ra
	_, err := c.AddFunc("30 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang rà soát phiên chấm công còn mở lúc: %v", now)
		if danglingFlagger == nil {
			log.Printf("Lỗi: DanglingSessionFlagger chưa được thiết lập")
			return
		}
		count, err := danglingFlagger.FlagDanglingSessions(m)
		if err != nil {
			log.Printf("Lỗi khi rà soát phiên chấm công: %v", err)
			return
		}
		log.Printf("Đã chuyển %d phiên chấm công mở quá hạn về chờ duyệt", count)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
