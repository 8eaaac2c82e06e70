package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hrm/models"
)

// ScoredWorker là kết quả tìm kiếm nhân viên kèm điểm phù hợp
type ScoredWorker struct {
	Worker models.Worker `json:"worker"`
	Score  int           `json:"score"`
}

// Hàm chuẩn hóa chuỗi: bỏ dấu để gõ không dấu vẫn khớp tên có dấu
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareNameList gom danh sách tên đã chuẩn hóa cho closestmatch
func prepareNameList(workers []models.Worker) []string {
	uniqueValues := make(map[string]bool)
	for _, w := range workers {
		if w.Name != "" {
			uniqueValues[normalizeInput(w.Name)] = true
		}
	}

	names := make([]string, 0, len(uniqueValues))
	for name := range uniqueValues {
		names = append(names, name)
	}
	return names
}

// calculateWorkerScore tính điểm phù hợp của một nhân viên với query
func calculateWorkerScore(query string, worker models.Worker, cmName *closestmatch.ClosestMatch) int {
	score := 0
	normalizedName := normalizeInput(worker.Name)

	if strings.Contains(normalizedName, query) {
		score += 20
	}
	if cmName.Closest(query) == normalizedName {
		score += 13
	}
	if calculateSimilarity(query, normalizedName) > 0.7 {
		score += 10
	}
	if worker.Department != "" && strings.Contains(normalizeInput(worker.Department), query) {
		score += 5
	}
	return score
}

// SearchWorkers chấm điểm và xếp hạng nhân viên theo query gõ tự do
// (chấp nhận không dấu, sai chính tả nhẹ). Chỉ trả về nhân viên có điểm > 0.
func SearchWorkers(query string, workers []models.Worker) []ScoredWorker {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		results := make([]ScoredWorker, 0, len(workers))
		for _, w := range workers {
			results = append(results, ScoredWorker{Worker: w})
		}
		return results
	}

	cmName := createMatcher(prepareNameList(workers))

	scoreCh := make(chan ScoredWorker, len(workers))
	var wg sync.WaitGroup
	for _, worker := range workers {
		wg.Add(1)
		go func(worker models.Worker) {
			defer wg.Done()
			score := calculateWorkerScore(normalizedQuery, worker, cmName)
			if score > 0 {
				scoreCh <- ScoredWorker{Worker: worker, Score: score}
			}
		}(worker)
	}
	wg.Wait()
	close(scoreCh)

	var results []ScoredWorker
	for scored := range scoreCh {
		results = append(results, scored)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Worker.ID < results[j].Worker.ID
	})
	return results
}
