package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/es-debug/log-analyzer/internal/domain"
	"github.com/es-debug/log-analyzer/internal/stats"
)

var base = time.Date(2024, time.August, 31, 10, 0, 0, 0, time.UTC)

func record(request string, status int, size int64, offset time.Duration) domain.Record {
	return domain.Record{
		ClientAddress: "192.168.1.1",
		User:          "-",
		Time:          base.Add(offset),
		Request:       request,
		Status:        status,
		Size:          size,
		Referer:       "-",
		UserAgent:     "Mozilla/5.0",
	}
}

func threeRecords() []domain.Record {
	return []domain.Record{
		record("GET /index.html HTTP/1.1", 200, 500, 0),
		record("POST /submit HTTP/1.1", 404, 300, 5*time.Minute),
		record("GET /index.html HTTP/1.1", 200, 700, 10*time.Minute),
	}
}

func collect(records ...domain.Record) *stats.Stats {
	s := stats.New()
	for _, rec := range records {
		s.Collect(rec)
	}

	return s
}

func TestCollect(t *testing.T) {
	s := collect(threeRecords()...)

	assert.Equal(t, 3, s.TotalRequests())
	assert.InDelta(t, (500+300+700)/3.0, s.AverageResponseSize(), 0.001)
	assert.Equal(t, int64(700), s.Percentile95ResponseSize())

	assert.Equal(t, []domain.Resource{
		domain.NewResource("/index.html", 2),
		domain.NewResource("/submit", 1),
	}, s.TopResources(10))

	assert.Equal(t, map[int]int{200: 2, 404: 1}, s.StatusCodes())
	assert.Equal(t, map[string]int{"GET": 2, "POST": 1}, s.HTTPMethods())
	assert.Equal(t, []domain.Status{
		domain.NewStatus(200, 2),
		domain.NewStatus(404, 1),
	}, s.Statuses())

	minTime, ok := s.MinTimestamp()
	require.True(t, ok)
	assert.Equal(t, base, minTime)

	maxTime, ok := s.MaxTimestamp()
	require.True(t, ok)
	assert.Equal(t, base.Add(10*time.Minute), maxTime)
}

func TestEmpty(t *testing.T) {
	s := stats.New()

	assert.Equal(t, 0, s.TotalRequests())
	assert.Zero(t, s.AverageResponseSize())
	assert.Zero(t, s.Percentile95ResponseSize())
	assert.Empty(t, s.TopResources(10))
	assert.Empty(t, s.StatusCodes())
	assert.Empty(t, s.HTTPMethods())

	_, ok := s.MinTimestamp()
	assert.False(t, ok)

	_, ok = s.MaxTimestamp()
	assert.False(t, ok)
}

func TestPercentile95(t *testing.T) {
	tt := []struct {
		name  string
		sizes []int64
		want  int64
	}{
		{"single", []int64{42}, 42},
		{"unsorted three", []int64{500, 300, 700}, 700},
		{"twenty values", seq(1, 20), 19},
		{"hundred values", seq(1, 100), 95},
		{"hundred and one values", seq(1, 101), 96},
		{"duplicates", []int64{5, 5, 5, 5}, 5},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := stats.New()
			for _, size := range tc.sizes {
				s.Collect(record("GET / HTTP/1.1", 200, size, 0))
			}

			assert.Equal(t, tc.want, s.Percentile95ResponseSize())
		})
	}
}

func seq(from, to int64) []int64 {
	res := make([]int64, 0, to-from+1)
	for i := to; i >= from; i-- {
		res = append(res, i)
	}

	return res
}

func TestTopResourcesTieBreak(t *testing.T) {
	s := stats.New()

	for range 5 {
		s.Collect(record("GET /a HTTP/1.1", 200, 1, 0))
	}

	s.Collect(record("GET /c HTTP/1.1", 200, 1, 0))

	for range 5 {
		s.Collect(record("GET /b HTTP/1.1", 200, 1, 0))
	}

	assert.Equal(t, []domain.Resource{
		domain.NewResource("/a", 5),
		domain.NewResource("/b", 5),
	}, s.TopResources(2))

	assert.Len(t, s.TopResources(10), 3)
	assert.Empty(t, s.TopResources(0))
}

func TestMissingResource(t *testing.T) {
	s := collect(record("GET", 400, 1, 0))

	assert.Equal(t, []domain.Resource{domain.NewResource("", 1)}, s.TopResources(10))
	assert.Equal(t, map[string]int{"GET": 1}, s.HTTPMethods())
}

func TestLargeSizesDoNotOverflow(t *testing.T) {
	const size = int64(1) << 40

	s := stats.New()
	for range 4096 {
		s.Collect(record("GET /big HTTP/1.1", 200, size, 0))
	}

	assert.InDelta(t, float64(size), s.AverageResponseSize(), 1)
}

func TestMerge(t *testing.T) {
	records := []domain.Record{
		record("GET /a HTTP/1.1", 200, 10, time.Minute),
		record("GET /b HTTP/1.1", 200, 20, 2*time.Minute),
		record("POST /b HTTP/1.1", 500, 30, -time.Minute),
		record("GET /c HTTP/1.1", 404, 40, 3*time.Minute),
		record("GET /a HTTP/1.1", 200, 50, 0),
	}

	sequential := collect(records...)

	merged := collect(records[:2]...)
	merged.Merge(collect(records[2:]...))
	merged.Merge(stats.New())
	merged.Merge(nil)

	assert.Equal(t, sequential.TotalRequests(), merged.TotalRequests())
	assert.InDelta(t, sequential.AverageResponseSize(), merged.AverageResponseSize(), 0.001)
	assert.Equal(t, sequential.Percentile95ResponseSize(), merged.Percentile95ResponseSize())
	assert.Equal(t, sequential.TopResources(10), merged.TopResources(10))
	assert.Equal(t, sequential.StatusCodes(), merged.StatusCodes())
	assert.Equal(t, sequential.HTTPMethods(), merged.HTTPMethods())

	wantMin, _ := sequential.MinTimestamp()
	gotMin, _ := merged.MinTimestamp()
	assert.Equal(t, wantMin, gotMin)

	wantMax, _ := sequential.MaxTimestamp()
	gotMax, _ := merged.MaxTimestamp()
	assert.Equal(t, wantMax, gotMax)
}

func TestMergeIntoEmpty(t *testing.T) {
	merged := stats.New()
	merged.Merge(collect(threeRecords()...))

	assert.Equal(t, 3, merged.TotalRequests())

	minTime, ok := merged.MinTimestamp()
	require.True(t, ok)
	assert.Equal(t, base, minTime)
}
