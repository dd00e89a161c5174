// Package stats accumulates running statistics over admitted log records.
package stats

import (
	"math"
	"slices"
	"time"

	"github.com/es-debug/log-analyzer/internal/domain"
)

const percentile = 0.95

// Stats is not safe for concurrent writes. Use one Stats per producer and
// combine them with Merge.
type Stats struct {
	totalRequests int
	totalSize     int64
	sizes         []int64
	resources     counter[string]
	statuses      counter[int]
	methods       counter[string]
	minTime       *time.Time
	maxTime       *time.Time
}

func New() *Stats {
	return &Stats{
		sizes:     make([]int64, 0),
		resources: newCounter[string](),
		statuses:  newCounter[int](),
		methods:   newCounter[string](),
	}
}

func (s *Stats) Collect(rec domain.Record) {
	s.totalRequests++
	s.totalSize += rec.Size
	s.sizes = append(s.sizes, rec.Size)

	s.resources.add(rec.Resource(), 1)
	s.statuses.add(rec.Status, 1)
	s.methods.add(rec.Method(), 1)

	s.widen(rec.Time, rec.Time)
}

func (s *Stats) widen(lo, hi time.Time) {
	if s.minTime == nil || lo.Before(*s.minTime) {
		s.minTime = &lo
	}

	if s.maxTime == nil || hi.After(*s.maxTime) {
		s.maxTime = &hi
	}
}

// Merge folds other into s. Keys new to s are appended in other's
// first-seen order.
func (s *Stats) Merge(other *Stats) {
	if other == nil || other.totalRequests == 0 {
		return
	}

	s.totalRequests += other.totalRequests
	s.totalSize += other.totalSize
	s.sizes = append(s.sizes, other.sizes...)

	s.resources.merge(&other.resources)
	s.statuses.merge(&other.statuses)
	s.methods.merge(&other.methods)

	s.widen(*other.minTime, *other.maxTime)
}

func (s *Stats) TotalRequests() int {
	return s.totalRequests
}

func (s *Stats) AverageResponseSize() float64 {
	if s.totalRequests == 0 {
		return 0
	}

	return float64(s.totalSize) / float64(s.totalRequests)
}

// Percentile95ResponseSize uses the nearest-rank method: the element at
// index ceil(0.95*n)-1 of the sorted sizes.
func (s *Stats) Percentile95ResponseSize() int64 {
	if len(s.sizes) == 0 {
		return 0
	}

	sorted := slices.Clone(s.sizes)
	slices.Sort(sorted)

	idx := int(math.Ceil(percentile*float64(len(sorted)))) - 1

	return sorted[max(idx, 0)]
}

func (s *Stats) TopResources(limit int) []domain.Resource {
	keys := s.resources.top(limit)

	res := make([]domain.Resource, 0, len(keys))
	for _, key := range keys {
		res = append(res, domain.NewResource(key, s.resources.counts[key]))
	}

	return res
}

func (s *Stats) StatusCodes() map[int]int {
	return s.statuses.snapshot()
}

// Statuses returns every observed status code in ascending order.
func (s *Stats) Statuses() []domain.Status {
	codes := slices.Clone(s.statuses.order)
	slices.Sort(codes)

	res := make([]domain.Status, 0, len(codes))
	for _, code := range codes {
		res = append(res, domain.NewStatus(code, s.statuses.counts[code]))
	}

	return res
}

func (s *Stats) HTTPMethods() map[string]int {
	return s.methods.snapshot()
}

func (s *Stats) MinTimestamp() (time.Time, bool) {
	if s.minTime == nil {
		return time.Time{}, false
	}

	return *s.minTime, true
}

func (s *Stats) MaxTimestamp() (time.Time, bool) {
	if s.maxTime == nil {
		return time.Time{}, false
	}

	return *s.maxTime, true
}
