package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	profilesExtractedTotal      atomic.Uint64
	extractionFailedTotal       atomic.Uint64
	matchRequestsTotal          atomic.Uint64
	recommendationRequestsTotal atomic.Uint64

	matchDuration = newHistogram([]float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250})
)

// IncProfilesExtracted counts a résumé successfully turned into a profile.
func IncProfilesExtracted() {
	profilesExtractedTotal.Add(1)
}

// IncExtractionFailed counts an upload that failed to decode or extract.
func IncExtractionFailed() {
	extractionFailedTotal.Add(1)
}

// IncMatchRequests counts a scoring request.
func IncMatchRequests() {
	matchRequestsTotal.Add(1)
}

// IncRecommendationRequests counts a learning recommendation request.
func IncRecommendationRequests() {
	recommendationRequestsTotal.Add(1)
}

// ObserveMatchDurationMs records a scoring duration in milliseconds.
func ObserveMatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	matchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "profiles_extracted_total", "Total resumes turned into candidate profiles", profilesExtractedTotal.Load())
	writeCounter(&buf, "extraction_failed_total", "Total resume uploads that failed to decode or extract", extractionFailedTotal.Load())
	writeCounter(&buf, "match_requests_total", "Total job match requests", matchRequestsTotal.Load())
	writeCounter(&buf, "recommendation_requests_total", "Total learning recommendation requests", recommendationRequestsTotal.Load())
	writeHistogram(&buf, "match_duration_ms", "Job scoring duration in milliseconds", matchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe adds value to the first bucket whose bound covers it; Render accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
