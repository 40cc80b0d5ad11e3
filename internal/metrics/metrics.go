package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	DigestsGenerated    int64
	SourcesFailed       int64
	InvalidDates        int64
	ArticlesEnriched    int64
	SuccessfulBriefs    int64
	FailedBriefs        int64
	InsufficientContent int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = New()

func New() *Metrics {
	return &Metrics{IsHealthy: true}
}

func (m *Metrics) IncrementDigestsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestsGenerated++
}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) IncrementInvalidDates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidDates++
}

func (m *Metrics) IncrementArticlesEnriched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesEnriched++
}

func (m *Metrics) IncrementSuccessfulBriefs() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuccessfulBriefs++
}

func (m *Metrics) IncrementFailedBriefs() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailedBriefs++
}

func (m *Metrics) IncrementInsufficientContent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsufficientContent++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.IsHealthy
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"digests_generated":          m.DigestsGenerated,
		"sources_failed":             m.SourcesFailed,
		"invalid_dates":              m.InvalidDates,
		"articles_enriched":          m.ArticlesEnriched,
		"successful_briefs":          m.SuccessfulBriefs,
		"failed_briefs":              m.FailedBriefs,
		"insufficient_content":       m.InsufficientContent,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              formatTime(m.LastRunTime),
		"last_error_time":            formatTime(m.LastErrorTime),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
