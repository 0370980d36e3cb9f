package loadtest

import (
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/metrics"
)

// DefaultPercentiles are reported when none are configured.
var DefaultPercentiles = []float64{0.50, 0.60, 0.70, 0.80, 0.90, 0.95, 0.99, 1.0}

// AggregatedName is the name of the row summing every entry.
const AggregatedName = "Aggregated"

// StatsEntry accumulates the requests of one (method, name) pair.
type StatsEntry struct {
	Method             string
	Name               string
	NumRequests        int64
	NumFailures        int64
	TotalResponseTime  time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalContentLength int64
	StartTime          time.Time
	LastRequestTime    time.Time

	// responseTimes buckets rounded milliseconds to counts.
	responseTimes map[int64]int64
}

func newStatsEntry(method, name string, start time.Time) *StatsEntry {
	return &StatsEntry{
		Method:        method,
		Name:          name,
		StartTime:     start,
		responseTimes: make(map[int64]int64),
	}
}

func (e *StatsEntry) add(r metrics.Request, at time.Time) {
	e.NumRequests++
	if r.Failed() {
		e.NumFailures++
	}
	if e.NumRequests == 1 || r.ResponseTime < e.MinResponseTime {
		e.MinResponseTime = r.ResponseTime
	}
	if r.ResponseTime > e.MaxResponseTime {
		e.MaxResponseTime = r.ResponseTime
	}
	e.TotalResponseTime += r.ResponseTime
	e.TotalContentLength += r.ResponseLength
	e.LastRequestTime = at
	e.responseTimes[roundResponseTime(r.ResponseTime)]++
}

func (e *StatsEntry) merge(o *StatsEntry) {
	if o.NumRequests == 0 {
		return
	}
	if e.NumRequests == 0 || o.MinResponseTime < e.MinResponseTime {
		e.MinResponseTime = o.MinResponseTime
	}
	if o.MaxResponseTime > e.MaxResponseTime {
		e.MaxResponseTime = o.MaxResponseTime
	}
	if e.StartTime.IsZero() || o.StartTime.Before(e.StartTime) {
		e.StartTime = o.StartTime
	}
	if o.LastRequestTime.After(e.LastRequestTime) {
		e.LastRequestTime = o.LastRequestTime
	}
	e.NumRequests += o.NumRequests
	e.NumFailures += o.NumFailures
	e.TotalResponseTime += o.TotalResponseTime
	e.TotalContentLength += o.TotalContentLength
	for ms, n := range o.responseTimes {
		e.responseTimes[ms] += n
	}
}

func (e *StatsEntry) clone() StatsEntry {
	c := *e
	c.responseTimes = make(map[int64]int64, len(e.responseTimes))
	for ms, n := range e.responseTimes {
		c.responseTimes[ms] = n
	}
	return c
}

// roundResponseTime rounds to the nearest millisecond and keeps two
// significant digits above 100ms so the bucket map stays small on long runs.
func roundResponseTime(d time.Duration) int64 {
	ms := int64(math.Round(float64(d) / float64(time.Millisecond)))
	switch {
	case ms < 100:
		return ms
	case ms < 1000:
		return int64(math.Round(float64(ms)/10)) * 10
	case ms < 10000:
		return int64(math.Round(float64(ms)/100)) * 100
	default:
		return int64(math.Round(float64(ms)/1000)) * 1000
	}
}

// AvgResponseTime is the mean response time, zero without requests.
func (e StatsEntry) AvgResponseTime() time.Duration {
	if e.NumRequests == 0 {
		return 0
	}
	return e.TotalResponseTime / time.Duration(e.NumRequests)
}

// AvgContentLength is the mean response size in bytes.
func (e StatsEntry) AvgContentLength() int64 {
	if e.NumRequests == 0 {
		return 0
	}
	return e.TotalContentLength / e.NumRequests
}

// FailRatio is the share of failed requests in [0, 1].
func (e StatsEntry) FailRatio() float64 {
	if e.NumRequests == 0 {
		return 0
	}
	return float64(e.NumFailures) / float64(e.NumRequests)
}

// Percentile returns the response time below which a share p of requests
// completed, rounded to the bucket it falls in.
func (e StatsEntry) Percentile(p float64) time.Duration {
	if e.NumRequests == 0 {
		return 0
	}
	keys := make([]int64, 0, len(e.responseTimes))
	for ms := range e.responseTimes {
		keys = append(keys, ms)
	}
	slices.Sort(keys)

	target := int64(math.Ceil(p * float64(e.NumRequests)))
	if target < 1 {
		target = 1
	}
	var seen int64
	for _, ms := range keys {
		seen += e.responseTimes[ms]
		if seen >= target {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(keys[len(keys)-1]) * time.Millisecond
}

// MedianResponseTime is Percentile(0.5).
func (e StatsEntry) MedianResponseTime() time.Duration {
	return e.Percentile(0.5)
}

// RPS is the request rate between the first request and now.
func (e StatsEntry) RPS(now time.Time) float64 {
	elapsed := now.Sub(e.StartTime).Seconds()
	if e.NumRequests == 0 || elapsed <= 0 {
		return 0
	}
	return float64(e.NumRequests) / elapsed
}

// FailuresPerSecond is the failure rate between the first request and now.
func (e StatsEntry) FailuresPerSecond(now time.Time) float64 {
	elapsed := now.Sub(e.StartTime).Seconds()
	if e.NumFailures == 0 || elapsed <= 0 {
		return 0
	}
	return float64(e.NumFailures) / elapsed
}

// FailureEntry groups identical request errors.
type FailureEntry struct {
	Method      string
	Name        string
	Error       string
	Occurrences int64
}

// ExceptionEntry groups identical task errors that were not request failures.
type ExceptionEntry struct {
	Task        string
	Error       string
	Occurrences int64
}

type entryKey struct{ method, name string }

type failureKey struct{ method, name, err string }

type exceptionKey struct{ task, err string }

// Stats aggregates request events of a load run. It implements
// metrics.Recorder and is safe for concurrent use.
type Stats struct {
	mu          sync.Mutex
	percentiles []float64
	start       time.Time
	now         func() time.Time
	entries     map[entryKey]*StatsEntry
	failures    map[failureKey]int64
	exceptions  map[exceptionKey]int64
	users       int
}

var _ metrics.Recorder = (*Stats)(nil)

// NewStats creates an empty Stats. Nil percentiles fall back to
// DefaultPercentiles.
func NewStats(percentiles []float64) *Stats {
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	return &Stats{
		percentiles: slices.Clone(percentiles),
		start:       time.Now(),
		now:         time.Now,
		entries:     make(map[entryKey]*StatsEntry),
		failures:    make(map[failureKey]int64),
		exceptions:  make(map[exceptionKey]int64),
	}
}

// Percentiles returns the reported percentiles.
func (s *Stats) Percentiles() []float64 {
	return slices.Clone(s.percentiles)
}

// RecordRequest adds r to its (method, name) entry.
func (s *Stats) RecordRequest(r metrics.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := entryKey{r.Type, r.Name}
	e, ok := s.entries[key]
	if !ok {
		e = newStatsEntry(r.Type, r.Name, now)
		s.entries[key] = e
	}
	e.add(r, now)

	if r.Err != nil {
		s.failures[failureKey{r.Type, r.Name, r.Err.Error()}]++
	}
}

// RecordException counts a task error that is not a request failure.
func (s *Stats) RecordException(task string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions[exceptionKey{task, err.Error()}]++
}

// SetUserCount records the number of running virtual users.
func (s *Stats) SetUserCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = n
}

// UserCount returns the number of running virtual users.
func (s *Stats) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

// Entries returns a copy of every entry sorted by name, then method.
func (s *Stats) Entries() []StatsEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StatsEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Total returns the Aggregated row.
func (s *Stats) Total() StatsEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := newStatsEntry("", AggregatedName, time.Time{})
	for _, e := range s.entries {
		total.merge(e)
	}
	if total.StartTime.IsZero() {
		total.StartTime = s.start
	}
	return total.clone()
}

// Failures returns request errors, most frequent first.
func (s *Stats) Failures() []FailureEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FailureEntry, 0, len(s.failures))
	for k, n := range s.failures {
		out = append(out, FailureEntry{Method: k.method, Name: k.name, Error: k.err, Occurrences: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Name+out[i].Error < out[j].Name+out[j].Error
	})
	return out
}

// Exceptions returns task errors, most frequent first.
func (s *Stats) Exceptions() []ExceptionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ExceptionEntry, 0, len(s.exceptions))
	for k, n := range s.exceptions {
		out = append(out, ExceptionEntry{Task: k.task, Error: k.err, Occurrences: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Task+out[i].Error < out[j].Task+out[j].Error
	})
	return out
}

// Now returns the clock reading used for rates.
func (s *Stats) Now() time.Time {
	return s.now()
}
