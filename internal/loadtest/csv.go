package loadtest

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// CSV file suffixes appended to the configured prefix.
const (
	StatsFileSuffix      = "_stats.csv"
	HistoryFileSuffix    = "_stats_history.csv"
	FailuresFileSuffix   = "_failures.csv"
	ExceptionsFileSuffix = "_exceptions.csv"
)

// CSVWriter dumps Stats snapshots to CSV files named after a prefix.
// The stats, failures and exceptions files are rewritten on every snapshot;
// the history file gets one Aggregated row appended.
type CSVWriter struct {
	prefix         string
	stats          *Stats
	historyStarted bool
}

// NewCSVWriter writes files named prefix + suffix.
func NewCSVWriter(prefix string, stats *Stats) *CSVWriter {
	return &CSVWriter{prefix: prefix, stats: stats}
}

// Run writes a snapshot every interval until ctx is done, then writes a
// final one.
func (w *CSVWriter) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.WriteSnapshot()
		case <-ticker.C:
			if err := w.WriteSnapshot(); err != nil {
				return err
			}
		}
	}
}

// WriteSnapshot writes every CSV file once.
func (w *CSVWriter) WriteSnapshot() error {
	now := w.stats.Now()
	if err := w.writeStats(now); err != nil {
		return err
	}
	if err := w.writeFailures(); err != nil {
		return err
	}
	if err := w.writeExceptions(); err != nil {
		return err
	}
	return w.appendHistory(now)
}

func (w *CSVWriter) percentileHeaders() []string {
	out := make([]string, 0, len(w.stats.percentiles))
	for _, p := range w.stats.percentiles {
		out = append(out, PercentileLabel(p))
	}
	return out
}

// PercentileLabel renders 0.95 as "95%".
func PercentileLabel(p float64) string {
	return strconv.FormatFloat(math.Round(p*10000)/100, 'f', -1, 64) + "%"
}

func (w *CSVWriter) statsRow(e StatsEntry, now time.Time) []string {
	row := []string{
		e.Method,
		e.Name,
		strconv.FormatInt(e.NumRequests, 10),
		strconv.FormatInt(e.NumFailures, 10),
		formatMillis(e.MedianResponseTime()),
		formatMillis(e.AvgResponseTime()),
		formatMillis(e.MinResponseTime),
		formatMillis(e.MaxResponseTime),
		strconv.FormatInt(e.AvgContentLength(), 10),
		strconv.FormatFloat(e.RPS(now), 'f', 6, 64),
		strconv.FormatFloat(e.FailuresPerSecond(now), 'f', 6, 64),
	}
	for _, p := range w.stats.percentiles {
		row = append(row, formatMillis(e.Percentile(p)))
	}
	return row
}

func (w *CSVWriter) writeStats(now time.Time) error {
	header := append([]string{
		"Type", "Name", "Request Count", "Failure Count",
		"Median Response Time", "Average Response Time",
		"Min Response Time", "Max Response Time",
		"Average Content Size", "Requests/s", "Failures/s",
	}, w.percentileHeaders()...)

	rows := [][]string{header}
	for _, e := range w.stats.Entries() {
		rows = append(rows, w.statsRow(e, now))
	}
	rows = append(rows, w.statsRow(w.stats.Total(), now))

	return writeCSVFile(w.prefix+StatsFileSuffix, rows)
}

func (w *CSVWriter) writeFailures() error {
	rows := [][]string{{"Method", "Name", "Error", "Occurrences"}}
	for _, f := range w.stats.Failures() {
		rows = append(rows, []string{f.Method, f.Name, f.Error, strconv.FormatInt(f.Occurrences, 10)})
	}
	return writeCSVFile(w.prefix+FailuresFileSuffix, rows)
}

func (w *CSVWriter) writeExceptions() error {
	rows := [][]string{{"Task", "Error", "Occurrences"}}
	for _, e := range w.stats.Exceptions() {
		rows = append(rows, []string{e.Task, e.Error, strconv.FormatInt(e.Occurrences, 10)})
	}
	return writeCSVFile(w.prefix+ExceptionsFileSuffix, rows)
}

func (w *CSVWriter) appendHistory(now time.Time) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if !w.historyStarted {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(w.prefix+HistoryFileSuffix, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open history csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if !w.historyStarted {
		header := append([]string{"Timestamp", "User Count", "Type", "Name", "Requests/s", "Failures/s"}, w.percentileHeaders()...)
		header = append(header, "Total Request Count", "Total Failure Count", "Total Median Response Time",
			"Total Average Response Time", "Total Min Response Time", "Total Max Response Time", "Total Average Content Size")
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write history header: %w", err)
		}
	}

	total := w.stats.Total()
	row := []string{
		strconv.FormatInt(now.Unix(), 10),
		strconv.Itoa(w.stats.UserCount()),
		"",
		AggregatedName,
		strconv.FormatFloat(total.RPS(now), 'f', 6, 64),
		strconv.FormatFloat(total.FailuresPerSecond(now), 'f', 6, 64),
	}
	for _, p := range w.stats.percentiles {
		row = append(row, formatMillis(total.Percentile(p)))
	}
	row = append(row,
		strconv.FormatInt(total.NumRequests, 10),
		strconv.FormatInt(total.NumFailures, 10),
		formatMillis(total.MedianResponseTime()),
		formatMillis(total.AvgResponseTime()),
		formatMillis(total.MinResponseTime),
		formatMillis(total.MaxResponseTime),
		strconv.FormatInt(total.AvgContentLength(), 10),
	)
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write history row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush history csv: %w", err)
	}

	w.historyStarted = true
	return nil
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
