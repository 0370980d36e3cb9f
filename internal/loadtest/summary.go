package loadtest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary prints the request, percentile, failure and exception tables
// shown at the end of a run.
func (s *Stats) WriteSummary(w io.Writer) {
	now := s.Now()
	entries := append(s.Entries(), s.Total())

	fmt.Fprintln(w, "Request statistics")
	requests := newTable(w, []string{"Type", "Name", "# reqs", "# fails", "Avg", "Min", "Max", "Med", "req/s", "failures/s"})
	for _, e := range entries {
		requests.Append([]string{
			e.Method,
			e.Name,
			strconv.FormatInt(e.NumRequests, 10),
			fmt.Sprintf("%d(%.2f%%)", e.NumFailures, e.FailRatio()*100),
			formatMillis(e.AvgResponseTime()),
			formatMillis(e.MinResponseTime),
			formatMillis(e.MaxResponseTime),
			formatMillis(e.MedianResponseTime()),
			strconv.FormatFloat(e.RPS(now), 'f', 2, 64),
			strconv.FormatFloat(e.FailuresPerSecond(now), 'f', 2, 64),
		})
	}
	requests.Render()

	fmt.Fprintln(w, "Response time percentiles (ms)")
	header := []string{"Type", "Name"}
	for _, p := range s.percentiles {
		header = append(header, PercentileLabel(p))
	}
	header = append(header, "# reqs")
	percentiles := newTable(w, header)
	for _, e := range entries {
		row := []string{e.Method, e.Name}
		for _, p := range s.percentiles {
			row = append(row, formatMillis(e.Percentile(p)))
		}
		row = append(row, strconv.FormatInt(e.NumRequests, 10))
		percentiles.Append(row)
	}
	percentiles.Render()

	if failures := s.Failures(); len(failures) > 0 {
		fmt.Fprintln(w, "Error report")
		table := newTable(w, []string{"# occurrences", "Method", "Name", "Error"})
		for _, f := range failures {
			table.Append([]string{strconv.FormatInt(f.Occurrences, 10), f.Method, f.Name, f.Error})
		}
		table.Render()
	}

	if exceptions := s.Exceptions(); len(exceptions) > 0 {
		fmt.Fprintln(w, "Exceptions")
		table := newTable(w, []string{"# occurrences", "Task", "Error"})
		for _, e := range exceptions {
			table.Append([]string{strconv.FormatInt(e.Occurrences, 10), e.Task, e.Error})
		}
		table.Render()
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetCenterSeparator(" ")
	return table
}
