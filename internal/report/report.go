package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	colorCyan = lipgloss.Color("#8BE9FD")
	colorGray = lipgloss.Color("#6272A4")
)

// Render writes a schedule as a title, a Gantt line and a per-process table
// with the averages in the footer.
func Render(w io.Writer, response responses.ScheduleResponse) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle := r.NewStyle().Foreground(colorGray)

	title := schedulers.Algorithm(response.Algorithm).DisplayName()
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if response.TimeQuantum > 0 {
		fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Time quantum:"), response.TimeQuantum)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Gantt:"), Gantt(response))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "CT", "TaT", "WT"})
	for _, d := range response.Details {
		table.Append([]string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
	})
	table.Render()
	return nil
}

// Gantt renders the timeline as "| P1 0-2 | P2 2-4 |".
func Gantt(response responses.ScheduleResponse) string {
	if len(response.Timeline) == 0 {
		return "|"
	}
	var b strings.Builder
	for _, s := range response.Timeline {
		fmt.Fprintf(&b, "| P%d %d-%d ", s.ProcessId, s.Start, s.End)
	}
	b.WriteString("|")
	return b.String()
}

// RenderComparison writes each schedule followed by a summary of the averages.
func RenderComparison(w io.Writer, all []responses.ScheduleResponse) error {
	for _, response := range all {
		if err := Render(w, response); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg TaT", "Avg WT", "Total"})
	for _, response := range all {
		table.Append([]string{
			response.Algorithm,
			fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", response.AverageWaitingTime),
			strconv.Itoa(response.TotalTime),
		})
	}
	table.Render()
	return nil
}

// ExportFileName is <algorithm>-YYYYMMDD-HHMMSS.txt.
func ExportFileName(algorithm string, now time.Time) string {
	return fmt.Sprintf("%s-%s.txt", algorithm, now.Format("20060102-150405"))
}

// Export writes the rendering of response into dir and returns the file path.
func Export(dir string, response responses.ScheduleResponse, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(response.Algorithm, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := Render(f, response); err != nil {
		f.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
