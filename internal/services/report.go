package services

import (
	"delivery-assignment-service/internal/domain"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

const reportHeader = "------------- Task Report -------------\n"

// ReportLine summarizes one driver's workload.
//
// FirstToLastDistance is the distance between the first and last assigned
// task only, not the length of the full route.
type ReportLine struct {
	Driver              domain.Driver
	LoadEstimate        float64
	TaskCount           int
	KnownDistance       float64
	FirstToLastDistance float64
	TaskIDs             []string
}

// BuildReport summarizes tasklists, heaviest load estimate first. Ties keep
// the order of lists. Every tasklist must contain at least one task.
func BuildReport(lists []*domain.Tasklist) ([]ReportLine, error) {
	sorted := slices.Clone(lists)
	slices.SortStableFunc(sorted, domain.CompareByLoad)

	out := make([]ReportLine, 0, len(sorted))
	for _, tl := range sorted {
		first, ok := tl.FirstAssignedTask()
		if !ok {
			return nil, fmt.Errorf("build report: driver %s: %w", tl.Driver().DisplayName(), ErrEmptyTasklist)
		}
		last, _ := tl.LastAssignedTask()

		tasks := tl.AssignedTasks()
		ids := make([]string, 0, len(tasks))
		for _, task := range tasks {
			ids = append(ids, task.ID)
		}

		out = append(out, ReportLine{
			Driver:              tl.Driver(),
			LoadEstimate:        tl.LoadEstimate(),
			TaskCount:           tl.TaskCount(),
			KnownDistance:       tl.KnownDistance(),
			FirstToLastDistance: domain.Distance(&first, last),
			TaskIDs:             ids,
		})
	}

	return out, nil
}

// FormatReport renders report lines as text, one driver per line:
//
//	<name>: estimate(<load>), assigned(<count>), total(<first-to-last distance>)
func FormatReport(lines []ReportLine) string {
	var sb strings.Builder
	sb.WriteString(reportHeader)
	for _, l := range lines {
		fmt.Fprintf(
			&sb,
			"%s: estimate(%s), assigned(%d), total(%s)\n",
			l.Driver.DisplayName(), formatFloat(l.LoadEstimate), l.TaskCount, formatFloat(l.FirstToLastDistance),
		)
	}
	return sb.String()
}

// formatFloat prints the shortest exact digits but never drops the fraction:
// 3 renders as "3.0", 2.5 as "2.5".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
