package export

import (
	"bufio"
	"fmt"
	"io"
)

func writeMarkdown(w io.Writer, snap Snapshot) error {
	b := bufio.NewWriter(w)

	var total int64
	for _, d := range snap.Days {
		total += d.VolumeLb
	}

	fmt.Fprintf(b, "# Liftstats export: %s\n\n", snap.Username)
	fmt.Fprintf(b, "Exported at %s. %d workouts, %d lb lifted in total.\n\n",
		snap.ExportedAt.Format("2006-01-02 15:04 MST"), len(snap.Workouts), total)

	b.WriteString("## Workouts\n\n")
	if len(snap.Workouts) == 0 {
		b.WriteString("No workouts.\n\n")
	} else {
		b.WriteString("| Date | Title | Exercises | Sets | Volume (lb) |\n|------|-------|-----------|------|-------------|\n")
		for _, wo := range snap.Workouts {
			sets := 0
			for _, ex := range wo.Exercises {
				sets += len(ex.Sets)
			}
			fmt.Fprintf(b, "| %s | %s | %d | %d | %d |\n", wo.Date, escapeCell(wo.Title), len(wo.Exercises), sets, wo.VolumeLb)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Personal records\n\n")
	if len(snap.Records) == 0 {
		b.WriteString("No records.\n\n")
	} else {
		b.WriteString("| Exercise | Max weight (lb) | Reps | Date | Max set volume (lb) | Max session volume (lb) |\n|----------|-----------------|------|------|---------------------|-------------------------|\n")
		for _, r := range snap.Records {
			date := r.MaxWeightDate
			if date == "" {
				date = "-"
			}
			fmt.Fprintf(b, "| %s | %.1f | %d | %s | %.0f | %.0f |\n",
				escapeCell(r.Exercise), r.MaxWeightLb, r.MaxWeightReps, date, r.MaxSetVolumeLb, r.MaxSessionVolumeLb)
		}
		b.WriteString("\n")
	}

	b.WriteString("## PR history\n\n")
	if len(snap.PRs) == 0 {
		b.WriteString("No PR events.\n\n")
	} else {
		b.WriteString("| Date | Exercise | Type | Value | Previous | Delta |\n|------|----------|------|-------|----------|-------|\n")
		for _, pr := range snap.PRs {
			fmt.Fprintf(b, "| %s | %s | %s | %.1f | %.1f | %+.1f |\n",
				pr.Date, escapeCell(pr.Exercise), pr.Category, pr.Value, pr.PreviousBest, pr.Delta)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Weight log\n\n")
	if len(snap.WeightLog) == 0 {
		b.WriteString("No entries.\n")
	} else {
		b.WriteString("| Date | Weight (lb) |\n|------|-------------|\n")
		for _, en := range snap.WeightLog {
			fmt.Fprintf(b, "| %s | %.1f |\n", en.Date, en.WeightLb)
		}
	}

	return b.Flush()
}

func escapeCell(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '|':
			out = append(out, '\\', '|')
		case '\n', '\r':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
