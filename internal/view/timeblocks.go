package view

import (
	"strconv"
	"strings"

	"college-organizer/internal/model"
)

// pixelsPerHour fixes the vertical scale of the day canvas: 60px per hour
// over a 1440-unit 24-hour column.
const pixelsPerHour = 60.0

// TimeBlock places one timed task on the day canvas.
type TimeBlock struct {
	Task   model.Task `json:"task"`
	Top    float64    `json:"top"`
	Height float64    `json:"height"`
}

// TimeBlocks lays out the timed tasks of a single date. Tasks missing
// either time are excluded entirely; there is no fallback placement.
func TimeBlocks(tasks []model.Task, date string) []TimeBlock {
	var out []TimeBlock
	for _, t := range tasks {
		if t.Date != date || !t.Timed() {
			continue
		}
		start, ok := hourOf(*t.StartTime)
		if !ok {
			continue
		}
		end, ok := hourOf(*t.EndTime)
		if !ok {
			continue
		}
		out = append(out, TimeBlock{
			Task:   t,
			Top:    start * pixelsPerHour,
			Height: (end - start) * pixelsPerHour,
		})
	}
	return out
}

// hourOf converts "HH:MM" to a fractional hour.
func hourOf(hhmm string) (float64, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}
