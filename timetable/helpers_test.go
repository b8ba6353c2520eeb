package timetable

import "github.com/tsawler/vigilia/model"

// buildTimetablePage constructs a canonical timetable page: five weekday
// headers at y=700, the person's name above the header band, boilerplate
// tokens, and period row labels 1..rows at x=50 descending from y=660 in
// steps of 40. Lesson fragments are added by the callers.
func buildTimetablePage(name string, rows int) *model.Page {
	page := model.NewPage(1)

	page.AddFragment("KRÉTA", 60, 770)
	page.AddFragment("37. hét", 400, 755)
	if name != "" {
		page.AddFragment(name, 200, 740)
	}

	xs := []float64{120, 220, 320, 420, 520}
	for i, day := range model.Weekdays {
		page.AddFragment(day, xs[i], 700)
	}

	for p := 1; p <= rows; p++ {
		page.AddFragment(periodLabel(p), 50, rowY(p))
	}

	return page
}

// rowY returns the canonical Y coordinate of a period row label.
func rowY(period int) float64 {
	return 660 - 40*float64(period-1)
}

// dayX returns the canonical X coordinate of a weekday column header.
func dayX(day string) float64 {
	xs := map[string]float64{
		"Hétfő": 120, "Kedd": 220, "Szerda": 320, "Csütörtök": 420, "Péntek": 520,
	}
	return xs[day]
}

func periodLabel(p int) string {
	return string(rune('0'+p)) + "."
}

// addLesson places a content fragment in the middle of the (day, period)
// cell box.
func addLesson(page *model.Page, day string, period int) {
	page.AddFragment("9.A Matematika", dayX(day)+10, rowY(period)-10)
}
