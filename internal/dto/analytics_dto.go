package dto

// CategoryScore is the mean progress across one of the four fixed radar
// categories.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// FocusCourse is a started-but-unfinished course surfaced as a focus area.
// Order follows the underlying course collection, not progress.
type FocusCourse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Progress   int    `json:"progress"`
	ImageColor string `json:"image_color"`
}

// WeeklyDay is one day in the 7-day activity series.
type WeeklyDay struct {
	Date  string  `json:"date"`
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

// AnalyticsResponse is the display-ready analytics overview.
type AnalyticsResponse struct {
	TotalHours          float64         `json:"total_hours"`
	AverageProgress     int             `json:"average_progress"`
	ActiveCourses       int             `json:"active_courses"`
	CategoryPerformance []CategoryScore `json:"category_performance"`
	FocusAreas          []FocusCourse   `json:"focus_areas"`
	WeeklyActivity      []WeeklyDay     `json:"weekly_activity"`
}
