package app

import (
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
)

// DailyRequest asks for the summary of one project on one date. Now is the
// reference for open entries; nil means the service clock.
type DailyRequest struct {
	ProjectID string
	Date      time.Time
	Now       *time.Time
}

// WeeklyRequest covers Start and the six following days.
type WeeklyRequest struct {
	ProjectID string
	Start     time.Time
	Now       *time.Time
}

type MonthlyRequest struct {
	ProjectID string
	Year      int
	Month     time.Month
	Now       *time.Time
}

// DailySummary holds hours rounded to two decimals. TotalTime counts work
// intervals only; WorkTime is TotalTime minus PauseTime.
type DailySummary struct {
	ProjectID    string
	ProjectFound bool
	Date         time.Time
	TotalTime    float64
	WorkTime     float64
	PauseTime    float64
	ExpectedTime float64
	Status       domain.SummaryStatus
	OpenEntries  int
}

// WeeklySummary rolls up seven consecutive daily summaries. ExpectedTime is
// DailyHours*7 regardless of which weekdays are scheduled.
type WeeklySummary struct {
	ProjectID    string
	ProjectFound bool
	Start        time.Time
	End          time.Time
	DailyHours   int
	Days         []DailySummary
	TotalTime    float64
	WorkTime     float64
	PauseTime    float64
	ExpectedTime float64
	Status       domain.SummaryStatus
}

// MonthlySummary rolls up 7-day windows starting on the 1st. The last window
// may run past the end of the month.
type MonthlySummary struct {
	ProjectID    string
	ProjectFound bool
	Year         int
	Month        time.Month
	DaysInMonth  int
	DailyHours   int
	Weeks        []WeeklySummary
	TotalTime    float64
	WorkTime     float64
	PauseTime    float64
	ExpectedTime float64
	Status       domain.SummaryStatus
}
