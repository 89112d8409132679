package models

import "time"

// Period selects the time window of an analytics request.
type Period string

const (
	PeriodLast30Days Period = "last30days"
	PeriodLast90Days Period = "last90days"
	PeriodAllTime    Period = "alltime"
)

// Periods lists every supported period in display order.
var Periods = []Period{PeriodLast30Days, PeriodLast90Days, PeriodAllTime}

// ParsePeriod converts a query value into a [Period]. An empty value selects
// [PeriodLast30Days].
func ParsePeriod(value string) (Period, bool) {
	if value == "" {
		return PeriodLast30Days, true
	}
	for _, p := range Periods {
		if Period(value) == p {
			return p, true
		}
	}
	return "", false
}

// Since returns the lower bound of the period relative to now, or nil for
// [PeriodAllTime].
func (p Period) Since(now time.Time) *time.Time {
	var since time.Time
	switch p {
	case PeriodLast30Days:
		since = now.AddDate(0, 0, -30)
	case PeriodLast90Days:
		since = now.AddDate(0, 0, -90)
	default:
		return nil
	}
	return &since
}

// AnalyticsQuery scopes an aggregation to one user and an optional lower
// bound on applied_at.
type AnalyticsQuery struct {
	UserID int64
	Since  *time.Time
}

// AnalyticsSummary holds the headline metrics of the dashboard.
type AnalyticsSummary struct {
	TotalApplications int64 `json:"totalApplications"`

	// InterviewRate is the percentage of applications that reached an
	// interview (Interview or Offer).
	InterviewRate float64 `json:"interviewRate"`

	// OfferRate is the percentage of interviewed applications that reached
	// an offer.
	OfferRate float64 `json:"offerRate"`

	// AvgResponseTime is the mean number of whole days between applying and
	// the first response, over applications that got one.
	AvgResponseTime int64 `json:"avgResponseTime"`
}

// StatusCount is one bucket of the status distribution.
type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// TimePoint is the number of applications sent on one day.
type TimePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RoleCount is the number of applications sent for one role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// Analytics is the response of GET /api/jobs/analytics.
type Analytics struct {
	Period             Period           `json:"period"`
	Summary            AnalyticsSummary `json:"summary"`
	StatusDistribution []StatusCount    `json:"statusDistribution"`
	TimeData           []TimePoint      `json:"timeData"`
	RoleData           []RoleCount      `json:"roleData"`
	Insights           []Insight        `json:"insights"`
}

// Insight is a short human-readable observation derived from the summary.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
