// Package insight turns aggregate job-search metrics into short,
// human-readable observations using fixed threshold rules.
//
// Rules are evaluated in a fixed order and each contributes at most one
// insight. All comparisons are strict: a metric exactly at a threshold never
// produces an insight.
package insight

import "github.com/MKhiriev/jobwise/models"

const (
	strongInterviewRate = 30.0
	weakInterviewRate   = 15.0

	strongOfferRate = 20.0
	weakOfferRate   = 5.0

	slowResponseDays = 14

	highInterviewRatio = 0.4
)

var (
	strongInterviewConversion = models.Insight{
		Title:       "Strong interview conversion rate",
		Description: "Your application-to-interview rate is above average. Keep up the good work!",
	}
	improveTargeting = models.Insight{
		Title:       "Consider improving application targeting",
		Description: "Your interview rate is below average. Consider focusing on roles that better match your skills.",
	}
	excellentOfferConversion = models.Insight{
		Title:       "Excellent offer conversion rate",
		Description: "You're converting interviews to offers at a high rate. Your interview skills are strong!",
	}
	interviewPreparation = models.Insight{
		Title:       "Interview preparation opportunity",
		Description: "Consider practicing common interview questions and improving your interview skills.",
	}
	longResponseTimes = models.Insight{
		Title:       "Long response times",
		Description: "Companies are taking longer to respond. Consider following up after 1-2 weeks.",
	}
	highInterviewConversion = models.Insight{
		Title:       "High interview conversion",
		Description: "You're getting interviews for a large portion of your applications. Your resume is working well!",
	}
)

// Generate evaluates the threshold rules against summary and distribution and
// returns the resulting insights in rule order. The result is never nil.
func Generate(summary models.AnalyticsSummary, distribution []models.StatusCount) []models.Insight {
	insights := make([]models.Insight, 0, 4)

	switch {
	case summary.InterviewRate > strongInterviewRate:
		insights = append(insights, strongInterviewConversion)
	case summary.InterviewRate < weakInterviewRate:
		insights = append(insights, improveTargeting)
	}

	switch {
	case summary.OfferRate > strongOfferRate:
		insights = append(insights, excellentOfferConversion)
	case summary.OfferRate < weakOfferRate:
		insights = append(insights, interviewPreparation)
	}

	if summary.AvgResponseTime > slowResponseDays {
		insights = append(insights, longResponseTimes)
	}

	applied := bucketValue(distribution, string(models.StatusApplied))
	interviews := bucketValue(distribution, string(models.StatusInterview))
	if applied > 0 && interviews > 0 && float64(interviews)/float64(applied) > highInterviewRatio {
		insights = append(insights, highInterviewConversion)
	}

	return insights
}

// bucketValue returns the count of the first bucket called name, or 0.
func bucketValue(distribution []models.StatusCount, name string) int64 {
	for _, bucket := range distribution {
		if bucket.Name == name {
			return bucket.Value
		}
	}
	return 0
}
