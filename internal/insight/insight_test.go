package insight

import (
	"testing"

	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distribution(applied, interview int64) []models.StatusCount {
	return []models.StatusCount{
		{Name: "Applied", Value: applied},
		{Name: "Interview", Value: interview},
		{Name: "Offer", Value: 0},
	}
}

func titles(insights []models.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, i := range insights {
		out = append(out, i.Title)
	}
	return out
}

func TestGenerate_AllRulesFireInOrder(t *testing.T) {
	summary := models.AnalyticsSummary{InterviewRate: 35, OfferRate: 3, AvgResponseTime: 20}

	got := Generate(summary, distribution(100, 45))

	require.Len(t, got, 4)
	assert.Equal(t, []string{
		"Strong interview conversion rate",
		"Interview preparation opportunity",
		"Long response times",
		"High interview conversion",
	}, titles(got))
}

func TestGenerate_ExactThresholdsProduceNothing(t *testing.T) {
	summary := models.AnalyticsSummary{InterviewRate: 30, OfferRate: 20, AvgResponseTime: 14}

	got := Generate(summary, distribution(100, 40))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerate_LowerThresholdsProduceNothing(t *testing.T) {
	summary := models.AnalyticsSummary{InterviewRate: 15, OfferRate: 5, AvgResponseTime: 0}

	assert.Empty(t, Generate(summary, nil))
}

func TestGenerate_MiddleBandProducesNothing(t *testing.T) {
	summary := models.AnalyticsSummary{InterviewRate: 22.5, OfferRate: 12, AvgResponseTime: 7}

	assert.Empty(t, Generate(summary, distribution(10, 2)))
}

func TestGenerate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		summary models.AnalyticsSummary
		dist    []models.StatusCount
		want    []string
	}{
		{
			name:    "weak interview rate",
			summary: models.AnalyticsSummary{InterviewRate: 14.9, OfferRate: 10},
			want:    []string{"Consider improving application targeting"},
		},
		{
			name:    "strong offer rate",
			summary: models.AnalyticsSummary{InterviewRate: 20, OfferRate: 20.1},
			want:    []string{"Excellent offer conversion rate"},
		},
		{
			name:    "slow responses",
			summary: models.AnalyticsSummary{InterviewRate: 20, OfferRate: 10, AvgResponseTime: 15},
			want:    []string{"Long response times"},
		},
		{
			name:    "high ratio only",
			summary: models.AnalyticsSummary{InterviewRate: 20, OfferRate: 10},
			dist:    distribution(10, 5),
			want:    []string{"High interview conversion"},
		},
		{
			name:    "no applied bucket",
			summary: models.AnalyticsSummary{InterviewRate: 20, OfferRate: 10},
			dist:    []models.StatusCount{{Name: "Interview", Value: 5}},
			want:    []string{},
		},
		{
			name:    "zero interviews",
			summary: models.AnalyticsSummary{InterviewRate: 20, OfferRate: 10},
			dist:    distribution(10, 0),
			want:    []string{},
		},
		{
			name:    "empty dashboard",
			summary: models.AnalyticsSummary{},
			want:    []string{"Consider improving application targeting", "Interview preparation opportunity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Generate(tt.summary, tt.dist)))
		})
	}
}

func TestGenerate_FirstMatchingBucketWins(t *testing.T) {
	dist := []models.StatusCount{
		{Name: "Applied", Value: 10},
		{Name: "Interview", Value: 5},
		{Name: "Applied", Value: 1000},
	}
	summary := models.AnalyticsSummary{InterviewRate: 20, OfferRate: 10}

	assert.Equal(t, []string{"High interview conversion"}, titles(Generate(summary, dist)))
}
