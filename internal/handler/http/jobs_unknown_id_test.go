package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/jobwise/internal/app"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/mock"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/internal/validators"
	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// The job repository reports ids Postgres cannot parse as uuids with
// store.ErrJobNotFound; the whole chain must answer 404.
func TestJobRoutes_MalformedJobID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		expect func(repo *mock.MockJobRepository)
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/jobs/not-a-uuid",
			expect: func(repo *mock.MockJobRepository) {
				repo.EXPECT().GetJob(gomock.Any(), int64(testUserID), "not-a-uuid").Return(models.JobApplication{}, store.ErrJobNotFound)
			},
		},
		{
			name:   "patch analytics falls through to id",
			method: http.MethodPatch,
			target: "/api/jobs/analytics",
			body:   `{"notes":"x"}`,
			expect: func(repo *mock.MockJobRepository) {
				repo.EXPECT().GetJob(gomock.Any(), int64(testUserID), "analytics").Return(models.JobApplication{}, store.ErrJobNotFound)
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/jobs/not-a-uuid",
			expect: func(repo *mock.MockJobRepository) {
				repo.EXPECT().DeleteJob(gomock.Any(), int64(testUserID), "not-a-uuid").Return(store.ErrJobNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockJobRepository(ctrl)
			cache := mock.NewMockAnalyticsCache(ctrl)
			tt.expect(repo)

			h := NewHandler(&service.Services{
				AuthService:      &mockAuthService{},
				JobService:       service.NewJobService(repo, cache, validators.NewJobValidator(), utils.NewUUIDGenerator(), logger.Nop()),
				AnalyticsService: &mockAnalyticsService{},
				AppInfoService:   &mockAppInfoService{version: "v1.2.3"},
			}, 0, logger.Nop())

			rr := serve(t, h, tt.method, tt.target, tt.body, "good-token")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, app.MsgJobNotFound, messageOf(t, rr))
		})
	}
}
