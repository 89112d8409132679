package service

import (
	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
)

// ClientServices bundles the terminal client's services.
type ClientServices struct {
	AuthService      ClientAuthService
	AnalyticsService ClientAnalyticsService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		AnalyticsService: NewClientAnalyticsService(serverAdapter, logger),
	}
}
