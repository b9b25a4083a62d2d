package stats

import (
	"context"
	"net/http"

	httputils "github.com/laundrypro/go-laundry-service/internal/app/controller/http/utils"
	"github.com/laundrypro/go-laundry-service/internal/app/converter"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"go.uber.org/zap"
)

type StatsProvider interface {
	GetDashboardStats(ctx context.Context) (entity.DashboardStats, error)
}

type Stats struct {
	storage StatsProvider
}

func New(storage StatsProvider) Stats {
	return Stats{
		storage: storage,
	}
}

func (s *Stats) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		dashboardStats, err := s.storage.GetDashboardStats(ctx)
		if err != nil {
			zap.L().Error("error while getting dashboard stats", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertStatsToResponse(dashboardStats))
	}
}
