package service

//go:generate mockgen -source=service.go -destination=mocks/store_mock.go -package=mocks Store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"kisan/internal/logistics"
	"kisan/internal/logistics/metrics"
	"kisan/internal/logistics/models"
	"kisan/internal/logistics/service/mocks"
	"kisan/internal/logistics/store"
	dErrors "kisan/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.metrics = metrics.New(prometheus.NewRegistry())

	st, err := store.NewDefault()
	s.Require().NoError(err)
	s.service = New(st,
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func (s *ServiceSuite) TestProjectByID() {
	s.Run("known processor", func() {
		proj, err := s.service.ProjectByID(s.ctx, ProjectRequest{
			ProcessorID: "cuttack-oilseed",
			Crop:        "groundnut",
			Quantity:    100,
		})
		s.Require().NoError(err)
		s.Equal(6850, proj.PurchasePrice)
		s.Equal(7878, proj.SellingPrice)
		s.Equal(models.VehicleTruck, proj.Vehicle)
		s.InDelta(19.5, proj.DistanceKm, 1)
		s.Positive(proj.Profit)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Projections.WithLabelValues("truck")), 0)
	})

	s.Run("unknown processor is not found", func() {
		_, err := s.service.ProjectByID(s.ctx, ProjectRequest{ProcessorID: "nowhere", Crop: "groundnut", Quantity: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.InDelta(1, testutil.ToFloat64(s.metrics.ProcessorLookups.WithLabelValues("not_found")), 0)
	})

	s.Run("crop the processor does not handle", func() {
		_, err := s.service.ProjectByID(s.ctx, ProjectRequest{ProcessorID: "jagatsinghpur-rice", Crop: "groundnut", Quantity: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("zero quantity", func() {
		proj, err := s.service.ProjectByID(s.ctx, ProjectRequest{ProcessorID: "cuttack-oilseed", Crop: "groundnut"})
		s.Require().NoError(err)
		s.Zero(proj.Profit)
		s.Zero(proj.TotalCost)
		s.Zero(proj.Revenue)
		s.Equal(1, proj.EstimatedDeliveryDays)
	})

	s.Run("reference override", func() {
		at := models.Coordinate{Lat: 20.4625, Lon: 85.8830}
		proj, err := s.service.ProjectByID(s.ctx, ProjectRequest{
			ProcessorID: "cuttack-oilseed", Crop: "groundnut", Quantity: 10, Reference: &at,
		})
		s.Require().NoError(err)
		s.Zero(proj.DistanceKm)
		s.Zero(proj.Costs.Transport)
	})
}

func (s *ServiceSuite) TestRank() {
	ranked, err := s.service.Rank(s.ctx, RankRequest{Crop: "  GroundNut ", Quantity: 100, Vehicle: models.VehicleSmall})
	s.Require().NoError(err)
	s.Require().NotEmpty(ranked)

	ids := make(map[string]bool, len(ranked))
	for i, p := range ranked {
		ids[p.ProcessorID] = true
		s.LessOrEqual(p.DistanceKm, logistics.DefaultRadiusKm)
		s.Equal(models.VehicleSmall, p.Vehicle)
		s.Equal("groundnut", p.Crop)
		if i > 0 {
			s.GreaterOrEqual(ranked[i-1].Profit, p.Profit)
		}
	}
	s.True(ids["cuttack-oilseed"])
	s.False(ids["koraput-millets"], "Koraput is beyond the sourcing radius")
	s.False(ids["jagatsinghpur-rice"], "does not process groundnut")

	s.InDelta(float64(len(ranked)), testutil.ToFloat64(s.metrics.Projections.WithLabelValues("small")), 0)
}

func (s *ServiceSuite) TestRankUnknownCrop() {
	ranked, err := s.service.Rank(s.ctx, RankRequest{Crop: "saffron", Quantity: 10})
	s.Require().NoError(err)
	s.Empty(ranked)
}

func (s *ServiceSuite) TestProcessors() {
	all := s.service.Processors(s.ctx, "", nil)
	s.Len(all, 9)
	for i := 1; i < len(all); i++ {
		s.LessOrEqual(all[i-1].DistanceKm, all[i].DistanceKm)
	}
	s.Equal("cuttack-oilseed", all[0].Processor.ID)

	paddy := s.service.Processors(s.ctx, "paddy", nil)
	s.Len(paddy, 3)
	for _, p := range paddy {
		s.True(p.Processor.Processes("paddy"))
	}

	last := all[len(all)-1]
	s.Equal("koraput-millets", last.Processor.ID)
	s.False(last.InRange)
}

func (s *ServiceSuite) TestStoreFailureIsInternal() {
	ctrl := gomock.NewController(s.T())
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().FindByID(gomock.Any(), "cuttack-oilseed").Return(nil, errors.New("catalog unavailable"))

	_, err := New(st).ProjectByID(s.ctx, ProjectRequest{ProcessorID: "cuttack-oilseed", Crop: "groundnut", Quantity: 1})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestUnprofitableRoutesAreCounted() {
	ctrl := gomock.NewController(s.T())
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().List(gomock.Any()).Return([]models.Processor{{
		ID:       "far-rice",
		Location: models.Coordinate{Lat: 22.8, Lon: 85.8245},
		Crops:    []string{"paddy"},
		Price:    models.PriceRange{Min: 2100, Max: 2300},
	}})

	svc := New(st, WithMetrics(s.metrics))
	ranked, err := svc.Rank(s.ctx, RankRequest{Crop: "paddy", Quantity: 100})
	s.Require().NoError(err)
	s.Require().Len(ranked, 1)
	s.True(ranked[0].Unprofitable)
	s.Zero(ranked[0].Profit)
	s.InDelta(1, testutil.ToFloat64(s.metrics.Unprofitable), 0)
}

func (s *ServiceSuite) TestNewPanicsWithoutStore() {
	s.Panics(func() { New(nil) })
}
