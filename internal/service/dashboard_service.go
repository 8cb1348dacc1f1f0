package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/upstream"
)

// DashboardService produces the aggregated dashboard view for one request.
// It keeps no state between requests: every call authenticates and fetches again.
type DashboardService struct {
	cfg    config.UpstreamConfig
	client upstream.PortfolioClient
	log    zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(cfg config.UpstreamConfig, client upstream.PortfolioClient, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		cfg:    cfg,
		client: client,
		log:    log.With().Str("component", "dashboard").Logger(),
	}
}

// CheckConfiguration reports whether all upstream settings are present.
func (s *DashboardService) CheckConfiguration() error {
	return s.cfg.Validate()
}

// GetDashboard obtains an auth token, fetches holdings and performance in
// parallel and aggregates them.
//
// There is no partial result: if either fetch fails the other is cancelled
// and the first error is returned.
//
// Returns:
//   - model.AggregatedView: The stock, currency and chart views
//   - error: apperrors.ErrMissingConfiguration before any network call,
//     apperrors.ErrAuthFailed / ErrMissingAuthToken from authentication,
//     or a wrapped fetch error
func (s *DashboardService) GetDashboard(ctx context.Context) (model.AggregatedView, error) {
	if err := s.cfg.Validate(); err != nil {
		return model.AggregatedView{}, err
	}

	authToken, err := s.client.Authenticate(ctx)
	if err != nil {
		return model.AggregatedView{}, err
	}

	var holdings []model.HoldingRecord
	var performance []model.PerformancePoint

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := s.client.FetchHoldings(gctx, authToken)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveHoldings, err)
		}
		holdings = h
		return nil
	})
	g.Go(func() error {
		p, err := s.client.FetchPerformance(gctx, authToken)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrievePerformance, err)
		}
		performance = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.AggregatedView{}, err
	}

	view := Aggregate(holdings, performance)

	s.log.Debug().
		Int("holdings", len(holdings)).
		Int("stocks", len(view.StockHoldings)).
		Int("currencies", len(view.CurrencyHoldings)).
		Int("chart_points", len(view.Chart)).
		Msg("dashboard aggregated")

	return view, nil
}
