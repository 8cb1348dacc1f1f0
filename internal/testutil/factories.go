package testutil

import "github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"

// CreateTestHoldings returns a small mixed portfolio: two equities in
// different currencies, a bond fund and a cash balance.
//
// Values in base currency: USD 300 + 100, EUR 200, CHF 400. Total 1000.
func CreateTestHoldings() []model.HoldingRecord {
	return []model.HoldingRecord{
		{
			Symbol:                 "AAPL",
			Name:                   "Apple Inc.",
			AssetClass:             model.AssetClassEquity,
			Currency:               "USD",
			NetPerformancePercent:  0.1234,
			AllocationInPercentage: 0.3,
			ValueInBaseCurrency:    300,
		},
		{
			Symbol:                 "SAP",
			Name:                   "SAP SE",
			AssetClass:             model.AssetClassEquity,
			Currency:               "EUR",
			NetPerformancePercent:  -0.0532,
			AllocationInPercentage: 0.2,
			ValueInBaseCurrency:    200,
		},
		{
			Symbol:                 "BND",
			Name:                   "Vanguard Total Bond Market ETF",
			AssetClass:             "FIXED_INCOME",
			Currency:               "USD",
			NetPerformancePercent:  0.02,
			AllocationInPercentage: 0.1,
			ValueInBaseCurrency:    100,
		},
		{
			Symbol:                 "CHF",
			Name:                   "Cash CHF",
			AssetClass:             "LIQUIDITY",
			Currency:               "CHF",
			NetPerformancePercent:  0,
			AllocationInPercentage: 0.4,
			ValueInBaseCurrency:    400,
		},
	}
}

// CreateTestPerformance returns a three point performance series.
func CreateTestPerformance() []model.PerformancePoint {
	return []model.PerformancePoint{
		{Date: "2024-01-01", NetPerformanceInPercentage: 0},
		{Date: "2024-01-02", NetPerformanceInPercentage: 0.012345678},
		{Date: "2024-01-03", NetPerformanceInPercentage: -0.0049},
	}
}
