package model

// AssetClassEquity is the asset class that qualifies a holding for the stock view.
const AssetClassEquity = "EQUITY"

// HoldingRecord is a single position as reported by the holdings service.
// Percent fields are fractions (0.0532 means 5.32%). ValueInBaseCurrency is
// already normalized to the portfolio's base currency.
type HoldingRecord struct {
	Symbol                 string  `json:"symbol"`
	Name                   string  `json:"name"`
	AssetClass             string  `json:"assetClass"`
	Currency               string  `json:"currency"`
	NetPerformancePercent  float64 `json:"netPerformancePercent"`
	AllocationInPercentage float64 `json:"allocationInPercentage"`
	ValueInBaseCurrency    float64 `json:"valueInBaseCurrency"`
}

// PerformancePoint is one entry of the portfolio performance series.
type PerformancePoint struct {
	Date                       string  `json:"date"`
	NetPerformanceInPercentage float64 `json:"netPerformanceInPercentage"`
}

// StockHoldingView is the projection of an equity holding served to the dashboard.
type StockHoldingView struct {
	Symbol                 string  `json:"symbol"`
	Name                   string  `json:"name"`
	NetPerformancePercent  float64 `json:"netPerformancePercent"`
	AllocationInPercentage float64 `json:"allocationInPercentage"`
}

// CurrencyHoldingView is the share of total portfolio value held in one currency.
// Percentage is on a 0-100 scale and is not rounded.
type CurrencyHoldingView struct {
	Currency   string  `json:"currency"`
	Percentage float64 `json:"percentage"`
}

// AggregatedView is the payload of GET /api/data.
type AggregatedView struct {
	StockHoldings    []StockHoldingView    `json:"stockHoldings"`
	CurrencyHoldings []CurrencyHoldingView `json:"currencyHoldings"`
	Chart            []PerformancePoint    `json:"chart"`
}
