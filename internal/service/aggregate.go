package service

import "github.com/ndewijer/Portfolio-Dashboard-Backend/internal/model"

// currencyTotal accumulates the base currency value held in one currency.
type currencyTotal struct {
	currency string
	value    float64
}

// Aggregate derives the dashboard view from raw holdings and performance data.
// It is a pure function: the inputs are not modified and nothing is retained.
//
// The view contains:
//   - StockHoldings: EQUITY holdings only, in input order, fields copied verbatim
//   - CurrencyHoldings: one entry per distinct currency in first-seen order, with
//     its share of total value on a 0-100 scale
//   - Chart: the performance series stripped to date and net performance
//
// Percentages are not rounded. When the total value is zero every currency
// reports 0 instead of a non-finite value. Holdings without a currency code do
// not take part in the currency grouping. All slices are non-nil.
func Aggregate(holdings []model.HoldingRecord, performance []model.PerformancePoint) model.AggregatedView {
	return model.AggregatedView{
		StockHoldings:    stockHoldings(holdings),
		CurrencyHoldings: currencyHoldings(holdings),
		Chart:            chart(performance),
	}
}

func stockHoldings(holdings []model.HoldingRecord) []model.StockHoldingView {
	stocks := make([]model.StockHoldingView, 0, len(holdings))
	for _, h := range holdings {
		if h.AssetClass != model.AssetClassEquity {
			continue
		}
		stocks = append(stocks, model.StockHoldingView{
			Symbol:                 h.Symbol,
			Name:                   h.Name,
			NetPerformancePercent:  h.NetPerformancePercent,
			AllocationInPercentage: h.AllocationInPercentage,
		})
	}
	return stocks
}

func currencyHoldings(holdings []model.HoldingRecord) []model.CurrencyHoldingView {
	var groups []currencyTotal
	index := make(map[string]int)
	var grandTotal float64

	for _, h := range holdings {
		if h.Currency == "" {
			continue
		}
		i, ok := index[h.Currency]
		if !ok {
			i = len(groups)
			index[h.Currency] = i
			groups = append(groups, currencyTotal{currency: h.Currency})
		}
		groups[i].value += h.ValueInBaseCurrency
		grandTotal += h.ValueInBaseCurrency
	}

	views := make([]model.CurrencyHoldingView, len(groups))
	for i, g := range groups {
		views[i] = model.CurrencyHoldingView{
			Currency:   g.currency,
			Percentage: percentageOf(g.value, grandTotal),
		}
	}
	return views
}

func chart(performance []model.PerformancePoint) []model.PerformancePoint {
	points := make([]model.PerformancePoint, len(performance))
	for i, p := range performance {
		points[i] = model.PerformancePoint{
			Date:                       p.Date,
			NetPerformanceInPercentage: p.NetPerformanceInPercentage,
		}
	}
	return points
}

// percentageOf returns value as a percentage of total, or 0 if total is zero.
func percentageOf(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
