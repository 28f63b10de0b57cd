package domain

import "github.com/shopspring/decimal"

// Withdrawal fee schedule. A tiered base fee depends on the gross amount,
// and a flat service fee is always added on top.
var (
	feeTierLow  = decimal.NewFromInt(2000)
	feeTierHigh = decimal.NewFromInt(5000)

	baseFeeLow  = decimal.RequireFromString("2.5") // amount < 2000
	baseFeeMid  = decimal.RequireFromString("2.0") // 2000 <= amount <= 5000
	baseFeeHigh = decimal.RequireFromString("1.8") // amount > 5000

	serviceFeePercent = decimal.NewFromInt(5)

	hundred = decimal.NewFromInt(100)
)

// FeeBreakdown is the result of a withdrawal fee calculation. All monetary
// fields are exact decimals; Fee + Net always equals Gross.
type FeeBreakdown struct {
	Gross          decimal.Decimal `json:"gross"`
	BaseFeePercent decimal.Decimal `json:"base_fee_percent"`
	ServicePercent decimal.Decimal `json:"service_fee_percent"`
	TotalPercent   decimal.Decimal `json:"total_fee_percent"`
	Fee            decimal.Decimal `json:"fee"`
	Net            decimal.Decimal `json:"net_amount"`
}

// CalculateFee computes the tiered withdrawal fee for a gross amount.
// Non-positive amounts yield an all-zero breakdown rather than an error so
// the caller can simply hide the fee panel.
func CalculateFee(amount decimal.Decimal) FeeBreakdown {
	if amount.Sign() <= 0 {
		zero := decimal.Zero
		return FeeBreakdown{
			Gross:          zero,
			BaseFeePercent: zero,
			ServicePercent: zero,
			TotalPercent:   zero,
			Fee:            zero,
			Net:            zero,
		}
	}

	base := baseFeeHigh
	switch {
	case amount.LessThan(feeTierLow):
		base = baseFeeLow
	case amount.LessThanOrEqual(feeTierHigh):
		base = baseFeeMid
	}

	total := base.Add(serviceFeePercent)
	// Round to the currency minor unit; Net is derived by subtraction so the
	// breakdown always sums back to the gross amount exactly.
	fee := amount.Mul(total).Div(hundred).Round(2)
	net := amount.Sub(fee)

	return FeeBreakdown{
		Gross:          amount,
		BaseFeePercent: base,
		ServicePercent: serviceFeePercent,
		TotalPercent:   total,
		Fee:            fee,
		Net:            net,
	}
}

// FeeRange describes one row of the published fee schedule.
type FeeRange struct {
	Range       string `json:"range"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
}

// FeeRanges returns the full fee schedule for display.
func FeeRanges() []FeeRange {
	return []FeeRange{
		{Range: "< 2,000", Rate: "7.5%", Description: "2.5% + 5% service fee"},
		{Range: "2,000 - 5,000", Rate: "7%", Description: "2% + 5% service fee"},
		{Range: "> 5,000", Rate: "6.8%", Description: "1.8% + 5% service fee"},
	}
}
