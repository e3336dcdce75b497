package service

import (
	"math"

	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeQuantity converts raw field inputs into a billable quantity for
// the given unit. Negative inputs coerce to 0.
//
// SFT is area (length × width). RFT is running length; width is ignored.
// CUM keeps the legacy two-dimension formula (length × width) even though
// true volume needs a third dimension — the measurement form only carries
// two inputs, so changing this would break parity with recorded data.
// Everything else (NOS, LUMP, unknown) falls back to length.
func ComputeQuantity(length, width float64, unit string) float64 {
	if length < 0 {
		length = 0
	}
	if width < 0 {
		width = 0
	}

	var qty float64
	switch unit {
	case models.UnitSFT:
		qty = length * width
	case models.UnitRFT:
		qty = length
	case models.UnitCUM:
		qty = length * width
	default:
		qty = length
	}

	return Round2(qty)
}

// MeasurementEvaluation is the outcome of applying one measurement to a
// BOQ item before it is persisted.
type MeasurementEvaluation struct {
	Quantity       float64 `json:"quantity"`
	RemainingScope float64 `json:"remainingScope"`
	OverLimit      bool    `json:"overLimit"`
}

// EvaluateMeasurement computes the billable quantity and the advisory
// over-scope flag for a measurement against an item. OverLimit never
// blocks submission; callers surface it as a warning.
func EvaluateMeasurement(item models.BOQItem, length, width float64) MeasurementEvaluation {
	qty := ComputeQuantity(length, width, item.Unit)
	remaining := item.TotalScope - item.CompletedScope

	return MeasurementEvaluation{
		Quantity:       qty,
		RemainingScope: remaining,
		OverLimit:      qty > remaining,
	}
}

// ScopeSummary is the rollup over a project's bill of quantities.
type ScopeSummary struct {
	TotalItems      int     `json:"totalItems"`
	TotalAmount     float64 `json:"totalAmount"`
	CompletedAmount float64 `json:"completedAmount"`
	ProgressPercent float64 `json:"progressPercent"`
}

// AggregateScope computes monetary progress over BOQ items. Amounts are
// never clamped: when an item's completedScope exceeds its totalScope the
// completed amount (and the percentage) run past the total, which is how
// overruns surface in the summary.
func AggregateScope(items []models.BOQItem) ScopeSummary {
	summary := ScopeSummary{TotalItems: len(items)}

	for _, item := range items {
		summary.TotalAmount += item.Rate * item.TotalScope
		summary.CompletedAmount += item.Rate * item.CompletedScope
	}

	if summary.TotalAmount > 0 {
		summary.ProgressPercent = summary.CompletedAmount / summary.TotalAmount * 100
	}

	return summary
}

// ItemProgressPercent is the raw completion percentage of one item.
// May exceed 100 to signal overrun; renderers clamp for bar widths.
func ItemProgressPercent(item models.BOQItem) float64 {
	if item.TotalScope <= 0 {
		return 0
	}
	return item.CompletedScope / item.TotalScope * 100
}

// BillingLine is the billable value of one BOQ item with GST applied.
type BillingLine struct {
	ItemName  string  `json:"itemName"`
	BillValue float64 `json:"billValue"`
	GSTRate   float64 `json:"gstRate"`
	GSTAmount float64 `json:"gstAmount"`
	Payable   float64 `json:"payable"`
}

// BillingSummary is the running-account bill for a project.
type BillingSummary struct {
	Lines        []BillingLine `json:"lines"`
	TotalBill    float64       `json:"totalBill"`
	TotalGST     float64       `json:"totalGst"`
	TotalPayable float64       `json:"totalPayable"`
}

// ComputeBilling values the work done so far (completedScope × rate) and
// applies each item's GST rate. Decimal arithmetic keeps paise exact.
func ComputeBilling(items []models.BOQItem) BillingSummary {
	summary := BillingSummary{Lines: make([]BillingLine, 0, len(items))}

	totalBill := decimal.Zero
	totalGST := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for _, item := range items {
		gstRate := item.GSTRate
		if gstRate == 0 {
			gstRate = models.DefaultGSTRate
		}

		bill := decimal.NewFromFloat(item.CompletedScope).
			Mul(decimal.NewFromFloat(item.Rate)).
			Round(2)
		gst := bill.Mul(decimal.NewFromFloat(gstRate)).Div(hundred).Round(2)

		summary.Lines = append(summary.Lines, BillingLine{
			ItemName:  item.ItemName,
			BillValue: bill.InexactFloat64(),
			GSTRate:   gstRate,
			GSTAmount: gst.InexactFloat64(),
			Payable:   bill.Add(gst).InexactFloat64(),
		})

		totalBill = totalBill.Add(bill)
		totalGST = totalGST.Add(gst)
	}

	summary.TotalBill = totalBill.InexactFloat64()
	summary.TotalGST = totalGST.InexactFloat64()
	summary.TotalPayable = totalBill.Add(totalGST).InexactFloat64()

	return summary
}
