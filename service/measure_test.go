package service

import (
	"testing"

	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuantity(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		width  float64
		unit   string
		want   float64
	}{
		{"area for SFT", 10, 5, models.UnitSFT, 50},
		{"length only for RFT", 10, 5, models.UnitRFT, 10},
		{"two-dimension CUM", 2, 3, models.UnitCUM, 6},
		{"NOS falls back to length", 7, 4, models.UnitNOS, 7},
		{"LUMP falls back to length", 1, 9, models.UnitLUMP, 1},
		{"unknown unit falls back to length", 12, 3, "TONNE", 12},
		{"negative length coerces to zero", -5, 4, models.UnitSFT, 0},
		{"negative width coerces to zero", 5, -4, models.UnitSFT, 0},
		{"result rounds to 2 decimals", 1.414, 2, models.UnitSFT, 2.83},
		{"zero inputs", 0, 0, models.UnitSFT, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeQuantity(tt.length, tt.width, tt.unit))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.83, Round2(2.828))
	assert.Equal(t, 10.0, Round2(9.999))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.5, Round2(-1.5))
}

func TestEvaluateMeasurement(t *testing.T) {
	item := models.BOQItem{
		Unit:           models.UnitSFT,
		TotalScope:     100,
		CompletedScope: 90,
	}

	t.Run("within remaining scope", func(t *testing.T) {
		eval := EvaluateMeasurement(item, 5, 2)
		assert.Equal(t, 10.0, eval.Quantity)
		assert.Equal(t, 10.0, eval.RemainingScope)
		assert.False(t, eval.OverLimit, "exactly filling the scope is not an overrun")
	})

	t.Run("over remaining scope is flagged not rejected", func(t *testing.T) {
		eval := EvaluateMeasurement(item, 5, 3)
		assert.Equal(t, 15.0, eval.Quantity)
		assert.Equal(t, 10.0, eval.RemainingScope)
		assert.True(t, eval.OverLimit)
	})

	t.Run("already overrun item", func(t *testing.T) {
		over := models.BOQItem{Unit: models.UnitRFT, TotalScope: 50, CompletedScope: 60}
		eval := EvaluateMeasurement(over, 1, 0)
		assert.Equal(t, -10.0, eval.RemainingScope)
		assert.True(t, eval.OverLimit)
	})
}

func TestMeasurementAgainstScope(t *testing.T) {
	item := models.BOQItem{
		Unit:           models.UnitSFT,
		TotalScope:     100,
		CompletedScope: 40,
	}

	t.Run("fits inside remaining scope", func(t *testing.T) {
		eval := EvaluateMeasurement(item, 10, 4)
		assert.Equal(t, 40.0, eval.Quantity)
		assert.Equal(t, 60.0, eval.RemainingScope)
		assert.False(t, eval.OverLimit)
	})

	t.Run("exceeds remaining scope", func(t *testing.T) {
		eval := EvaluateMeasurement(item, 20, 5)
		assert.Equal(t, 100.0, eval.Quantity)
		assert.Equal(t, 60.0, eval.RemainingScope)
		assert.True(t, eval.OverLimit)
	})
}

func TestAggregateScopeMixedBill(t *testing.T) {
	items := []models.BOQItem{
		{Rate: 100, TotalScope: 10, CompletedScope: 10},
		{Rate: 50, TotalScope: 20, CompletedScope: 0},
	}
	summary := AggregateScope(items)
	assert.Equal(t, 2000.0, summary.TotalAmount)
	assert.Equal(t, 1000.0, summary.CompletedAmount)
	assert.Equal(t, 50.0, summary.ProgressPercent)
}

func TestAggregateScope(t *testing.T) {
	t.Run("empty bill", func(t *testing.T) {
		summary := AggregateScope(nil)
		assert.Equal(t, 0, summary.TotalItems)
		assert.Equal(t, 0.0, summary.ProgressPercent)
	})

	t.Run("sums amounts across items", func(t *testing.T) {
		items := []models.BOQItem{
			{Rate: 10, TotalScope: 100, CompletedScope: 50},
			{Rate: 20, TotalScope: 50, CompletedScope: 50},
		}
		summary := AggregateScope(items)
		assert.Equal(t, 2, summary.TotalItems)
		assert.Equal(t, 2000.0, summary.TotalAmount)
		assert.Equal(t, 1500.0, summary.CompletedAmount)
		assert.Equal(t, 75.0, summary.ProgressPercent)
	})

	t.Run("overruns are not clamped", func(t *testing.T) {
		items := []models.BOQItem{
			{Rate: 1, TotalScope: 100, CompletedScope: 120},
		}
		summary := AggregateScope(items)
		assert.Equal(t, 120.0, summary.CompletedAmount)
		assert.Equal(t, 120.0, summary.ProgressPercent)
	})

	t.Run("zero total amount yields zero percent", func(t *testing.T) {
		items := []models.BOQItem{
			{Rate: 0, TotalScope: 0, CompletedScope: 10},
		}
		summary := AggregateScope(items)
		assert.Equal(t, 0.0, summary.ProgressPercent)
	})
}

func TestItemProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ItemProgressPercent(models.BOQItem{TotalScope: 0, CompletedScope: 5}))
	assert.Equal(t, 50.0, ItemProgressPercent(models.BOQItem{TotalScope: 10, CompletedScope: 5}))
	assert.Equal(t, 150.0, ItemProgressPercent(models.BOQItem{TotalScope: 10, CompletedScope: 15}))
}

func TestComputeBilling(t *testing.T) {
	t.Run("applies item GST rate", func(t *testing.T) {
		items := []models.BOQItem{
			{ItemName: "Brickwork", Rate: 100, CompletedScope: 10, GSTRate: 18},
		}
		summary := ComputeBilling(items)
		assert.Len(t, summary.Lines, 1)
		assert.Equal(t, 1000.0, summary.Lines[0].BillValue)
		assert.Equal(t, 180.0, summary.Lines[0].GSTAmount)
		assert.Equal(t, 1180.0, summary.Lines[0].Payable)
		assert.Equal(t, 1180.0, summary.TotalPayable)
	})

	t.Run("defaults GST rate when unset", func(t *testing.T) {
		items := []models.BOQItem{
			{ItemName: "Plaster", Rate: 50, CompletedScope: 2},
		}
		summary := ComputeBilling(items)
		assert.Equal(t, models.DefaultGSTRate, summary.Lines[0].GSTRate)
		assert.Equal(t, 18.0, summary.Lines[0].GSTAmount)
	})

	t.Run("totals sum over lines", func(t *testing.T) {
		items := []models.BOQItem{
			{ItemName: "A", Rate: 100, CompletedScope: 1, GSTRate: 18},
			{ItemName: "B", Rate: 200, CompletedScope: 1, GSTRate: 12},
		}
		summary := ComputeBilling(items)
		assert.Equal(t, 300.0, summary.TotalBill)
		assert.Equal(t, 42.0, summary.TotalGST)
		assert.Equal(t, 342.0, summary.TotalPayable)
	})

	t.Run("paise stay exact", func(t *testing.T) {
		items := []models.BOQItem{
			{ItemName: "Tiles", Rate: 33.33, CompletedScope: 3, GSTRate: 18},
		}
		summary := ComputeBilling(items)
		assert.Equal(t, 99.99, summary.Lines[0].BillValue)
		assert.Equal(t, 18.0, summary.Lines[0].GSTAmount)
	})
}
