package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/classify"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

func quotaBill(quota float64) entity.BillingRecord {
	return entity.BillingRecord{
		BillID: "b1",
		Name:   "test bill",
		Type:   entity.BillingTypeQuota,
		Quota:  entity.FlexFloat(quota),
	}
}

func TestBillCostTiers(t *testing.T) {
	t.Parallel()
	est := NewWithSeed(1)

	tests := []struct {
		name    string
		bill    entity.BillingRecord
		carrier string
		want    float64
	}{
		{
			name:    "zero quota falls back to carrier heuristic",
			bill:    quotaBill(0),
			carrier: classify.CarrierTiSparkle,
			want:    8000,
		},
		{
			name:    "byte count converted to GiB at 25 per GiB",
			bill:    quotaBill(1_000_000_001),
			carrier: classify.CarrierCogent,
			want:    1_000_000_001.0 / (1024 * 1024 * 1024) * 25,
		},
		{
			name:    "GiB tier capped at 50000",
			bill:    quotaBill(5e12),
			carrier: classify.CarrierCogent,
			want:    50000,
		},
		{
			name:    "MiB tier",
			bill:    quotaBill(200_000_000),
			carrier: classify.CarrierCogent,
			want:    200_000_000.0 / (1024 * 1024) * 0.05,
		},
		{
			name:    "raw scaled cost capped at 15000",
			bill:    quotaBill(20_000),
			carrier: classify.CarrierCogent,
			want:    15000,
		},
		{
			name:    "small quota used directly",
			bill:    quotaBill(750),
			carrier: classify.CarrierCogent,
			want:    750,
		},
		{
			name: "cdr type with quota capped at 10000",
			bill: entity.BillingRecord{
				Type:  entity.BillingTypeCDR,
				Quota: entity.FlexFloat(18_000),
			},
			carrier: classify.CarrierCogent,
			want:    10000,
		},
		{
			name: "cdr type without quota falls back to heuristic",
			bill: entity.BillingRecord{
				Type: entity.BillingTypeCDR,
			},
			carrier: classify.CarrierNeutralNetworks,
			want:    15000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := est.FromBill(tt.bill, tt.carrier)
			assert.InDelta(t, tt.want, got.MonthlyCost, 0.001)
			assert.Equal(t, entity.DataSourceBilling, got.DataSource)
		})
	}
}

func TestBillCostHeuristicByName(t *testing.T) {
	t.Parallel()
	est := NewWithSeed(1)

	// "TI-Sparkle MTY" con cuota cero: renta heurística de 8000.
	bill := quotaBill(0)
	bill.Name = "TI-Sparkle MTY"

	got := est.FromBill(bill, classify.Carrier(bill.Name))
	assert.Equal(t, 8000.0, got.MonthlyCost)
}

func TestBillUtilizationTiers(t *testing.T) {
	t.Parallel()
	est := NewWithSeed(1)

	t.Run("used bytes preferred", func(t *testing.T) {
		bill := quotaBill(0)
		bill.Used = entity.FlexFloat(3.24e12) // 3.24 TB over the month
		got := est.FromBill(bill, classify.CarrierCogent)
		assert.InDelta(t, 3.24e12*8/2592000/1e6, got.UtilizedMbps, 0.01)
	})

	t.Run("95th percentile over heuristic", func(t *testing.T) {
		bill := quotaBill(0)
		bill.Rate95thIn = entity.FlexFloat(104_857_600) // 100 MiB/s
		bill.Rate95thOut = entity.FlexFloat(0)
		got := est.FromBill(bill, classify.CarrierCogent)
		assert.InDelta(t, 104_857_600*8/1e6, got.UtilizedMbps, 0.001)
		assert.NotEqual(t, HeuristicMbps(classify.CarrierCogent), got.UtilizedMbps)
	})

	t.Run("larger of in and out wins", func(t *testing.T) {
		bill := quotaBill(0)
		bill.Rate95thIn = entity.FlexFloat(10_000_000)
		bill.Rate95thOut = entity.FlexFloat(25_000_000)
		got := est.FromBill(bill, classify.CarrierCogent)
		assert.InDelta(t, 25_000_000*8/1e6, got.UtilizedMbps, 0.001)
	})

	t.Run("nothing measured falls back to heuristic", func(t *testing.T) {
		got := est.FromBill(quotaBill(0), classify.CarrierF16)
		assert.Equal(t, 600.0, got.UtilizedMbps)
	})
}

func TestFromPort(t *testing.T) {
	t.Parallel()
	est := NewWithSeed(42)

	t.Run("up port draws 20 to 80 percent of speed", func(t *testing.T) {
		port := entity.Port{
			IfAlias:      "Transit-COGENT",
			IfSpeed:      entity.FlexFloat(10e9), // 10G
			IfOperStatus: "up",
		}
		got := est.FromPort(port, classify.CarrierCogent)
		assert.Equal(t, 10000.0, got.ContractedMbps)
		assert.GreaterOrEqual(t, got.UtilizedMbps, 0.2*got.ContractedMbps)
		assert.LessOrEqual(t, got.UtilizedMbps, 0.8*got.ContractedMbps)
		assert.Equal(t, entity.DataSourceEstimated, got.DataSource)
		assert.Equal(t, 12000.0, got.MonthlyCost)
	})

	t.Run("down port contributes zero utilization", func(t *testing.T) {
		port := entity.Port{
			IfSpeed:      entity.FlexFloat(1e9),
			IfOperStatus: "down",
		}
		got := est.FromPort(port, classify.CarrierOther)
		assert.Zero(t, got.UtilizedMbps)
		assert.Equal(t, 1000.0, got.ContractedMbps)
	})

	t.Run("zero speed falls back to heuristic capacity", func(t *testing.T) {
		port := entity.Port{IfOperStatus: "up"}
		got := est.FromPort(port, classify.CarrierTiSparkle)
		assert.Equal(t, 800.0, got.ContractedMbps)
	})
}
