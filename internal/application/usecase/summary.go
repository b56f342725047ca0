package usecase

import (
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// optimizableBelow is the utilization bar under which a contract counts
// as optimizable in the summary KPIs.
const optimizableBelow = 70.0

// buildSummary reduces the carrier aggregates and the opportunity list
// into the report's top-level KPIs. Pure and idempotent: re-running it
// over the same aggregate set yields the same summary.
func buildSummary(
	carriers []entity.CarrierAggregate,
	opportunities []entity.OptimizationOpportunity,
	period entity.ReportPeriod,
	currency string,
) entity.FinancialSummary {
	var totalCost, totalContracted, totalUtilized float64
	optimizable := 0

	for _, c := range carriers {
		totalCost += c.MonthlyCost
		totalContracted += c.ContractedMbps
		totalUtilized += c.UtilizedMbps
		if c.UtilizationPercentage < optimizableBelow {
			optimizable++
		}
	}

	var totalSavings float64
	for _, o := range opportunities {
		totalSavings += o.PotentialSaving
	}

	// Promedio ponderado por ancho de banda, no promedio simple de porcentajes.
	avgUtilization := utilizationPct(totalUtilized, totalContracted)

	return entity.FinancialSummary{
		TotalMonthlyCost:     totalCost,
		AverageUtilization:   avgUtilization,
		PotentialSavings:     totalSavings,
		OptimizableContracts: optimizable,
		CostPerMbps:          costPerMbps(totalCost, totalUtilized, totalContracted),
		Currency:             currency,
		Period:               period.Code,
		PeriodLabel:          period.Label,
	}
}
