package usecase

import (
	"sort"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// Status thresholds over utilization percentage. Canonical set: below 25
// is critical, 25–50 needs attention, above 85 is a capacity risk.
const (
	criticalBelow     = 25.0
	attentionBelow    = 50.0
	capacityRiskAbove = 85.0

	criticalSavingFactor  = 0.60
	attentionSavingFactor = 0.25
)

// statusFor classifies a utilization percentage and returns the fraction
// of cost recoverable at that level.
func statusFor(utilizationPct float64) (string, float64) {
	switch {
	case utilizationPct < criticalBelow:
		return entity.StatusCritical, criticalSavingFactor
	case utilizationPct <= attentionBelow:
		return entity.StatusAttention, attentionSavingFactor
	case utilizationPct > capacityRiskAbove:
		return entity.StatusCapacityRisk, 0
	default:
		return entity.StatusEfficient, 0
	}
}

// utilizationPct computes 100 × utilized / contracted, 0 when the
// denominator is 0.
func utilizationPct(utilized, contracted float64) float64 {
	if contracted <= 0 {
		return 0
	}
	return 100 * utilized / contracted
}

// costPerMbps divides cost by the larger of utilized and contracted
// bandwidth, with a floor of 1 to keep the figure finite.
func costPerMbps(cost, utilized, contracted float64) float64 {
	denom := max(utilized, contracted, 1)
	return cost / denom
}

// aggregateCarriers groups estimated records by carrier. It also returns
// the dominant plaza per carrier (the plaza with the highest summed cost)
// for the optimization engine's opportunity targets.
func aggregateCarriers(records []estimatedRecord) ([]entity.CarrierAggregate, map[string]string) {
	type bucket struct {
		cost, contracted, utilized float64
		billCount                  int
		billed                     bool
		plazaCost                  map[string]float64
	}

	buckets := make(map[string]*bucket)
	order := []string{}

	for _, rec := range records {
		b, ok := buckets[rec.Carrier]
		if !ok {
			b = &bucket{plazaCost: make(map[string]float64)}
			buckets[rec.Carrier] = b
			order = append(order, rec.Carrier)
		}
		b.cost += rec.Estimate.MonthlyCost
		b.contracted += rec.Estimate.ContractedMbps
		b.utilized += rec.Estimate.UtilizedMbps
		b.plazaCost[rec.Plaza] += rec.Estimate.MonthlyCost
		if rec.Estimate.DataSource == entity.DataSourceBilling {
			b.billCount++
			b.billed = true
		}
	}

	aggregates := make([]entity.CarrierAggregate, 0, len(order))
	carrierPlaza := make(map[string]string, len(order))

	for _, carrier := range order {
		b := buckets[carrier]
		pct := utilizationPct(b.utilized, b.contracted)
		status, factor := statusFor(pct)

		dataSource := entity.DataSourceEstimated
		if b.billed {
			dataSource = entity.DataSourceBilling
		}

		aggregates = append(aggregates, entity.CarrierAggregate{
			Carrier:               carrier,
			MonthlyCost:           b.cost,
			ContractedMbps:        b.contracted,
			UtilizedMbps:          b.utilized,
			UtilizationPercentage: pct,
			CostPerMbps:           costPerMbps(b.cost, b.utilized, b.contracted),
			Status:                status,
			PotentialSaving:       b.cost * factor,
			BillCount:             b.billCount,
			DataSource:            dataSource,
		})
		carrierPlaza[carrier] = dominantPlaza(b.plazaCost)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].MonthlyCost > aggregates[j].MonthlyCost
	})
	return aggregates, carrierPlaza
}

func dominantPlaza(plazaCost map[string]float64) string {
	best, bestCost := "", -1.0
	// Orden determinista ante empates de costo.
	plazas := make([]string, 0, len(plazaCost))
	for p := range plazaCost {
		plazas = append(plazas, p)
	}
	sort.Strings(plazas)
	for _, p := range plazas {
		if plazaCost[p] > bestCost {
			best, bestCost = p, plazaCost[p]
		}
	}
	return best
}

// scaleCarriers applies the period multiplier to every cost-derived
// figure so the invariants keep holding after scaling.
func scaleCarriers(aggregates []entity.CarrierAggregate, multiplier float64) {
	for i := range aggregates {
		aggregates[i].MonthlyCost *= multiplier
		aggregates[i].PotentialSaving *= multiplier
		aggregates[i].CostPerMbps *= multiplier
	}
}

// aggregatePlazas groups estimated records by plaza, independently of
// carriers. Opportunity counts follow the same utilization bar the
// optimizer applies per carrier group inside the plaza.
func aggregatePlazas(records []estimatedRecord, multiplier float64) []entity.PlazaAggregate {
	type carrierSlice struct {
		cost, contracted, utilized float64
	}
	type bucket struct {
		cost, contracted, utilized float64
		perCarrier                 map[string]*carrierSlice
	}

	buckets := make(map[string]*bucket)
	order := []string{}

	for _, rec := range records {
		b, ok := buckets[rec.Plaza]
		if !ok {
			b = &bucket{perCarrier: make(map[string]*carrierSlice)}
			buckets[rec.Plaza] = b
			order = append(order, rec.Plaza)
		}
		b.cost += rec.Estimate.MonthlyCost
		b.contracted += rec.Estimate.ContractedMbps
		b.utilized += rec.Estimate.UtilizedMbps

		cs, ok := b.perCarrier[rec.Carrier]
		if !ok {
			cs = &carrierSlice{}
			b.perCarrier[rec.Carrier] = cs
		}
		cs.cost += rec.Estimate.MonthlyCost
		cs.contracted += rec.Estimate.ContractedMbps
		cs.utilized += rec.Estimate.UtilizedMbps
	}

	aggregates := make([]entity.PlazaAggregate, 0, len(order))
	for _, plaza := range order {
		b := buckets[plaza]

		opportunities := 0
		for _, cs := range b.perCarrier {
			if utilizationPct(cs.utilized, cs.contracted) <= attentionBelow {
				opportunities++
			}
		}

		aggregates = append(aggregates, entity.PlazaAggregate{
			Plaza:                     plaza,
			MonthlyCost:               b.cost * multiplier,
			Carriers:                  len(b.perCarrier),
			TotalMbps:                 b.contracted,
			UtilizedMbps:              b.utilized,
			Efficiency:                utilizationPct(b.utilized, b.contracted),
			OptimizationOpportunities: opportunities,
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].MonthlyCost > aggregates[j].MonthlyCost
	})
	return aggregates
}
