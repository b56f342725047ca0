package usecase

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// Utilization thresholds for opportunity emission.
const (
	renegotiateMediumBelow = 30.0
	renegotiateLowBelow    = 50.0
)

// buildOpportunities derives ranked contract actions from the carrier
// aggregates. Ordering is stable descending by potential saving, so
// equal savings keep insertion order.
func buildOpportunities(carriers []entity.CarrierAggregate, carrierPlaza map[string]string) []entity.OptimizationOpportunity {
	opportunities := []entity.OptimizationOpportunity{}

	for _, agg := range carriers {
		plaza := carrierPlaza[agg.Carrier]
		util := agg.UtilizationPercentage

		switch {
		case util == 0:
			opportunities = append(opportunities, entity.OptimizationOpportunity{
				ID:              uuid.NewString(),
				Type:            entity.OpportunityCancellation,
				Carrier:         agg.Carrier,
				Plaza:           plaza,
				Description:     fmt.Sprintf("Enlace de %s sin tráfico medido: cancelar el contrato", agg.Carrier),
				CurrentCost:     agg.MonthlyCost,
				PotentialSaving: agg.MonthlyCost,
				Priority:        entity.PriorityHigh,
				UtilizationRate: util,
			})
		case util < renegotiateMediumBelow:
			opportunities = append(opportunities, entity.OptimizationOpportunity{
				ID:              uuid.NewString(),
				Type:            entity.OpportunityRenegotiation,
				Carrier:         agg.Carrier,
				Plaza:           plaza,
				Description:     fmt.Sprintf("Utilización de %.1f%% con %s: renegociar el ancho de banda contratado", util, agg.Carrier),
				CurrentCost:     agg.MonthlyCost,
				PotentialSaving: agg.PotentialSaving,
				Priority:        entity.PriorityMedium,
				UtilizationRate: util,
			})
		case util <= renegotiateLowBelow:
			opportunities = append(opportunities, entity.OptimizationOpportunity{
				ID:              uuid.NewString(),
				Type:            entity.OpportunityRenegotiation,
				Carrier:         agg.Carrier,
				Plaza:           plaza,
				Description:     fmt.Sprintf("Utilización de %.1f%% con %s: revisar condiciones del contrato", util, agg.Carrier),
				CurrentCost:     agg.MonthlyCost,
				PotentialSaving: agg.PotentialSaving,
				Priority:        entity.PriorityLow,
				UtilizationRate: util,
			})
		case util > capacityRiskAbove:
			// Riesgo de capacidad: no hay ahorro, la acción es crecer el enlace.
			opportunities = append(opportunities, entity.OptimizationOpportunity{
				ID:              uuid.NewString(),
				Type:            entity.OpportunityUpgrade,
				Carrier:         agg.Carrier,
				Plaza:           plaza,
				Description:     fmt.Sprintf("Utilización de %.1f%% con %s: ampliar capacidad antes de saturar", util, agg.Carrier),
				CurrentCost:     agg.MonthlyCost,
				PotentialSaving: 0,
				Priority:        entity.PriorityHigh,
				UtilizationRate: util,
			})
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].PotentialSaving > opportunities[j].PotentialSaving
	})
	return opportunities
}
