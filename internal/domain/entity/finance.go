package entity

import "time"

// Carrier aggregate status classifications.
const (
	StatusEfficient    = "efficient"
	StatusAttention    = "attention"
	StatusCritical     = "critical"
	StatusCapacityRisk = "capacity_risk"
)

// Data-source tags distinguishing billed figures from synthesized ones.
const (
	DataSourceBilling   = "billing"
	DataSourceEstimated = "estimated"
)

// Report source discriminators.
const (
	SourceRealData = "real_data"
	SourceDemoData = "demo_data"
)

// CarrierAggregate holds the rolled-up financial and utilization figures
// for one transit carrier. Never mutated after aggregation completes.
type CarrierAggregate struct {
	Carrier               string  `json:"carrier"`
	MonthlyCost           float64 `json:"monthlyCost"`
	ContractedMbps        float64 `json:"contractedMbps"`
	UtilizedMbps          float64 `json:"utilizedMbps"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	CostPerMbps           float64 `json:"costPerMbps"`
	Status                string  `json:"status"`
	PotentialSaving       float64 `json:"potentialSaving"`
	BillCount             int     `json:"billCount"`
	DataSource            string  `json:"dataSource"`
}

// PlazaAggregate holds the rolled-up figures for one geographic plaza.
type PlazaAggregate struct {
	Plaza                     string  `json:"plaza"`
	MonthlyCost               float64 `json:"monthlyCost"`
	Carriers                  int     `json:"carriers"`
	TotalMbps                 float64 `json:"totalMbps"`
	UtilizedMbps              float64 `json:"utilizedMbps"`
	Efficiency                float64 `json:"efficiency"`
	OptimizationOpportunities int     `json:"optimizationOpportunities"`
}

// Optimization opportunity types and priorities.
const (
	OpportunityCancellation  = "cancellation"
	OpportunityRenegotiation = "renegotiation"
	OpportunityUpgrade       = "upgrade"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// OptimizationOpportunity is a recommended contract action with its
// estimated monthly saving.
type OptimizationOpportunity struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Carrier         string  `json:"carrier"`
	Plaza           string  `json:"plaza"`
	Description     string  `json:"description"`
	CurrentCost     float64 `json:"currentCost"`
	PotentialSaving float64 `json:"potentialSaving"`
	Priority        string  `json:"priority"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// FinancialSummary reduces all aggregates into the report's top-level KPIs.
type FinancialSummary struct {
	TotalMonthlyCost     float64 `json:"totalMonthlyCost"`
	AverageUtilization   float64 `json:"averageUtilization"`
	PotentialSavings     float64 `json:"potentialSavings"`
	OptimizableContracts int     `json:"optimizableContracts"`
	CostPerMbps          float64 `json:"costPerMbps"`
	Currency             string  `json:"currency"`
	Period               string  `json:"period"`
	PeriodLabel          string  `json:"periodLabel"`
}

// FinancialReport is the full response body for one report request.
type FinancialReport struct {
	Summary                   FinancialSummary          `json:"summary"`
	CarrierAnalysis           []CarrierAggregate        `json:"carrierAnalysis"`
	PlazaBreakdown            []PlazaAggregate          `json:"plazaBreakdown"`
	OptimizationOpportunities []OptimizationOpportunity `json:"optimizationOpportunities"`
	Timestamp                 time.Time                 `json:"timestamp"`
	Source                    string                    `json:"source"`
}
