package usecase

import (
	"time"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/classify"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/estimate"
)

// demoRecord are the fixed figures behind the synthetic report. They run
// through the same aggregation, optimization and summary code as live
// data, so the fallback response is schema-identical to a live one and
// can never fail to assemble.
var demoRecords = []estimatedRecord{
	{Carrier: classify.CarrierNeutralNetworks, Plaza: classify.PlazaMonterrey, Estimate: estimate.Estimate{
		MonthlyCost: 15000, ContractedMbps: 1500, UtilizedMbps: 1230, DataSource: entity.DataSourceEstimated}},
	{Carrier: classify.CarrierCogent, Plaza: classify.PlazaMonterrey, Estimate: estimate.Estimate{
		MonthlyCost: 12000, ContractedMbps: 1200, UtilizedMbps: 540, DataSource: entity.DataSourceEstimated}},
	{Carrier: classify.CarrierCogent, Plaza: classify.PlazaCDMX, Estimate: estimate.Estimate{
		MonthlyCost: 11000, ContractedMbps: 1000, UtilizedMbps: 380, DataSource: entity.DataSourceEstimated}},
	{Carrier: classify.CarrierTiSparkle, Plaza: classify.PlazaGuadalajara, Estimate: estimate.Estimate{
		MonthlyCost: 8000, ContractedMbps: 800, UtilizedMbps: 320, DataSource: entity.DataSourceEstimated}},
	{Carrier: classify.CarrierFiberOptic, Plaza: classify.PlazaQueretaro, Estimate: estimate.Estimate{
		MonthlyCost: 10000, ContractedMbps: 1000, UtilizedMbps: 180, DataSource: entity.DataSourceEstimated}},
	{Carrier: classify.CarrierF16, Plaza: classify.PlazaTijuana, Estimate: estimate.Estimate{
		MonthlyCost: 6000, ContractedMbps: 600, UtilizedMbps: 0, DataSource: entity.DataSourceEstimated}},
}

// demoReport produces the complete synthetic report for the given
// period, tagged "demo_data" so consumers can discount it.
func (uc *ReportUseCase) demoReport(period entity.ReportPeriod) entity.FinancialReport {
	carriers, carrierPlaza := aggregateCarriers(demoRecords)
	scaleCarriers(carriers, period.Multiplier)
	opportunities := buildOpportunities(carriers, carrierPlaza)
	plazas := aggregatePlazas(demoRecords, period.Multiplier)

	return entity.FinancialReport{
		Summary:                   buildSummary(carriers, opportunities, period, uc.currency),
		CarrierAnalysis:           carriers,
		PlazaBreakdown:            plazas,
		OptimizationOpportunities: opportunities,
		Timestamp:                 time.Now().UTC(),
		Source:                    entity.SourceDemoData,
	}
}
