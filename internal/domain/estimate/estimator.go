// Package estimate derives monthly cost and utilized bandwidth per billing
// record or port, through tiered procedures that depend on which raw
// fields are populated and their magnitude.
package estimate

import (
	"math/rand/v2"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/classify"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

const (
	bytesPerGiB     = 1024 * 1024 * 1024
	bytesPerMiB     = 1024 * 1024
	secondsPerMonth = 30 * 24 * 3600

	capQuotaGiB   = 50000
	capQuotaMiB   = 25000
	capQuotaRaw   = 15000
	capNonUsage   = 10000
	quotaGiBFloor = 1e9
	quotaMiBFloor = 1e6
	quotaRawFloor = 1000
)

// Renta mensual estimada por carrier cuando la factura no trae cifras.
var carrierMonthlyCost = map[string]float64{
	classify.CarrierNeutralNetworks: 15000,
	classify.CarrierCogent:          12000,
	classify.CarrierFiberOptic:      10000,
	classify.CarrierTiSparkle:       8000,
	classify.CarrierF16:             6000,
}

const defaultMonthlyCost = 5000

// Ancho de banda estimado por carrier, proporcional a las rentas.
var carrierMbps = map[string]float64{
	classify.CarrierNeutralNetworks: 1500,
	classify.CarrierCogent:          1200,
	classify.CarrierFiberOptic:      1000,
	classify.CarrierTiSparkle:       800,
	classify.CarrierF16:             600,
}

const defaultMbps = 500

// Estimate is the per-record output of the estimator: one cost figure,
// one contracted figure and one utilized figure, tagged by data source.
type Estimate struct {
	MonthlyCost    float64
	ContractedMbps float64
	UtilizedMbps   float64
	DataSource     string
}

// Estimator applies the tiered estimation procedures. The random source
// feeds only the synthetic port-fallback utilization draw and is
// injectable so tests stay deterministic.
type Estimator struct {
	rng *rand.Rand
}

// New returns an Estimator with a randomly seeded source.
func New() *Estimator {
	return &Estimator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewWithSeed returns an Estimator with a fixed seed.
func NewWithSeed(seed uint64) *Estimator {
	return &Estimator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// HeuristicCost returns the fixed per-carrier monthly cost figure.
func HeuristicCost(carrier string) float64 {
	if c, ok := carrierMonthlyCost[carrier]; ok {
		return c
	}
	return defaultMonthlyCost
}

// HeuristicMbps returns the fixed per-carrier bandwidth figure.
func HeuristicMbps(carrier string) float64 {
	if m, ok := carrierMbps[carrier]; ok {
		return m
	}
	return defaultMbps
}

// FromBill estimates cost and utilization for one billing record. This
// is the preferred path; its output carries the "billing" data source.
func (e *Estimator) FromBill(bill entity.BillingRecord, carrier string) Estimate {
	return Estimate{
		MonthlyCost:    billCost(bill, carrier),
		ContractedMbps: billContracted(bill, carrier),
		UtilizedMbps:   billUtilized(bill, carrier),
		DataSource:     entity.DataSourceBilling,
	}
}

// billCost aplica los niveles de costo según el tipo de facturación y la
// magnitud de la cuota.
func billCost(bill entity.BillingRecord, carrier string) float64 {
	quota := bill.Quota.Float64()

	if bill.Type != entity.BillingTypeQuota {
		// Facturación por tasa comprometida: la cuota, si viene, ya es renta.
		if quota > 0 {
			return min(quota, capNonUsage)
		}
		return HeuristicCost(carrier)
	}

	switch {
	case quota == 0:
		return HeuristicCost(carrier)
	case quota > quotaGiBFloor:
		return min(quota/bytesPerGiB*25, capQuotaGiB)
	case quota > quotaMiBFloor:
		return min(quota/bytesPerMiB*0.05, capQuotaMiB)
	case quota > quotaRawFloor:
		return min(quota, capQuotaRaw)
	default:
		return quota
	}
}

// billUtilized prefers measured bytes, then the 95th percentile samples,
// then the carrier heuristic.
func billUtilized(bill entity.BillingRecord, carrier string) float64 {
	if used := bill.Used.Float64(); used > 0 {
		return monthlyBytesToMbps(used)
	}
	if rate := max(bill.Rate95thIn.Float64(), bill.Rate95thOut.Float64()); rate > 0 {
		return bytesPerSecondToMbps(rate)
	}
	return HeuristicMbps(carrier)
}

func billContracted(bill entity.BillingRecord, carrier string) float64 {
	allowed := bill.Allowed.Float64()
	if allowed <= 0 {
		return HeuristicMbps(carrier)
	}
	if bill.Type == entity.BillingTypeCDR {
		// En facturación CDR el campo viene en bits/s.
		return allowed / 1e6
	}
	return monthlyBytesToMbps(allowed)
}

// FromPort synthesizes an estimate from a transit port. Fallback only:
// utilization is a capacity-proportional random draw (20–80% when the
// port is up, 0 otherwise) so downstream aggregation stays well-formed.
// The output is tagged "estimated" so consumers can discount it.
func (e *Estimator) FromPort(port entity.Port, carrier string) Estimate {
	contracted := port.IfSpeed.Float64() / 1e6
	if contracted <= 0 {
		contracted = HeuristicMbps(carrier)
	}

	var utilized float64
	if port.IfOperStatus == "up" {
		utilized = contracted * (0.2 + 0.6*e.rng.Float64())
	}

	return Estimate{
		MonthlyCost:    HeuristicCost(carrier),
		ContractedMbps: contracted,
		UtilizedMbps:   utilized,
		DataSource:     entity.DataSourceEstimated,
	}
}

// monthlyBytesToMbps converts a monthly byte volume into the average
// rate in Mbps over a 30-day month.
func monthlyBytesToMbps(b float64) float64 {
	return b * 8 / secondsPerMonth / 1e6
}

// bytesPerSecondToMbps converts a bytes/s sample into Mbps.
func bytesPerSecondToMbps(b float64) float64 {
	return b * 8 / 1e6
}
