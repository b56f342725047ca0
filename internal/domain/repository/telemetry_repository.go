package repository

import (
	"context"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// TelemetryRepository defines the interface for the upstream network
// monitoring source. Every method is fault-tolerant: a failed or
// timed-out call yields an empty slice, never an error, so the pipeline
// can degrade instead of aborting.
type TelemetryRepository interface {
	// FetchDevices returns device snapshots, optionally scoped to plazas.
	FetchDevices(ctx context.Context, plazas []string) []entity.Device

	// FetchPorts returns transit-facing ports, optionally scoped to plazas.
	FetchPorts(ctx context.Context, plazas []string) []entity.Port

	// FetchBills returns billing records, optionally scoped to plazas.
	FetchBills(ctx context.Context, plazas []string) []entity.BillingRecord
}
