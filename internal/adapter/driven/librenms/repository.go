package librenms

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/repository"
)

// maxConcurrentFetches bounds the per-plaza fan-out.
const maxConcurrentFetches = 4

// TelemetryRepositoryImpl implements repository.TelemetryRepository over
// the LibreNMS API. Every fetch is fault-tolerant: failures are logged
// and contribute an empty result, never an error.
type TelemetryRepositoryImpl struct {
	client *Client
}

// NewTelemetryRepository creates a telemetry repository for the given
// API root and token.
func NewTelemetryRepository(baseURL, token string) repository.TelemetryRepository {
	return &TelemetryRepositoryImpl{client: NewClient(baseURL, token)}
}

// FetchDevices returns device snapshots for the given plazas, or from
// an unscoped query when no scoped query yields anything.
func (r *TelemetryRepositoryImpl) FetchDevices(ctx context.Context, plazas []string) []entity.Device {
	return fetchScoped(ctx, plazas, "devices", r.devicesFor)
}

// FetchPorts returns transit-facing ports for the given plazas.
func (r *TelemetryRepositoryImpl) FetchPorts(ctx context.Context, plazas []string) []entity.Port {
	return fetchScoped(ctx, plazas, "ports", r.portsFor)
}

// FetchBills returns billing records for the given plazas.
func (r *TelemetryRepositoryImpl) FetchBills(ctx context.Context, plazas []string) []entity.BillingRecord {
	return fetchScoped(ctx, plazas, "bills", r.billsFor)
}

// fetchScoped fans one scoped query out per plaza and merges whatever
// settles. Merge order between plazas is irrelevant: downstream grouping
// is a pure concatenation. If every scoped query comes back empty, one
// unscoped query runs as a last resort before giving up.
func fetchScoped[T any](ctx context.Context, plazas []string, kind string, fetch func(ctx context.Context, location string) ([]T, error)) []T {
	var (
		mu     sync.Mutex
		merged []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, plaza := range plazas {
		g.Go(func() error {
			items, err := fetch(gctx, plaza)
			if err != nil {
				zap.L().Warn("scoped telemetry fetch failed",
					zap.String("kind", kind),
					zap.String("plaza", plaza),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			merged = append(merged, items...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // las goroutines nunca regresan error; solo sincronizamos

	if len(merged) > 0 {
		return merged
	}

	items, err := fetch(ctx, "")
	if err != nil {
		zap.L().Warn("unscoped telemetry fetch failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return nil
	}
	return items
}

func (r *TelemetryRepositoryImpl) devicesFor(ctx context.Context, location string) ([]entity.Device, error) {
	query := url.Values{}
	if location != "" {
		query.Set("location", strings.ToLower(location))
	}
	raw, err := r.client.getCollection(ctx, "/api/v0/devices", query, "devices", "data")
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Device](raw), nil
}

func (r *TelemetryRepositoryImpl) portsFor(ctx context.Context, location string) ([]entity.Port, error) {
	query := url.Values{}
	query.Set("descr_type", "transit")
	if location != "" {
		query.Set("location", strings.ToLower(location))
	}
	raw, err := r.client.getCollection(ctx, "/api/v0/ports", query, "ports", "data")
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Port](raw), nil
}

func (r *TelemetryRepositoryImpl) billsFor(ctx context.Context, location string) ([]entity.BillingRecord, error) {
	query := url.Values{}
	if location != "" {
		query.Set("location", strings.ToLower(location))
	}
	raw, err := r.client.getCollection(ctx, "/api/v0/bills", query, "bills", "data")
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.BillingRecord](raw), nil
}
