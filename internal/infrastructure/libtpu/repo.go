// Package libtpu fetches runtime metrics from the libtpu gRPC endpoint
// started alongside a TPU workload.
package libtpu

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/local"
	"google.golang.org/grpc/status"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/infrastructure/libtpu/pb"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/usage"
)

// DefaultAddr is the first of the ports libtpu serves metrics on when
// the workload sets TPU_RUNTIME_METRICS_PORTS.
const DefaultAddr = "localhost:8431"

// Metric enumerates the runtime metrics this tool consumes. The names
// must match libtpu's metric registry exactly.
type Metric int

const (
	TotalMemory Metric = iota
	MemoryUsage
	DutyCyclePct
)

func (m Metric) Name() string {
	switch m {
	case TotalMemory:
		return "tpu.runtime.hbm.memory.total.bytes"
	case MemoryUsage:
		return "tpu.runtime.hbm.memory.usage.bytes"
	case DutyCyclePct:
		return "tpu.runtime.tensorcore.dutycycle.percent"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

type Repo struct {
	conn   *grpc.ClientConn
	client pb.RuntimeMetricServiceClient
}

// New connects to the runtime metric service at addr over a
// locally-trusted channel. The connection is lazy; a dead endpoint
// surfaces as ErrUnavailable on the first call.
func New(addr string) (*Repo, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(local.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Repo{conn: conn, client: pb.NewRuntimeMetricServiceClient(conn)}, nil
}

// NewFromConn wraps an existing client connection. Useful for tests.
func NewFromConn(cc grpc.ClientConnInterface) *Repo {
	return &Repo{client: pb.NewRuntimeMetricServiceClient(cc)}
}

func (r *Repo) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// fetch issues one unary call for the named metric and flattens the
// response into raw samples. No retries: a failed call surfaces as-is,
// except that an unreachable endpoint maps to domain.ErrUnavailable.
func (r *Repo) fetch(ctx context.Context, metric Metric) ([]domain.MetricSample, error) {
	resp, err := r.client.GetRuntimeMetric(ctx, &pb.MetricRequest{MetricName: metric.Name()})
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", metric.Name(), err)
	}

	raw := resp.GetMetric().GetMetrics()
	out := make([]domain.MetricSample, 0, len(raw))
	for _, m := range raw {
		out = append(out, domain.MetricSample{
			Attr:     m.GetAttribute().GetValue().GetIntAttr(),
			AsInt:    m.GetGauge().GetAsInt(),
			AsDouble: m.GetGauge().GetAsDouble(),
		})
	}
	return out, nil
}

// ChipUsage fetches the three metric streams and assembles them into
// one record per chip. The three calls are sequential and share ctx,
// so a caller deadline bounds each of them.
func (r *Repo) ChipUsage(ctx context.Context, chipType domain.ChipType) ([]domain.ChipUsage, error) {
	totals, err := r.fetch(ctx, TotalMemory)
	if err != nil {
		return nil, err
	}
	usages, err := r.fetch(ctx, MemoryUsage)
	if err != nil {
		return nil, err
	}
	dutyCycles, err := r.fetch(ctx, DutyCyclePct)
	if err != nil {
		return nil, err
	}
	return usage.Assemble(totals, usages, dutyCycles, chipType.CoresPerChip)
}
