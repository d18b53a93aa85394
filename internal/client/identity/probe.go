package identity

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Checker reports whether the identity backend can verify tokens right now.
type Checker interface {
	Check(ctx context.Context) error
}

// HealthProbe asks a gRPC identity backend for its serving status.
type HealthProbe struct {
	conn    *grpc.ClientConn
	client  healthpb.HealthClient
	service string
	timeout time.Duration
}

// NewHealthProbe dials target lazily; no traffic is sent until Check.
func NewHealthProbe(target, service string, timeout time.Duration) (*HealthProbe, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("health probe client: %w", err)
	}
	p := NewHealthProbeFromConn(conn, service, timeout)
	p.conn = conn
	return p, nil
}

// NewHealthProbeFromConn builds a probe over an existing connection, which
// the caller keeps ownership of.
func NewHealthProbeFromConn(cc grpc.ClientConnInterface, service string, timeout time.Duration) *HealthProbe {
	return &HealthProbe{
		client:  healthpb.NewHealthClient(cc),
		service: service,
		timeout: timeout,
	}
}

func (p *HealthProbe) Check(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{Service: p.service})
	if err != nil {
		return p.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: backend status %s", ErrVerificationUnavailable, resp.GetStatus())
	}
	return nil
}

func (p *HealthProbe) mapError(err error) error {
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrVerificationUnavailable, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: unknown service %q", ErrVerificationUnavailable, p.service)
	default:
		return fmt.Errorf("%w: rpc error: %v", ErrVerificationUnavailable, err)
	}
}

// Close releases the connection opened by NewHealthProbe.
func (p *HealthProbe) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// ProbingVerifier runs next only when the backend reports it is serving.
type ProbingVerifier struct {
	probe Checker
	next  Verifier
}

func NewProbingVerifier(probe Checker, next Verifier) *ProbingVerifier {
	return &ProbingVerifier{probe: probe, next: next}
}

func (v *ProbingVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if err := v.probe.Check(ctx); err != nil {
		return Identity{}, err
	}
	return v.next.Verify(ctx, token)
}
