// Package probe performs the active reachability checks against the
// configured anchor domains. Probing is the only concurrent stage of a
// refresh tick: each anchor is dialed in its own task with its own timeout,
// and results land in a pre-sized slot per anchor so no locking is needed.
package probe

import (
	"context"
	"net"
	"time"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// Prober checks a single anchor. Implementations must treat every failure
// mode (timeout, DNS error, refused connection) as Reachable=false and never
// return an error through the result.
type Prober interface {
	Probe(ctx context.Context, anchor domain.Anchor) domain.ProbeResult
}

// TCPProber measures reachability as a TCP dial against the anchor's service
// port. It needs no raw-socket privileges, and connection setup time is a
// serviceable latency proxy for the "is this institution online" question.
type TCPProber struct {
	dialer  *net.Dialer
	port    string
	timeout time.Duration
}

// NewTCPProber creates a prober dialing the given port (default "443") with
// a per-probe timeout.
func NewTCPProber(port string, timeout time.Duration) *TCPProber {
	if port == "" {
		port = "443"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPProber{
		dialer:  &net.Dialer{Timeout: timeout},
		port:    port,
		timeout: timeout,
	}
}

// Probe dials the anchor once. The context bounds the attempt in addition to
// the prober's own timeout so a tick deadline cuts slow probes short.
func (p *TCPProber) Probe(ctx context.Context, anchor domain.Anchor) domain.ProbeResult {
	result := domain.ProbeResult{
		Anchor:    anchor.Host,
		District:  anchor.District,
		LatencyMS: -1,
		Timestamp: time.Now().UTC(),
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	conn, err := p.dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(anchor.Host, p.port))
	if err != nil {
		result.PacketLoss = 100
		return result
	}
	defer conn.Close()

	result.Reachable = true
	result.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)
	return result
}
