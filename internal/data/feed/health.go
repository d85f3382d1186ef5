package feed

import (
	"context"
	"sync"
	"time"

	"github.com/zenmachine/zentop/internal/util"
)

// DefaultProbeInterval is how often the prober checks the health endpoint.
const DefaultProbeInterval = 5 * time.Second

// Prober watches backend connectivity and feeds transitions into a
// callback, standing in for the connectivity events a browser would
// deliver. Only state changes are reported.
type Prober struct {
	client   *Client
	interval time.Duration
	onChange func(online bool)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	online  bool
}

// NewProber creates a prober. onChange runs on every connectivity flip,
// from the prober's own goroutine.
func NewProber(client *Client, interval time.Duration, onChange func(online bool)) *Prober {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Prober{
		client:   client,
		interval: interval,
		onChange: onChange,
		online:   true, // assume connected until a probe says otherwise
	}
}

// Start begins probing. Idempotent.
func (p *Prober) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.running = true
	p.cancel = cancel
	p.mu.Unlock()

	go p.run(ctx)
}

// Stop halts probing. Idempotent.
func (p *Prober) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.cancel()
	p.cancel = nil
}

// Online returns the last observed connectivity state.
func (p *Prober) Online() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.online
}

func (p *Prober) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *Prober) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	online := p.client.Healthy(probeCtx)
	cancel()

	p.mu.Lock()
	changed := online != p.online
	p.online = online
	p.mu.Unlock()

	if changed {
		if online {
			util.LogInfo("Backend link restored")
		} else {
			util.LogWarn("Backend link lost")
		}
		if p.onChange != nil {
			p.onChange(online)
		}
	}
}
