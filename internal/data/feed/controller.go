package feed

import (
	"context"
	"sync"
	"time"

	"github.com/jpillora/backoff"

	"github.com/zenmachine/zentop/internal/core/model"
	"github.com/zenmachine/zentop/internal/core/store"
	"github.com/zenmachine/zentop/internal/util"
)

// DefaultInterval is the fixed polling cadence. A tunable constant, not a
// protocol requirement.
const DefaultInterval = 15 * time.Second

// ControllerConfig tunes the sync controller.
type ControllerConfig struct {
	// Interval between poll cycles. Defaults to DefaultInterval.
	Interval time.Duration
	// EnableBackoff stretches the delay after consecutive failures
	// instead of hammering a dead backend at the fixed interval. The
	// delay resets to Interval on the first success.
	EnableBackoff bool
}

// Controller keeps the observable telemetry state eventually consistent
// with the backend. States: idle (created or stopped), polling (between
// Start and Stop). Start and Stop are both idempotent.
//
// Stop cancels only the scheduling loop. A cycle already in flight may
// still complete and write to the store afterwards; callers wanting full
// teardown should drop the controller reference as well.
type Controller struct {
	client *Client
	state  *store.Store[model.TelemetryState]

	interval   time.Duration
	useBackoff bool

	mu         sync.Mutex
	polling    bool
	cancel     context.CancelFunc
	poke       chan struct{}
	nextSeq    uint64
	appliedSeq uint64
	offline    bool
	retry      *backoff.Backoff
	retryDelay time.Duration

	// applyMu is held across the stale-sequence check AND the store write,
	// so a sequence is only marked applied once its merge has landed. It
	// also serializes all controller writes into the store, keeping
	// subscriber deliveries in merge order.
	applyMu sync.Mutex
}

// NewController creates a controller writing into a fresh store seeded
// with the all-empty placeholder state.
func NewController(client *Client, cfg ControllerConfig) *Controller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		client:     client,
		state:      store.NewWithClone(model.NewTelemetryState(), model.TelemetryState.Clone),
		interval:   interval,
		useBackoff: cfg.EnableBackoff,
		retry: &backoff.Backoff{
			Min:    interval,
			Max:    10 * interval,
			Factor: 2,
			Jitter: true,
		},
	}
}

// State returns the observable telemetry state.
func (c *Controller) State() *store.Store[model.TelemetryState] {
	return c.state
}

// Start begins polling: one immediate fetch-and-merge cycle, then one per
// interval. Calling Start while polling is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.polling {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.polling = true
	c.cancel = cancel
	c.poke = make(chan struct{}, 1)
	poke := c.poke
	c.mu.Unlock()

	util.LogInfof("Telemetry sync started against %s (interval %s)", c.client.BaseURL(), c.interval)
	go c.runLoop(ctx, poke)
}

// Stop cancels the scheduling loop. Idempotent; the store keeps its last
// state, nothing is reset.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.polling {
		return
	}
	c.polling = false
	c.cancel()
	c.cancel = nil
	util.LogInfo("Telemetry sync stopped")
}

// Polling reports whether the scheduling loop is active.
func (c *Controller) Polling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.polling
}

// SetOnline feeds the external connectivity signal. Going offline only
// flags the state; coming back online clears the flag and triggers one
// out-of-band cycle so the display recovers without waiting a full
// interval.
func (c *Controller) SetOnline(online bool) {
	c.mu.Lock()
	wasOffline := c.offline
	c.offline = !online
	poke := c.poke
	polling := c.polling
	c.mu.Unlock()

	c.applyMu.Lock()
	c.state.Update(func(st model.TelemetryState) model.TelemetryState {
		st.Offline = !online
		return st
	})
	c.applyMu.Unlock()

	if !online {
		return
	}
	if wasOffline && polling {
		select {
		case poke <- struct{}{}:
		default:
		}
	}
}

// Refresh requests one out-of-band cycle without disturbing the schedule.
func (c *Controller) Refresh() {
	c.mu.Lock()
	poke := c.poke
	polling := c.polling
	c.mu.Unlock()
	if !polling {
		return
	}
	select {
	case poke <- struct{}{}:
	default:
	}
}

func (c *Controller) runLoop(ctx context.Context, poke <-chan struct{}) {
	// Immediate first cycle, then the timer takes over.
	go c.cycle(c.claimSeq())

	timer := time.NewTimer(c.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			go c.cycle(c.claimSeq())
			timer.Reset(c.nextDelay())
		case <-poke:
			go c.cycle(c.claimSeq())
		}
	}
}

// nextDelay returns the scheduling delay: fixed interval, stretched by the
// backoff curve while consecutive failures accumulate (when enabled).
func (c *Controller) nextDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.useBackoff || c.retryDelay == 0 {
		return c.interval
	}
	return c.retryDelay
}

func (c *Controller) claimSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSeq++
	return c.nextSeq
}

// cycle performs one fetch-and-merge. Responses are applied in sequence
// order: a slow fetch that resolves after a newer one was merged is
// dropped instead of overwriting fresher data.
func (c *Controller) cycle(seq uint64) {
	snap, err := c.client.FetchSnapshot(context.Background())
	c.apply(seq, snap, err)
}

// apply merges one cycle's outcome. Check and write happen under applyMu
// as one atomic step: without that, a slow response could pass the guard,
// lose the race to a newer one, and still merge its older snapshot last.
func (c *Controller) apply(seq uint64, snap *model.Snapshot, err error) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	if seq <= c.appliedSeq {
		c.mu.Unlock()
		util.LogDebugf("Dropping stale telemetry response (seq %d <= %d)", seq, c.appliedSeq)
		return
	}
	c.appliedSeq = seq
	online := !c.offline
	if err == nil {
		c.retry.Reset()
		c.retryDelay = 0
	} else if c.useBackoff {
		c.retryDelay = c.retry.Duration()
	}
	c.mu.Unlock()

	if err != nil {
		util.LogWarnf("Telemetry cycle failed: %v", err)
		c.state.Update(func(st model.TelemetryState) model.TelemetryState {
			return mergeFailure(st, err, online)
		})
		return
	}

	c.state.Update(func(st model.TelemetryState) model.TelemetryState {
		return mergeSnapshot(st, snap)
	})
}
