package feed

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmachine/zentop/internal/core/model"
)

const sampleBody = `{
	"metrics": [{"id":"margin","label":"Net Margin","value":20,"delta":1,"unit":"%"}],
	"marginSeries": [20],
	"timeline": [],
	"reasoning": "ok",
	"generatedAt": "2024-01-01T00:00:00Z"
}`

// switchableServer serves sampleBody until told to fail.
type switchableServer struct {
	fail atomic.Bool
	hits atomic.Int64
}

func (s *switchableServer) handler(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	if s.fail.Load() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(sampleBody))
}

func waitForState(t *testing.T, c *Controller, cond func(model.TelemetryState) bool) model.TelemetryState {
	t.Helper()
	var last model.TelemetryState
	require.Eventually(t, func() bool {
		last = c.State().Get()
		return cond(last)
	}, 2*time.Second, 10*time.Millisecond)
	return last
}

func TestControllerFirstCycleMergesSnapshot(t *testing.T) {
	backend := &switchableServer{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})
	c.Start()
	defer c.Stop()

	st := waitForState(t, c, func(st model.TelemetryState) bool { return !st.Loading })
	assert.Empty(t, st.Error)
	require.Len(t, st.Metrics, 1)
	assert.Equal(t, 20.0, st.Metrics[0].Value)
	assert.Equal(t, "ok", st.Reasoning)
}

func TestControllerFailureRetainsLastGoodData(t *testing.T) {
	backend := &switchableServer{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})
	c.Start()
	defer c.Stop()
	waitForState(t, c, func(st model.TelemetryState) bool { return !st.Loading })

	backend.fail.Store(true)
	c.Refresh()

	st := waitForState(t, c, func(st model.TelemetryState) bool { return st.Error != "" })
	assert.False(t, st.Loading)
	require.Len(t, st.Metrics, 1)
	assert.Equal(t, 20.0, st.Metrics[0].Value)
}

func TestControllerFirstLoadFailureKeepsLoading(t *testing.T) {
	backend := &switchableServer{}
	backend.fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})
	c.Start()
	defer c.Stop()

	st := waitForState(t, c, func(st model.TelemetryState) bool { return st.Error != "" })
	assert.True(t, st.Loading)
	assert.Empty(t, st.Metrics)
}

func TestControllerStartAndStopAreIdempotent(t *testing.T) {
	backend := &switchableServer{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})

	c.Start()
	c.Start()
	assert.True(t, c.Polling())
	waitForState(t, c, func(st model.TelemetryState) bool { return !st.Loading })

	// Double Start must not have scheduled a second immediate cycle.
	assert.Equal(t, int64(1), backend.hits.Load())

	c.Stop()
	c.Stop()
	assert.False(t, c.Polling())

	// Stop leaves the last state untouched.
	st := c.State().Get()
	require.Len(t, st.Metrics, 1)
	assert.Equal(t, 20.0, st.Metrics[0].Value)
}

func TestControllerOnlineTransitionTriggersImmediateCycle(t *testing.T) {
	backend := &switchableServer{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})
	c.Start()
	defer c.Stop()
	waitForState(t, c, func(st model.TelemetryState) bool { return !st.Loading })

	c.SetOnline(false)
	st := c.State().Get()
	assert.True(t, st.Offline)
	require.Len(t, st.Metrics, 1) // data untouched

	before := backend.hits.Load()
	c.SetOnline(true)
	st = waitForState(t, c, func(st model.TelemetryState) bool { return !st.Offline })
	require.Eventually(t, func() bool {
		return backend.hits.Load() > before
	}, 2*time.Second, 10*time.Millisecond)
}

func TestControllerDropsStaleResponses(t *testing.T) {
	backend := &switchableServer{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	c := NewController(NewClient(srv.URL), ControllerConfig{Interval: time.Hour})

	// Newer sequence lands first; the older in-flight response must not
	// overwrite it even though its fetch succeeds.
	newer := c.claimSeq()
	older := newer
	newer = c.claimSeq()

	c.cycle(newer)
	first := c.State().Get()
	require.False(t, first.Loading)
	applied := first.LastUpdated

	backend.fail.Store(true)
	c.cycle(older)

	st := c.State().Get()
	assert.Empty(t, st.Error, "stale failing response must be dropped")
	assert.Equal(t, applied, st.LastUpdated)
}

func TestControllerConcurrentResponsesApplyInOrder(t *testing.T) {
	c := NewController(NewClient("http://unused.invalid"), ControllerConfig{Interval: time.Hour})

	var seen struct {
		sync.Mutex
		values []float64
	}
	unsubscribe := c.State().Subscribe(func(st model.TelemetryState) {
		if len(st.Metrics) == 0 {
			return
		}
		seen.Lock()
		seen.values = append(seen.values, st.Metrics[0].Value)
		seen.Unlock()
	})
	defer unsubscribe()

	// Race many in-flight responses resolving at once. The guard and the
	// merge must be one atomic step: a response that passes the check and
	// then loses the scheduler race must still never land after a newer
	// one.
	const cycles = 64
	var wg sync.WaitGroup
	for i := 0; i < cycles; i++ {
		seq := c.claimSeq()
		snap := &model.Snapshot{
			Metrics:      []model.Metric{{ID: "margin", Label: "Net Margin", Value: float64(seq)}},
			MarginSeries: []float64{float64(seq)},
			GeneratedAt:  "2024-01-01T00:00:00Z",
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.apply(seq, snap, nil)
		}()
	}
	wg.Wait()

	// The highest sequence passes the guard whenever it runs, so it must
	// own the final state regardless of scheduling.
	st := c.State().Get()
	require.Len(t, st.Metrics, 1)
	assert.Equal(t, float64(cycles), st.Metrics[0].Value)

	seen.Lock()
	defer seen.Unlock()
	assert.True(t, sort.Float64sAreSorted(seen.values),
		"merges delivered out of order: %v", seen.values)
}
