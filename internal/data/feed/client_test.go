package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	t.Run("flag_wins", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "http://env:9000")
		assert.Equal(t, "http://flag:7000", ResolveBaseURL("http://flag:7000/"))
	})

	t.Run("env_over_default", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "http://env:9000")
		assert.Equal(t, "http://env:9000", ResolveBaseURL(""))
	})

	t.Run("localhost_fallback", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "")
		assert.Equal(t, DefaultBackendURL, ResolveBaseURL(""))
	})
}

func TestFetchSnapshotDisablesCaching(t *testing.T) {
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	snap, err := NewClient(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no-cache", gotCacheControl)
	require.Len(t, snap.Metrics, 1)
	assert.Equal(t, "margin", snap.Metrics[0].ID)
}

func TestFetchSnapshotNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != healthPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	assert.True(t, NewClient(srv.URL).Healthy(context.Background()))

	srv.Close()
	assert.False(t, NewClient(srv.URL).Healthy(context.Background()))
}

func TestReferencePayloadIsRenderable(t *testing.T) {
	ref := Reference()
	assert.NotEmpty(t, ref.Metrics)
	assert.NotEmpty(t, ref.MarginSeries)
	require.NotEmpty(t, ref.Timeline)
	for i := 1; i < len(ref.Timeline); i++ {
		assert.False(t, ref.Timeline[i].Time().Before(ref.Timeline[i-1].Time()),
			"reference timeline must be ordered")
	}
}
