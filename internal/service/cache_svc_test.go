package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCacheService_LookupCounters(t *testing.T) {
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_cache_misses_total"})

	c := &CacheService{}
	c.SetCounters(hits, misses)

	c.recordLookup(true)
	c.recordLookup(true)
	c.recordLookup(false)

	if got := testutil.ToFloat64(hits); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(misses); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
}

func TestCacheService_LookupWithoutCounters(t *testing.T) {
	c := &CacheService{}

	// Must not panic when no counters are attached
	c.recordLookup(true)
	c.recordLookup(false)
}

func TestCacheService_DisabledIsNoop(t *testing.T) {
	c := &CacheService{} // nil client: caching disabled

	data, err := c.GetVideo(context.Background(), "vid-1")
	if err != nil || data != nil {
		t.Errorf("GetVideo on disabled cache = (%v, %v), want (nil, nil)", data, err)
	}
	if err := c.SetVideo(context.Background(), "vid-1", map[string]string{"id": "vid-1"}); err != nil {
		t.Errorf("SetVideo on disabled cache = %v, want nil", err)
	}
	if err := c.InvalidateVideo(context.Background(), "vid-1"); err != nil {
		t.Errorf("InvalidateVideo on disabled cache = %v, want nil", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on disabled cache = %v, want nil", err)
	}
}
