// Package cache provides the region-scoped generation cache. Each pipeline
// stage owns an independent key namespace: classification results, generated
// content, and compiled templates never share a region. Regions are caches,
// not sources of truth; a miss after clear is always a valid outcome.
package cache

import (
	"context"
	"fmt"
)

// Region names one independent cache namespace.
type Region string

const (
	RegionClassification Region = "classification"
	RegionContent        Region = "content"
	RegionTemplates      Region = "templates"
)

// AllRegions lists every region in a fixed order for stats and clearing.
var AllRegions = []Region{RegionClassification, RegionContent, RegionTemplates}

// Store is a concurrent-safe key/value store backing one region. Get and Set
// are individually atomic; no cross-operation transactions are provided.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Len(ctx context.Context) (int, error)
}

// Regions bundles one store per pipeline stage. Constructed once at process
// start and passed by reference to every component that needs it.
type Regions struct {
	Classification Store
	Content        Store
	Templates      Store
}

// Store returns the store for the named region.
func (r *Regions) Store(region Region) (Store, error) {
	switch region {
	case RegionClassification:
		return r.Classification, nil
	case RegionContent:
		return r.Content, nil
	case RegionTemplates:
		return r.Templates, nil
	}
	return nil, fmt.Errorf("unknown cache region %q", region)
}

// Stats returns the entry count per region.
func (r *Regions) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, len(AllRegions))
	for _, region := range AllRegions {
		store, err := r.Store(region)
		if err != nil {
			return nil, err
		}
		n, err := store.Len(ctx)
		if err != nil {
			return nil, fmt.Errorf("stats for region %s: %w", region, err)
		}
		stats[string(region)] = n
	}
	return stats, nil
}

// ClearAll empties every region. Idempotent and safe to call concurrently
// with in-flight reads; readers observe a miss and recompute.
func (r *Regions) ClearAll(ctx context.Context) error {
	for _, region := range AllRegions {
		store, err := r.Store(region)
		if err != nil {
			return err
		}
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear region %s: %w", region, err)
		}
	}
	return nil
}

// ClearRegion empties a single region.
func (r *Regions) ClearRegion(ctx context.Context, region Region) error {
	store, err := r.Store(region)
	if err != nil {
		return err
	}
	return store.Clear(ctx)
}

// Close releases store resources where the backend requires it.
func (r *Regions) Close() {
	for _, region := range AllRegions {
		if store, err := r.Store(region); err == nil {
			if closer, ok := store.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		}
	}
}
