// cmd/tools/cache-admin/main.go
//
// Operational tool for the generation cache: inspect per-region entry
// counts and clear regions without touching the others.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"medsite-generator/internal/cache"
	"medsite-generator/internal/common/config"
)

func main() {
	var (
		clear = flag.String("clear", "", "clear a region: all | classification | content | templates")
		stats = flag.Bool("stats", false, "print per-region entry counts")
	)
	flag.Parse()

	if *clear == "" && !*stats {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	if cfg.Cache.Backend != "redis" {
		fmt.Fprintln(os.Stderr, "cache-admin only operates on the redis backend; the memory backend is per-process")
		os.Exit(1)
	}

	client := cache.NewRedisClient(cfg.Cache.Redis)
	regions := cache.NewRedisRegions(client, time.Duration(cfg.Cache.TTL)*time.Second)
	defer regions.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *clear != "" {
		if err := runClear(ctx, regions, *clear); err != nil {
			fmt.Fprintf(os.Stderr, "clear failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("cleared: %s\n", *clear)
	}

	if *stats {
		counts, err := regions.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stats failed: %v\n", err)
			os.Exit(1)
		}
		for _, region := range cache.AllRegions {
			fmt.Printf("%-16s %d\n", region, counts[string(region)])
		}
	}
}

func runClear(ctx context.Context, regions *cache.Regions, target string) error {
	if target == "all" {
		return regions.ClearAll(ctx)
	}
	return regions.ClearRegion(ctx, cache.Region(target))
}
