// cmd/generator/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"medsite-generator/internal/ai"
	"medsite-generator/internal/cache"
	"medsite-generator/internal/classifier"
	"medsite-generator/internal/common/config"
	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/content"
	"medsite-generator/internal/fallback"
	"medsite-generator/internal/generator"
	"medsite-generator/internal/pipeline"
	"medsite-generator/internal/render"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	var (
		inputFile  = flag.String("input", "", "file containing the practice description (default: first positional arg is the description)")
		outputFile = flag.String("output", "site.html", "path for the rendered site")
		metaFile   = flag.String("meta", "site.json", "path for the generation metadata")
		specialty  = flag.String("specialty", "", "skip classification and use this specialty")
		fresh      = flag.Bool("fresh", false, "bypass content reuse and force regeneration")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting website generator...",
		zap.String("environment", cfg.App.Environment),
		zap.String("cacheBackend", cfg.Cache.Backend),
	)

	rawText, err := readDescription(*inputFile, flag.Args())
	if err != nil {
		zapLog.Fatal("no practice description provided", zap.Error(err))
	}

	regions, err := buildRegions(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("cache initialization failed", zap.Error(err))
	}
	defer regions.Close()

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.Address))
	}

	aiClient := ai.NewHTTPClient(cfg.AI, log)
	gen, err := generator.New(aiClient, cfg.AI, log)
	if err != nil {
		zapLog.Fatal("generator initialization failed", zap.Error(err))
	}

	pipe := pipeline.New(pipeline.Options{
		Classifier: classifier.New(classifier.DefaultLexicon(), aiClient, regions.Classification, cfg.Classifier, log),
		Generator:  gen,
		Fallback:   fallback.NewEngine(log),
		Renderer:   render.NewEngine(regions.Templates, log),
		Caches:     regions,
		Logger:     log,
		Config:     cfg.Generator,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := pipe.Generate(ctx, pipeline.Request{
		RawText:   rawText,
		Specialty: *specialty,
		Fresh:     *fresh,
	})
	if err != nil {
		zapLog.Fatal("generation failed", zap.Error(err))
	}

	if err := os.WriteFile(*outputFile, []byte(result.HTML), 0o644); err != nil {
		zapLog.Fatal("failed to write site", zap.Error(err), zap.String("path", *outputFile))
	}
	if err := writeMetadata(*metaFile, result); err != nil {
		zapLog.Fatal("failed to write metadata", zap.Error(err), zap.String("path", *metaFile))
	}

	zapLog.Info("Website generated",
		zap.String("site", *outputFile),
		zap.String("specialty", result.Classification.Specialty),
		zap.String("method", string(result.Classification.Method)),
		zap.Float64("qualityScore", result.QualityScore),
		zap.Bool("fallbackUsed", result.FallbackUsed),
	)
}

func readDescription(inputFile string, args []string) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("pass a description as an argument or via -input")
}

// buildRegions constructs the three cache regions on the configured
// backend. Redis connectivity is verified with retry before use.
func buildRegions(cfg *config.Config, zapLog *zap.Logger) (*cache.Regions, error) {
	ttl := time.Duration(cfg.Cache.TTL) * time.Second
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryRegions(ttl), nil
	}

	client := cache.NewRedisClient(cfg.Cache.Redis)
	err := retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}, 5, 500*time.Millisecond, zapLog, "Redis connection")
	if err != nil {
		return nil, err
	}
	return cache.NewRedisRegions(client, ttl), nil
}

type metadata struct {
	Specialty       string            `json:"specialty"`
	Method          string            `json:"classificationMethod"`
	Confidence      float64           `json:"classificationConfidence"`
	QualityScore    float64           `json:"qualityScore"`
	FallbackUsed    bool              `json:"fallbackUsed"`
	ContentFeatures []string          `json:"contentFeatures,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	RequestNonce    string            `json:"requestNonce"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	Classification  classifier.Result `json:"classification"`
}

func writeMetadata(path string, result *pipeline.Result) error {
	meta := metadata{
		Specialty:       result.Content.Specialty,
		Method:          string(result.Classification.Method),
		Confidence:      result.Classification.Confidence,
		QualityScore:    result.QualityScore,
		FallbackUsed:    result.FallbackUsed,
		ContentFeatures: result.Content.ContentFeatures,
		Recommendations: content.Recommendations(result.Content),
		RequestNonce:    result.RequestNonce,
		GeneratedAt:     result.Content.GeneratedAt,
		Classification:  result.Classification,
	}
	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(encoded, '\n'), 0o644)
}
