package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-levelgen/internal/clients/genai"
	"github.com/KirkDiggler/rpg-levelgen/internal/config"
	"github.com/KirkDiggler/rpg-levelgen/internal/levelgen"
	"github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-levelgen/internal/redis"
	"github.com/KirkDiggler/rpg-levelgen/internal/repositories/admission"
	"github.com/KirkDiggler/rpg-levelgen/internal/repositories/dialogcache"
)

// dependencies holds everything the transports need, plus what must be
// released on shutdown
type dependencies struct {
	Gateway gateway.Service

	closers []func() error
	log     *logger.Logger
}

// Close releases resources in reverse order of acquisition
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.log.Warn("failed to release resource", "error", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *logger.Logger) (*dependencies, error) {
	deps := &dependencies{log: log}
	clk := clock.New()
	limits := admission.Limits{Window: cfg.RateLimitWindow, MaxRequests: cfg.RateLimitMaxRequests}

	var (
		admit admission.Repository
		cache dialogcache.Repository
	)

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{PoolSize: 20, MinIdleConns: 2})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)

		if err := redis.Ping(ctx, client); err != nil {
			deps.Close()
			return nil, err
		}

		admit, err = admission.NewRedis(&admission.RedisConfig{Client: client, Limits: limits, Clock: clk})
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to create admission store: %w", err)
		}
		cache, err = dialogcache.NewRedis(&dialogcache.RedisConfig{Client: client, Capacity: cfg.DialogCacheCapacity})
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to create dialog cache: %w", err)
		}
		log.Info("using redis stores", "addr", cfg.RedisAddr)

	default:
		mem, err := admission.NewMemory(&admission.MemoryConfig{
			Limits:  limits,
			IdleTTL: cfg.AdmissionIdleTTL,
			Clock:   clk,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create admission store: %w", err)
		}
		if cfg.AdmissionIdleTTL > 0 {
			mem.StartJanitor(cfg.AdmissionSweepEvery)
		}
		deps.closers = append(deps.closers, mem.Close)
		admit = mem

		memCache, err := dialogcache.NewMemory(&dialogcache.MemoryConfig{Capacity: cfg.DialogCacheCapacity})
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to create dialog cache: %w", err)
		}
		cache = memCache
	}

	backend, err := buildBackend(ctx, cfg, log)
	if err != nil {
		deps.Close()
		return nil, err
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		deps.closers = append(deps.closers, closer.Close)
	}

	svc, err := gateway.NewOrchestrator(&gateway.Config{
		Backend:        backend,
		Admission:      admit,
		DialogCache:    cache,
		Fallback:       levelgen.New(&levelgen.Config{}),
		IDGenerator:    idgen.UUID("req"),
		Logger:         log,
		Clock:          clk,
		BackendTimeout: cfg.Timeout,
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}
	deps.Gateway = svc

	return deps, nil
}

// buildBackend returns the Gemini client, or a client that always fails when
// no API key is configured so callers get fallback responses
func buildBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (genai.Client, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn("no generative backend configured; every generation will fall back")
		return genai.Unconfigured{}, nil
	}

	client, err := genai.NewGemini(ctx, &genai.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	log.Info("using gemini backend", "model", cfg.GeminiModel)
	return client, nil
}
