// Package gateway fronts the generative backend: it admits callers, serves
// cached dialog, composes prompts, and turns backend text into validated
// levels or dialog lines.
package gateway

//go:generate mockgen -destination=mock/mock_service.go -package=gatewaymock github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway Service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-levelgen/internal/clients/genai"
	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/extract"
	"github.com/KirkDiggler/rpg-levelgen/internal/levelgen"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-levelgen/internal/prompt"
	"github.com/KirkDiggler/rpg-levelgen/internal/repositories/admission"
	"github.com/KirkDiggler/rpg-levelgen/internal/repositories/dialogcache"
	"github.com/KirkDiggler/rpg-levelgen/internal/sanitize"
	"github.com/KirkDiggler/rpg-levelgen/internal/validation"
)

const (
	// MaxPromptLength bounds caller-supplied prompts, in characters
	MaxPromptLength = 8000
	// MaxPlayerMessageLength bounds the sanitized player message
	MaxPlayerMessageLength = 200
	// MaxNPCNameLength bounds the sanitized NPC name
	MaxNPCNameLength = 50

	// DefaultBackendTimeout is imposed on every backend call
	DefaultBackendTimeout = 30 * time.Second

	// FallbackDialog is shown when no dialog could be generated
	FallbackDialog = "Hmm, I seem to have lost my train of thought. Let's keep going!"

	tracerName = "github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"

	// MetaDiagnostics holds validator output on validation failures
	MetaDiagnostics = "diagnostics"
	// MetaResetAt holds the admission window end on rate limit errors
	MetaResetAt = "reset_at"
)

// Service is the gateway between callers and the generative backend
type Service interface {
	// GenerateLevel always calls the backend. The backend text is extracted
	// and validated; nothing partial is ever returned.
	GenerateLevel(ctx context.Context, input *GenerateLevelInput) (*GenerateLevelOutput, error)

	// GenerateDialog serves from the cache when the key is present and
	// otherwise calls the backend and caches the result.
	GenerateDialog(ctx context.Context, input *GenerateDialogInput) (*GenerateDialogOutput, error)

	// NextDifficulty adapts difficulty to performance. It is pure and is
	// not subject to admission.
	NextDifficulty(ctx context.Context, input *NextDifficultyInput) (*NextDifficultyOutput, error)

	// FallbackLevel returns a procedural level for callers whose generation
	// request failed
	FallbackLevel(ctx context.Context, input *FallbackLevelInput) (*FallbackLevelOutput, error)
}

// Config holds the dependencies for the gateway orchestrator
type Config struct {
	Backend     genai.Client
	Admission   admission.Repository
	DialogCache dialogcache.Repository
	Fallback    *levelgen.Generator
	IDGenerator idgen.Generator

	// Optional
	Logger         *logger.Logger
	Clock          clock.Clock
	Tracer         trace.Tracer
	BackendTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if c.Admission == nil {
		vb.RequiredField("Admission")
	}
	if c.DialogCache == nil {
		vb.RequiredField("DialogCache")
	}
	if c.Fallback == nil {
		vb.RequiredField("Fallback")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.BackendTimeout < 0 {
		vb.Field("BackendTimeout", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	backend  genai.Client
	admit    admission.Repository
	cache    dialogcache.Repository
	fallback *levelgen.Generator
	idGen    idgen.Generator
	log      *logger.Logger
	clock    clock.Clock
	tracer   trace.Tracer
	timeout  time.Duration
}

// NewOrchestrator creates a gateway with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		backend:  cfg.Backend,
		admit:    cfg.Admission,
		cache:    cfg.DialogCache,
		fallback: cfg.Fallback,
		idGen:    cfg.IDGenerator,
		log:      cfg.Logger,
		clock:    cfg.Clock,
		tracer:   cfg.Tracer,
		timeout:  cfg.BackendTimeout,
	}
	if o.log == nil {
		o.log = logger.NewNop()
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	if o.timeout == 0 {
		o.timeout = DefaultBackendTimeout
	}

	return o, nil
}

func (o *orchestrator) GenerateLevel(ctx context.Context, input *GenerateLevelInput) (*GenerateLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCaller(input.CallerID); err != nil {
		return nil, err
	}
	if err := validatePrompt(input.Prompt); err != nil {
		return nil, err
	}

	d := difficulty.Clamp(input.Difficulty)
	if input.Stats != nil {
		d = difficulty.Next(*input.Stats)
	}

	requestID := o.idGen.Generate()
	log := o.log.With("request_id", requestID, "caller_id", input.CallerID, "operation", "generate_level")

	if err := o.admitCaller(ctx, input.CallerID); err != nil {
		log.Info("request rejected by admission")
		return nil, err
	}

	text := input.Prompt
	if text == "" {
		text = prompt.BuildLevelPrompt(d, input.LevelNumber)
	}

	start := o.clock.Now()
	raw, err := o.complete(ctx, "generate_level", text)
	if err != nil {
		log.Warn("backend call failed", "error", err, "elapsed", o.clock.Now().Sub(start))
		return nil, err
	}

	candidate, err := extract.Document(raw)
	if err != nil {
		log.Warn("backend output could not be parsed", "error", err, "raw_length", len(raw))
		return nil, err
	}

	result := validation.Validate(candidate)
	if !result.Valid {
		log.Warn("generated level failed validation", "diagnostics", result.Errors)
		return nil, errors.ValidationFailure("generated level failed validation").
			WithMeta(MetaDiagnostics, result.Errors)
	}

	log.Info("level generated",
		"difficulty", d,
		"platforms", len(result.Data.Platforms),
		"elapsed", o.clock.Now().Sub(start),
	)

	return &GenerateLevelOutput{
		RequestID:  requestID,
		Level:      result.Data,
		Difficulty: d,
		Theme:      prompt.Theme(input.LevelNumber),
	}, nil
}

func (o *orchestrator) GenerateDialog(ctx context.Context, input *GenerateDialogInput) (*GenerateDialogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCaller(input.CallerID); err != nil {
		return nil, err
	}
	if err := validatePrompt(input.Prompt); err != nil {
		return nil, err
	}

	text := input.Prompt
	if text == "" {
		npcName := sanitize.Sanitize(input.NPCName, MaxNPCNameLength)
		message := sanitize.Sanitize(input.PlayerMessage, MaxPlayerMessageLength)
		vb := errors.NewValidationBuilder()
		if npcName == "" {
			vb.RequiredField("npc_name")
		}
		if message == "" {
			vb.RequiredField("player_message")
		}
		if err := vb.Build(); err != nil {
			return nil, err
		}
		text = prompt.BuildNPCDialogPrompt(npcName, message, input.LevelNumber)
	}

	requestID := o.idGen.Generate()
	log := o.log.With("request_id", requestID, "caller_id", input.CallerID, "operation", "generate_dialog")

	if err := o.admitCaller(ctx, input.CallerID); err != nil {
		log.Info("request rejected by admission")
		return nil, err
	}

	if input.CacheKey != "" {
		hit, err := o.cache.Get(ctx, &dialogcache.GetInput{Key: input.CacheKey})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read dialog cache")
		}
		if hit.Found {
			log.Debug("dialog served from cache")
			return &GenerateDialogOutput{RequestID: requestID, Dialog: hit.Value, Cached: true}, nil
		}
	}

	raw, err := o.complete(ctx, "generate_dialog", text)
	if err != nil {
		log.Warn("backend call failed", "error", err)
		return nil, err
	}

	dialog := strings.TrimSpace(raw)
	if dialog == "" {
		log.Warn("backend returned empty dialog")
		return nil, errors.ParseError("backend returned empty dialog")
	}

	if input.CacheKey != "" {
		out, err := o.cache.Put(ctx, &dialogcache.PutInput{Key: input.CacheKey, Value: dialog})
		if err != nil {
			// the line is still good, only memoization is lost
			log.Warn("failed to cache dialog", "error", err)
		} else if len(out.Evicted) > 0 {
			log.Debug("dialog cache evicted entries", "count", len(out.Evicted))
		}
	}

	return &GenerateDialogOutput{RequestID: requestID, Dialog: dialog}, nil
}

func (o *orchestrator) NextDifficulty(_ context.Context, input *NextDifficultyInput) (*NextDifficultyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	next := difficulty.Next(input.Stats)
	return &NextDifficultyOutput{
		Difficulty:  next,
		Description: difficulty.Describe(next),
	}, nil
}

func (o *orchestrator) FallbackLevel(ctx context.Context, input *FallbackLevelInput) (*FallbackLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fallback.Generate(ctx, &levelgen.GenerateInput{
		Difficulty:  input.Difficulty,
		LevelNumber: input.LevelNumber,
	})
	if err != nil {
		o.log.Error("fallback level generation failed", "error", err)
		return nil, err
	}

	return &FallbackLevelOutput{Level: out.Level, Theme: out.Theme}, nil
}

func (o *orchestrator) admitCaller(ctx context.Context, callerID string) error {
	out, err := o.admit.CheckAndIncrement(ctx, &admission.CheckAndIncrementInput{Key: callerID})
	if err != nil {
		return errors.Wrapf(err, "failed to check admission")
	}
	if !out.Allowed {
		return errors.RateLimited("too many requests, please try again later").
			WithMeta(MetaResetAt, out.ResetAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// complete calls the backend under the configured timeout. Every failure,
// including cancellation, is reported as an upstream error.
func (o *orchestrator) complete(ctx context.Context, operation, text string) (string, error) {
	ctx, span := o.tracer.Start(ctx, "genai.Complete", trace.WithAttributes(
		attribute.String("levelgen.operation", operation),
		attribute.Int("levelgen.prompt_length", len(text)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	raw, err := o.backend.Complete(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "backend call failed")
		return "", errors.Upstream(err, "generative backend request failed")
	}

	span.SetAttributes(attribute.Int("levelgen.response_length", len(raw)))
	return raw, nil
}

func validateCaller(callerID string) error {
	if strings.TrimSpace(callerID) == "" {
		return errors.InvalidArgument("caller id is required")
	}
	return nil
}

func validatePrompt(p string) error {
	if p == "" {
		return nil
	}
	if strings.TrimSpace(p) == "" {
		return errors.InvalidArgument("prompt must not be blank")
	}
	if n := utf8.RuneCountInString(p); n > MaxPromptLength {
		return errors.InvalidArgumentf("prompt is too long: %d characters (max %d)", n, MaxPromptLength)
	}
	return nil
}
