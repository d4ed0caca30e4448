// Package v1alpha1 serves the level gateway over gRPC
package v1alpha1

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"
)

// CallerIDHeader is the metadata key callers may use to identify themselves
// for admission. Without it the peer address is used.
const CallerIDHeader = "x-caller-id"

// HandlerConfig holds dependencies for the gateway handler
type HandlerConfig struct {
	Service gateway.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Service == nil {
		return errors.InvalidArgument("gateway service is required")
	}
	return nil
}

var _ GatewayServiceServer = (*Handler)(nil)

// Handler implements GatewayServiceServer
type Handler struct {
	service gateway.Service
}

// NewHandler creates a new gateway handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// GenerateLevel generates and validates a level
func (h *Handler) GenerateLevel(ctx context.Context, req *GenerateLevelRequest) (*GenerateLevelResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	out, err := h.service.GenerateLevel(ctx, &gateway.GenerateLevelInput{
		CallerID:    CallerID(ctx),
		Prompt:      req.Prompt,
		Difficulty:  req.Difficulty,
		LevelNumber: req.LevelNumber,
		Stats:       req.Stats,
	})
	if err != nil {
		return nil, errors.ToGRPCError(gateway.PublicLevelError(err))
	}

	return &GenerateLevelResponse{
		RequestID:  out.RequestID,
		LevelData:  out.Level,
		Difficulty: out.Difficulty,
		Theme:      out.Theme,
	}, nil
}

// GenerateDialog returns an NPC line, from cache when possible
func (h *Handler) GenerateDialog(ctx context.Context, req *GenerateDialogRequest) (*GenerateDialogResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	out, err := h.service.GenerateDialog(ctx, &gateway.GenerateDialogInput{
		CallerID:      CallerID(ctx),
		Prompt:        req.Prompt,
		CacheKey:      req.CacheKey,
		NPCName:       req.NPCName,
		PlayerMessage: req.PlayerMessage,
		LevelNumber:   req.LevelNumber,
	})
	if err != nil {
		return nil, errors.ToGRPCError(gateway.PublicDialogError(err))
	}

	return &GenerateDialogResponse{
		RequestID: out.RequestID,
		Dialog:    out.Dialog,
		Cached:    out.Cached,
	}, nil
}

// NextDifficulty adapts difficulty to the reported performance
func (h *Handler) NextDifficulty(ctx context.Context, req *NextDifficultyRequest) (*NextDifficultyResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	out, err := h.service.NextDifficulty(ctx, &gateway.NextDifficultyInput{Stats: req.Stats})
	if err != nil {
		return nil, errors.ToGRPCError(gateway.PublicError(err))
	}

	return &NextDifficultyResponse{
		Difficulty:  out.Difficulty,
		Description: out.Description,
	}, nil
}

// FallbackLevel returns a procedural level
func (h *Handler) FallbackLevel(ctx context.Context, req *FallbackLevelRequest) (*FallbackLevelResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	out, err := h.service.FallbackLevel(ctx, &gateway.FallbackLevelInput{
		Difficulty:  req.Difficulty,
		LevelNumber: req.LevelNumber,
	})
	if err != nil {
		return nil, errors.ToGRPCError(gateway.PublicError(err))
	}

	return &FallbackLevelResponse{LevelData: out.Level, Theme: out.Theme}, nil
}

// CallerID identifies the caller for admission: the x-caller-id metadata
// value if present, else the peer host. It returns "" when neither is known.
func CallerID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		for _, v := range md.Get(CallerIDHeader) {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}

	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
