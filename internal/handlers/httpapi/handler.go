package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"
)

// Handler serves the gateway routes
type Handler struct {
	service gateway.Service
}

type generateLevelRequest struct {
	Prompt      string                       `json:"prompt"`
	Difficulty  int                          `json:"difficulty"`
	LevelNumber int                          `json:"levelNumber"`
	Stats       *difficulty.PerformanceStats `json:"stats"`
}

type generateLevelResponse struct {
	RequestID  string          `json:"requestId"`
	LevelData  *level.Document `json:"levelData"`
	Difficulty int             `json:"difficulty"`
	Theme      string          `json:"theme"`
}

type npcDialogRequest struct {
	Prompt        string `json:"prompt"`
	CacheKey      string `json:"cacheKey"`
	NPCName       string `json:"npcName"`
	PlayerMessage string `json:"playerMessage"`
	LevelNumber   int    `json:"levelNumber"`
}

type npcDialogResponse struct {
	Dialog string `json:"dialog"`
	Cached bool   `json:"cached"`
}

type adjustDifficultyResponse struct {
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
}

type fallbackLevelResponse struct {
	LevelData *level.Document `json:"levelData"`
	Theme     string          `json:"theme"`
}

// errorResponse is the failure body. Fallback and Dialog tell the caller how
// to degrade.
type errorResponse struct {
	Error    string `json:"error"`
	Fallback bool   `json:"fallback,omitempty"`
	Dialog   string `json:"dialog,omitempty"`
}

// HealthCheck reports liveness
func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GenerateLevel handles POST /api/generate-level
func (h *Handler) GenerateLevel(c *gin.Context) {
	var req generateLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.GenerateLevel(c.Request.Context(), &gateway.GenerateLevelInput{
		CallerID:    c.ClientIP(),
		Prompt:      req.Prompt,
		Difficulty:  req.Difficulty,
		LevelNumber: req.LevelNumber,
		Stats:       req.Stats,
	})
	if err != nil {
		respondError(c, gateway.PublicLevelError(err))
		return
	}

	c.JSON(http.StatusOK, generateLevelResponse{
		RequestID:  out.RequestID,
		LevelData:  out.Level,
		Difficulty: out.Difficulty,
		Theme:      out.Theme,
	})
}

// NPCDialog handles POST /api/npc-dialog. Without an explicit cache key,
// structured requests are cached under npcName:playerMessage.
func (h *Handler) NPCDialog(c *gin.Context) {
	var req npcDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	cacheKey := req.CacheKey
	if cacheKey == "" && req.Prompt == "" && req.NPCName != "" && req.PlayerMessage != "" {
		cacheKey = fmt.Sprintf("%s:%s", req.NPCName, req.PlayerMessage)
	}

	out, err := h.service.GenerateDialog(c.Request.Context(), &gateway.GenerateDialogInput{
		CallerID:      c.ClientIP(),
		Prompt:        req.Prompt,
		CacheKey:      cacheKey,
		NPCName:       req.NPCName,
		PlayerMessage: req.PlayerMessage,
		LevelNumber:   req.LevelNumber,
	})
	if err != nil {
		respondError(c, gateway.PublicDialogError(err))
		return
	}

	c.JSON(http.StatusOK, npcDialogResponse{Dialog: out.Dialog, Cached: out.Cached})
}

// AdjustDifficulty handles POST /api/adjust-difficulty
func (h *Handler) AdjustDifficulty(c *gin.Context) {
	var stats difficulty.PerformanceStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.service.NextDifficulty(c.Request.Context(), &gateway.NextDifficultyInput{Stats: stats})
	if err != nil {
		respondError(c, gateway.PublicError(err))
		return
	}

	c.JSON(http.StatusOK, adjustDifficultyResponse{Difficulty: out.Difficulty, Description: out.Description})
}

// FallbackLevel handles GET /api/fallback-level?difficulty=N&level=N
func (h *Handler) FallbackLevel(c *gin.Context) {
	d, qerr := queryInt(c, "difficulty")
	if qerr != nil {
		respondError(c, qerr)
		return
	}
	n, qerr := queryInt(c, "level")
	if qerr != nil {
		respondError(c, qerr)
		return
	}

	out, err := h.service.FallbackLevel(c.Request.Context(), &gateway.FallbackLevelInput{
		Difficulty:  d,
		LevelNumber: n,
	})
	if err != nil {
		respondError(c, gateway.PublicError(err))
		return
	}

	c.JSON(http.StatusOK, fallbackLevelResponse{LevelData: out.Level, Theme: out.Theme})
}

func queryInt(c *gin.Context, name string) (int, *errors.Error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer", name)
	}
	return v, nil
}

func respondError(c *gin.Context, err *errors.Error) {
	body := errorResponse{Error: err.Message}
	if fallback, ok := err.Meta[gateway.MetaFallback].(bool); ok {
		body.Fallback = fallback
	}
	if dialog, ok := err.Meta[gateway.MetaDialog].(string); ok {
		body.Dialog = dialog
	}
	if resetAt, ok := err.Meta[gateway.MetaResetAt].(string); ok {
		if t, perr := time.Parse(time.RFC3339, resetAt); perr == nil {
			secs := int(time.Until(t).Seconds()) + 1
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
		}
	}
	c.JSON(err.Code.HTTPStatus(), body)
}
