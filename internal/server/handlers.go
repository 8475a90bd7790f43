package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/tokensmith/internal/contrast"
	"github.com/alexisbeaulieu97/tokensmith/internal/darkmode"
	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/fonts"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Handler serves the token engine over HTTP.
type Handler struct {
	fonts          fonts.Resolver
	defaultContext strategy.Context
}

// NewHandler builds a Handler. A nil resolver uses the popular font catalog.
func NewHandler(resolver fonts.Resolver, defaultContext strategy.Context) *Handler {
	if resolver == nil {
		resolver = fonts.NewCatalog(fonts.Popular...)
	}
	return &Handler{fonts: resolver, defaultContext: defaultContext}
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// DefaultTokens returns the initial token graph.
func (h *Handler) DefaultTokens(c *gin.Context) {
	RespondOK(c, tokens.Default())
}

type contrastRequest struct {
	Foreground string `json:"fg" binding:"required"`
	Background string `json:"bg" binding:"required"`
}

type contrastResponse struct {
	Ratio   float64 `json:"ratio"`
	Display string  `json:"display"`
	Level   string  `json:"level"`
	AA      bool    `json:"aa"`
	AAA     bool    `json:"aaa"`
}

func newContrastResponse(r contrast.Result) contrastResponse {
	return contrastResponse{Ratio: r.Ratio, Display: r.Display(), Level: r.Level(), AA: r.AA, AAA: r.AAA}
}

// Contrast evaluates one foreground/background pair.
func (h *Handler) Contrast(c *gin.Context) {
	var req contrastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	result, err := contrast.EvaluateHex(req.Foreground, req.Background)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, newContrastResponse(result))
}

type auditPair struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Foreground string           `json:"fg"`
	Background string           `json:"bg"`
	Result     contrastResponse `json:"result"`
}

type auditResponse struct {
	Score    int             `json:"score"`
	Passing  int             `json:"passing"`
	Pairs    []auditPair     `json:"pairs"`
	Warnings []fonts.Warning `json:"fontWarnings"`
}

// Audit scores the canonical pairs of a posted token document.
func (h *Handler) Audit(c *gin.Context) {
	g, ok := h.bindGraph(c)
	if !ok {
		return
	}
	report, err := contrast.Audit(g)
	if err != nil {
		RespondError(c, err)
		return
	}

	resp := auditResponse{
		Score:    report.Score,
		Passing:  report.Passing(),
		Pairs:    make([]auditPair, 0, len(report.Pairs)),
		Warnings: fonts.Check(h.fonts, g),
	}
	for _, p := range report.Pairs {
		resp.Pairs = append(resp.Pairs, auditPair{
			ID:         p.ID,
			Label:      p.Label,
			Foreground: p.Foreground,
			Background: p.Background,
			Result:     newContrastResponse(p.Result),
		})
	}
	RespondOK(c, resp)
}

type counterpartRequest struct {
	Color string `json:"color" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

type counterpartResponse struct {
	Color       string `json:"color"`
	Role        string `json:"role"`
	Counterpart string `json:"counterpart"`
}

// DarkCounterpart derives the dark-mode counterpart of a light color.
func (h *Handler) DarkCounterpart(c *gin.Context) {
	var req counterpartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	role, err := darkmode.ParseRole(req.Role)
	if err != nil {
		RespondError(c, err)
		return
	}
	out, err := darkmode.CounterpartHex(req.Color, role)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, counterpartResponse{Color: req.Color, Role: role.String(), Counterpart: out})
}

type typeScaleRequest struct {
	BaseSize  float64 `json:"baseSize"`
	Ratio     float64 `json:"ratio"`
	RatioName string  `json:"ratioName"`
}

type typeScaleResponse struct {
	typescale.Scale
	Px        map[string]int `json:"px"`
	RatioName string         `json:"ratioName,omitempty"`
}

// TypeScale computes a ladder from a base size and a numeric or named ratio.
func (h *Handler) TypeScale(c *gin.Context) {
	var req typeScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	if req.RatioName != "" {
		ratio, ok := typescale.LookupRatio(req.RatioName)
		if !ok {
			RespondError(c, tserrors.NewValidationError("ratioName", "unknown named ratio "+req.RatioName, nil))
			return
		}
		req.Ratio = ratio
	}

	scale, err := typescale.Compute(req.BaseSize, req.Ratio)
	if err != nil {
		RespondError(c, err)
		return
	}

	resp := typeScaleResponse{Scale: scale, Px: make(map[string]int, typescale.StepCount)}
	for _, level := range typescale.Levels() {
		resp.Px[level.String()] = scale.StepPx(level)
	}
	resp.RatioName, _ = typescale.NameOf(scale.Ratio)
	RespondOK(c, resp)
}

type resolveRequest struct {
	BusinessType   string `json:"businessType"`
	BrandVibe      string `json:"brandVibe"`
	ConversionGoal string `json:"conversionGoal"`
}

type resolveResponse struct {
	strategy.Blueprint
	Recommendation strategy.Recommendation `json:"recommendation"`
}

// Resolve maps a business context to a template and sitemap. Empty fields
// take the configured default; unknown values are rejected.
func (h *Handler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	ctx, err := h.parseContext(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	bp := strategy.NewBlueprint(ctx)
	RespondOK(c, resolveResponse{Blueprint: bp, Recommendation: bp.Recommendation()})
}

type exportRequest struct {
	Tokens  json.RawMessage           `json:"tokens"`
	Context *resolveRequest           `json:"context"`
	Pages   []strategy.PageDefinition `json:"pages"`
}

var contentTypes = map[export.Format]string{
	export.FormatJSON:   "application/json; charset=utf-8",
	export.FormatCSS:    "text/css; charset=utf-8",
	export.FormatConfig: "text/javascript; charset=utf-8",
	export.FormatBrief:  "text/markdown; charset=utf-8",
}

// Export renders posted tokens in the format named by the path.
func (h *Handler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		RespondError(c, err)
		return
	}

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	if len(req.Tokens) == 0 {
		RespondError(c, tserrors.NewImportError("request", "tokens", "missing tokens document", nil))
		return
	}
	g, err := export.FromJSON(req.Tokens)
	if err != nil {
		RespondError(c, err)
		return
	}

	ctx := h.defaultContext
	if req.Context != nil {
		if ctx, err = h.parseContext(*req.Context); err != nil {
			RespondError(c, err)
			return
		}
	}
	bp := strategy.NewBlueprint(ctx)
	if req.Pages != nil {
		bp = bp.WithPages(req.Pages)
	}

	out, err := export.Export(g, &bp, format)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypes[format], []byte(out))
}

func (h *Handler) bindGraph(c *gin.Context) (tokens.Graph, bool) {
	body, err := c.GetRawData()
	if err != nil {
		RespondBadRequest(c, err)
		return tokens.Graph{}, false
	}
	g, err := export.FromJSON(body)
	if err != nil {
		RespondError(c, err)
		return tokens.Graph{}, false
	}
	return g, true
}

func (h *Handler) parseContext(req resolveRequest) (strategy.Context, error) {
	def := h.defaultContext
	pick := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}
	return strategy.ParseContext(
		pick(req.BusinessType, string(def.BusinessType)),
		pick(req.BrandVibe, string(def.BrandVibe)),
		pick(req.ConversionGoal, string(def.ConversionGoal)),
	)
}
