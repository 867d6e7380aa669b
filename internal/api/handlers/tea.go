package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tea-engine/internal/analysis"
	"tea-engine/internal/api/models"
	"tea-engine/internal/catalog"
	"tea-engine/internal/finance"
	"tea-engine/internal/model"
	"tea-engine/internal/validate"
)

// TEAHandler serves the techno-economic analysis endpoints.
type TEAHandler struct {
	catalog *catalog.Catalog
	engine  *finance.Engine
	log     zerolog.Logger
}

// NewTEAHandler creates the handler. The engine itself is stateless; one
// instance serves all requests concurrently.
func NewTEAHandler(cat *catalog.Catalog, log zerolog.Logger) *TEAHandler {
	return &TEAHandler{
		catalog: cat,
		engine:  finance.New(),
		log:     log.With().Str("module", "tea").Logger(),
	}
}

// Calculate handles POST /api/v1/tea/calculate.
func (h *TEAHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	inputs, ok := h.resolveAndValidate(c, req.TechnologyID, req.InputOverrides)
	if !ok {
		return
	}

	result, err := h.engine.Calculate(inputs)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	if !req.Options.IncludeLedger {
		trimmed := *result
		trimmed.Ledger = nil
		result = &trimmed
	}

	c.JSON(http.StatusOK, models.CalculateResponse{
		ID:              uuid.NewString(),
		FinancialResult: result,
	})
}

// QuickLCOE handles POST /api/v1/tea/quick-lcoe: a rough estimate from
// minimal inputs, default assumptions for everything else.
func (h *TEAHandler) QuickLCOE(c *gin.Context) {
	var req models.QuickLCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	overrides := model.InputOverrides{
		CapacityMW:           &req.CapacityMW,
		CapexPerKW:           &req.CapexPerKW,
		OpexPerKWYear:        &req.OpexPerKWYear,
		CapacityFactor:       req.CapacityFactor,
		ProjectLifetimeYears: req.ProjectLifetimeYears,
		DiscountRate:         req.DiscountRate,
	}
	if overrides.CapacityFactor == nil {
		cf := 0.25
		overrides.CapacityFactor = &cf
	}

	inputs, ok := h.resolveAndValidate(c, "", overrides)
	if !ok {
		return
	}

	result, err := h.engine.Calculate(inputs)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.QuickLCOEResponse{
		LCOE:                result.LCOE,
		TotalCapex:          result.TotalCapex,
		AnnualProductionMWh: result.AnnualProductionMWh,
		Unit:                "$/MWh",
	})
}

// Compare handles POST /api/v1/tea/compare: each variation's overrides are
// applied on top of the resolved base inputs and run independently.
func (h *TEAHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	base, ok := h.resolveAndValidate(c, req.Base.TechnologyID, req.Base.InputOverrides)
	if !ok {
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		inputs := variation.Overrides.ApplyTo(base)
		if violations := validate.Inputs(inputs); len(violations) > 0 {
			h.log.Warn().Str("variation", variation.Name).Int("violations", len(violations)).Msg("skipping invalid variation")
			continue
		}
		result, err := h.engine.Calculate(inputs)
		if err != nil {
			h.log.Warn().Str("variation", variation.Name).Err(err).Msg("skipping failed variation")
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: models.SummaryFromResult(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Sensitivity handles POST /api/v1/tea/sensitivity.
func (h *TEAHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	inputs, ok := h.resolveAndValidate(c, req.TechnologyID, req.InputOverrides)
	if !ok {
		return
	}

	result, err := analysis.Sensitivity(h.engine, inputs, req.Parameter, req.VariationsPct)
	if err != nil {
		var engineErr *finance.EngineError
		if errors.As(err, &engineErr) {
			writeEngineError(c, err)
			return
		}
		writeBadRequest(c, "INVALID_PARAMETER", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveAndValidate merges defaults with overrides and validates the result,
// writing the error response itself when something is wrong.
func (h *TEAHandler) resolveAndValidate(c *gin.Context, technologyID string, overrides model.InputOverrides) (model.ProjectInputs, bool) {
	inputs, err := h.catalog.Resolve(technologyID, overrides)
	if err != nil {
		var unknown *catalog.UnknownTechnologyError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_TECHNOLOGY",
					Message: err.Error(),
					Field:   "technology_id",
				},
			})
			return model.ProjectInputs{}, false
		}
		writeBadRequest(c, "INVALID_REQUEST", err.Error())
		return model.ProjectInputs{}, false
	}

	if violations := validate.Inputs(inputs); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: violations[0].Error(),
				Field:   violations[0].Field,
				Details: map[string]any{"violations": violations},
			},
		})
		return model.ProjectInputs{}, false
	}

	return inputs, true
}

func writeBadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

// writeEngineError maps typed computation failures to 422: the request was
// well-formed but has no valid financial answer.
func writeEngineError(c *gin.Context, err error) {
	var engineErr *finance.EngineError
	if errors.As(err, &engineErr) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    string(engineErr.Kind),
				Message: engineErr.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
	})
}
