package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soyroberto/roblox/pkg/apperr"
	"github.com/soyroberto/roblox/pkg/calculator"
	"github.com/soyroberto/roblox/pkg/catalog"
)

// Handlers serves the content API from an immutable catalog built once at
// startup.
type Handlers struct {
	catalog    *catalog.Catalog
	steps      *catalog.StepSequence
	calculator *calculator.Calculator
}

// NewHandlers builds the handler set over the loaded content.
func NewHandlers(cat *catalog.Catalog, steps *catalog.StepSequence) *Handlers {
	return &Handlers{
		catalog:    cat,
		steps:      steps,
		calculator: calculator.New(cat),
	}
}

// ListComponents handles GET /api/components.
// It returns all components ordered by step_order, optionally filtered by
// the ?difficulty= query parameter.
func (h *Handlers) ListComponents(c *gin.Context) {
	difficulty := c.Query("difficulty")
	if difficulty != "" && !catalog.ValidDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty level: " + difficulty})
		return
	}
	c.JSON(http.StatusOK, h.catalog.List(catalog.DifficultyLevel(difficulty)))
}

// GetComponent handles GET /api/components/:id.
func (h *Handlers) GetComponent(c *gin.Context) {
	comp, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comp)
}

// ListSteps handles GET /api/steps.
// It returns all journey steps ordered by step_number.
func (h *Handlers) ListSteps(c *gin.Context) {
	c.JSON(http.StatusOK, h.steps.List())
}

// GetStep handles GET /api/steps/:number.
func (h *Handlers) GetStep(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step number must be an integer"})
		return
	}
	step, err := h.steps.Get(number)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

// CalculateCapacity handles POST /api/calculate-capacity.
func (h *Handlers) CalculateCapacity(c *gin.Context) {
	var req calculator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.calculator.Calculate(req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Overview handles GET /api/overview.
func (h *Handlers) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Overview())
}

// abortWithError maps the error taxonomy onto HTTP statuses. Unknown errors
// become a 500 without leaking internals.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidInput, apperr.KindUnsupportedCalculationType:
		status = http.StatusBadRequest
	case apperr.KindUnsupportedComponentType:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
