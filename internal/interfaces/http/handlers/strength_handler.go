package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moura95/passmeter/internal/application/dto"
	"github.com/moura95/passmeter/internal/application/services/strength"
	strengthUC "github.com/moura95/passmeter/internal/application/usecases/strength"
	"github.com/moura95/passmeter/internal/interfaces/http/ginx"
)

type StrengthHandler struct {
	strengthService *strength.StrengthService
}

func NewStrengthHandler(strengthService *strength.StrengthService) *StrengthHandler {
	return &StrengthHandler{
		strengthService: strengthService,
	}
}

// @Summary Evaluate password strength
// @Description Score a candidate password against the user's name and return what the strength bar needs
// @Tags strength
// @Accept json
// @Produce json
// @Param request body dto.EvaluatePasswordRequest true "Evaluate request"
// @Success 200 {object} ginx.Response{data=dto.EvaluatePasswordResponse}
// @Failure 400 {object} ginx.Response
// @Failure 429 {object} ginx.Response
// @Router /strength [post]
func (h *StrengthHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluatePasswordRequest

	if err := ginx.ParseJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ginx.ErrorResponse("handler: evaluate failed: invalid request format"))
		return
	}

	result, err := h.strengthService.EvaluatePassword(c.Request.Context(), strengthUC.EvaluatePasswordRequest{
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		statusCode := getStatusCodeFromError(err)
		c.JSON(statusCode, ginx.ErrorResponse(fmt.Sprintf("handler: evaluate failed: %v", err)))
		return
	}

	response := dto.EvaluatePasswordResponse{
		EvaluationID: result.EvaluationID.String(),
		Score:        result.Score,
		Label:        result.Label,
		Color:        string(result.Color),
		BarWidth:     result.BarWidth,
		ShowTips:     result.ShowTips,
	}

	c.JSON(http.StatusOK, ginx.SuccessResponse(response))
}

// @Summary Evaluation statistics
// @Description Count recorded evaluations per strength label
// @Tags strength
// @Produce json
// @Success 200 {object} ginx.Response{data=dto.StatsResponse}
// @Failure 503 {object} ginx.Response
// @Router /strength/stats [get]
func (h *StrengthHandler) Stats(c *gin.Context) {
	stats, err := h.strengthService.GetStats(c.Request.Context())
	if err != nil {
		statusCode := getStatusCodeFromError(err)
		c.JSON(statusCode, ginx.ErrorResponse(fmt.Sprintf("handler: stats failed: %v", err)))
		return
	}

	c.JSON(http.StatusOK, ginx.SuccessResponse(dto.StatsResponse{
		Total:   stats.Total,
		ByLabel: stats.ByLabel,
	}))
}

func getStatusCodeFromError(err error) int {
	if errors.Is(err, strengthUC.ErrStoreNotConfigured) {
		return http.StatusServiceUnavailable
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "exceeds maximum length") ||
		strings.Contains(errMsg, "invalid") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
