package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadquiz-backend/internal/http/response"
	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/services"
)

type AnalysisHandler struct {
	analysisService services.AnalysisService
}

func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// GET /api/analysis/stats
func (ah *AnalysisHandler) GetStats(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	stats, err := ah.analysisService.GetStats(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, stats)
}

// GET /api/analysis/wrong-answers
func (ah *AnalysisHandler) GetWrongAnswers(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	rows, err := ah.analysisService.GetWrongAnswers(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/analysis/progress
func (ah *AnalysisHandler) GetProgress(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	progress, err := ah.analysisService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, progress)
}
