package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadquiz-backend/internal/http/response"
	"github.com/yungbote/roadquiz-backend/internal/services"
)

type SearchHandler struct {
	vectorService services.VectorService // optional, may be nil
}

func NewSearchHandler(vectorService services.VectorService) *SearchHandler {
	return &SearchHandler{vectorService: vectorService}
}

// GET /api/search/quiz?q=...&limit=5
func (sh *SearchHandler) SearchQuiz(c *gin.Context) {
	if sh.vectorService == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "search_unavailable", fmt.Errorf("vector store not configured"))
		return
	}
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_query", fmt.Errorf("q is required"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	results, err := sh.vectorService.SearchSimilar(c.Request.Context(), query, limit)
	if err != nil {
		response.RespondError(c, http.StatusServiceUnavailable, "search_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"results": results})
}

// GET /api/search/status
func (sh *SearchHandler) Status(c *gin.Context) {
	if sh.vectorService == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "search_unavailable", fmt.Errorf("vector store not configured"))
		return
	}
	ready, err := sh.vectorService.Status(c.Request.Context())
	if err != nil || !ready {
		response.RespondError(c, http.StatusServiceUnavailable, "search_not_ready", err)
		return
	}
	response.RespondOK(c, gin.H{"ready": true})
}
