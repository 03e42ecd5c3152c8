package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/roadquiz-backend/internal/clients/gcp"
	"github.com/yungbote/roadquiz-backend/internal/http/response"
	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
	"github.com/yungbote/roadquiz-backend/internal/services"
)

// Uploaded dashcam clips are capped at 200MB.
const maxVideoBytes = 200 << 20

type QuizHandler struct {
	log            *logger.Logger
	quizService    services.QuizService
	quizGenService services.QuizGenService
	bucket         gcp.BucketService // optional, may be nil
	uploadDir      string
}

func NewQuizHandler(
	log *logger.Logger,
	quizService services.QuizService,
	quizGenService services.QuizGenService,
	bucket gcp.BucketService,
	uploadDir string,
) *QuizHandler {
	return &QuizHandler{
		log:            log.With("handler", "QuizHandler"),
		quizService:    quizService,
		quizGenService: quizGenService,
		bucket:         bucket,
		uploadDir:      uploadDir,
	}
}

// GET /api/quiz?skip=0&limit=100
func (qh *QuizHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	quizzes, err := qh.quizService.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, quizzes)
}

// GET /api/quiz/:id
func (qh *QuizHandler) Get(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quiz_id", err)
		return
	}
	quiz, err := qh.quizService.Get(c.Request.Context(), quizID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, quiz)
}

// POST /api/quiz
func (qh *QuizHandler) Create(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	var req struct {
		Category      string   `json:"category"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	quiz, err := qh.quizService.Create(c.Request.Context(), userID, services.CreateQuizInput{
		Category:      req.Category,
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, quiz)
}

// POST /api/quiz/:id/answer
// body: { "selected_option": 0..3 }
func (qh *QuizHandler) SubmitAnswer(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quiz_id", err)
		return
	}
	var req struct {
		SelectedOption *int `json:"selected_option"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SelectedOption == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("selected_option is required"))
		return
	}
	result, err := qh.quizService.SubmitAnswer(c.Request.Context(), userID, quizID, *req.SelectedOption)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/quiz/generate (multipart/form-data)
// fields: "video" (file), "category"
func (qh *QuizHandler) Generate(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())

	fh, err := c.FormFile("video")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_video", err)
		return
	}
	if fh.Size > maxVideoBytes {
		response.RespondError(c, http.StatusBadRequest, "video_too_large", fmt.Errorf("video exceeds %d bytes", maxVideoBytes))
		return
	}
	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_category", fmt.Errorf("category is required"))
		return
	}

	videoDir := filepath.Join(qh.uploadDir, "videos")
	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "upload_dir_failed", err)
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".mp4"
	}
	videoPath := filepath.Join(videoDir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fh, videoPath); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "save_video_failed", err)
		return
	}

	archiveURL := qh.archiveVideo(c.Request.Context(), videoPath)

	result, err := qh.quizGenService.GenerateFromVideo(c.Request.Context(), userID, videoPath, category)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	result.VideoURL = archiveURL
	response.RespondCreated(c, result)
}

// archiveVideo copies the saved upload to the GCS bucket when one is
// configured and returns its public URL. Failures are logged, never
// surfaced; the empty string means no archive.
func (qh *QuizHandler) archiveVideo(ctx context.Context, videoPath string) string {
	if qh.bucket == nil {
		return ""
	}
	f, err := os.Open(videoPath)
	if err != nil {
		qh.log.Warn("Video archive open failed", "path", videoPath, "error", err)
		return ""
	}
	defer f.Close()
	key := "videos/" + filepath.Base(videoPath)
	if _, err := qh.bucket.UploadFile(ctx, key, f); err != nil {
		qh.log.Warn("Video archive upload failed", "key", key, "error", err)
		return ""
	}
	return qh.bucket.GetPublicURL(key)
}
