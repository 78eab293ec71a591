package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-tutorials/internal/http/response"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/apierr"
	"github.com/yungbote/neurobridge-tutorials/internal/services"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

type TutorialHandler struct {
	tutorials services.TutorialService
}

func NewTutorialHandler(tutorials services.TutorialService) *TutorialHandler {
	return &TutorialHandler{tutorials: tutorials}
}

type batchRequest struct {
	Items []services.GenerateTutorialInput `json:"items"`
}

func inputFromRequest(c *gin.Context) services.GenerateTutorialInput {
	return services.GenerateTutorialInput{
		LanguageID:   c.Param("languageId"),
		LanguageName: c.Query("name"),
		Icon:         c.Query("icon"),
		Description:  c.Query("description"),
	}
}

// GET /api/tutorials/:languageId
func (h *TutorialHandler) GetTutorial(c *gin.Context) {
	tut, meta, err := h.tutorials.Generate(c.Request.Context(), inputFromRequest(c))
	if err != nil {
		respondServiceError(c, err, "generate_tutorial_failed")
		return
	}
	response.RespondOK(c, gin.H{"tutorial": tut, "meta": meta})
}

// GET /api/tutorials/:languageId/sections/:sectionId
func (h *TutorialHandler) GetSection(c *gin.Context) {
	section, err := h.tutorials.Section(c.Request.Context(), inputFromRequest(c), c.Param("sectionId"))
	if err != nil {
		respondServiceError(c, err, "get_section_failed")
		return
	}
	response.RespondOK(c, gin.H{"section": section})
}

// POST /api/tutorials/batch
func (h *TutorialHandler) GenerateBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	tutorials, err := h.tutorials.GenerateBatch(c.Request.Context(), req.Items)
	if err != nil {
		respondServiceError(c, err, "generate_batch_failed")
		return
	}
	response.RespondOK(c, gin.H{"tutorials": tutorials})
}

// GET /api/languages/:languageId/category
func (h *TutorialHandler) GetCategory(c *gin.Context) {
	response.RespondOK(c, h.tutorials.Classify(c.Request.Context(), c.Param("languageId")))
}

// GET /api/catalog
func (h *TutorialHandler) GetCatalog(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"categories": types.AllCategories(),
		"providers":  h.tutorials.Catalog(c.Request.Context()),
	})
}

func respondServiceError(c *gin.Context, err error, fallbackCode string) {
	if ae, ok := apierr.As(err); ok {
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		response.RespondError(c, http.StatusServiceUnavailable, "request_cancelled", err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, fallbackCode, err)
}
