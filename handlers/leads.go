package handlers

import (
	"net/http"
	"strings"

	leadRepo "framelight/database/repository/lead"
	"framelight/models"
	"framelight/services/chat"
	"framelight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler exposes the lead endpoints. The manual form submission bypasses
// the extractor but shares the lead store's merge semantics, so a form
// followed by chat (or the other way round) enriches one record.
type LeadHandler struct {
	Repo leadRepo.LeadRepository
}

func NewLeadHandler(repo leadRepo.LeadRepository) *LeadHandler {
	return &LeadHandler{Repo: repo}
}

type leadRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ShootType string `json:"shoot_type"`
	Notes     string `json:"notes"`
}

// HandleCreateLead accepts a manually-submitted lead payload.
func (h *LeadHandler) HandleCreateLead(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "session_id is required", "")
		return
	}

	fields := models.LeadFields{
		Name:      strings.TrimSpace(req.Name),
		Email:     chat.NormalizeEmail(req.Email),
		ShootType: strings.ToLower(strings.TrimSpace(req.ShootType)),
		Notes:     strings.TrimSpace(req.Notes),
	}
	if fields.Email != "" && !strings.Contains(fields.Email, "@") {
		utils.JSONError(c, http.StatusBadRequest, "email is invalid", "")
		return
	}
	if raw := strings.TrimSpace(req.Phone); raw != "" {
		phone := chat.NormalizePhone(raw)
		if phone == "" {
			utils.JSONError(c, http.StatusBadRequest, "phone is invalid", "")
			return
		}
		fields.Phone = phone
	}
	if fields.IsEmpty() {
		utils.JSONError(c, http.StatusBadRequest, "at least one lead field is required", "")
		return
	}

	lead, event, err := h.Repo.Upsert(c.Request.Context(), sessionID, fields)
	if err != nil {
		utils.GetLogger().Error("failed to save lead", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save lead", "")
		return
	}

	status := http.StatusOK
	if event == models.LeadCreated {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"lead": lead, "lead_event": event})
}

// HandleListLeads returns all captured leads, newest first.
func (h *LeadHandler) HandleListLeads(c *gin.Context) {
	leads, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list leads", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list leads", "")
		return
	}
	c.JSON(http.StatusOK, leads)
}
