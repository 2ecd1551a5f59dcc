// File: handlers/wizard.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/config"
	"salonbook/services/scheduling"
	"salonbook/services/wizard"
	"salonbook/utils"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

// NewWizardHandler constructs a WizardHandler.
func NewWizardHandler(service wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: service, Logger: logger}
}

// StartSession creates a new wizard session and returns a signed token
// the client must present on every subsequent wizard call.
func (h *WizardHandler) StartSession(c *gin.Context) {
	result, err := h.Service.Start(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	token, err := utils.GenerateSessionToken(result.SessionID, ttl)
	if err != nil {
		h.Logger.Error("failed to sign session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start wizard session", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId":    result.SessionID,
		"sessionToken": token,
		"view":         result.View,
		"services":     result.Services,
	})
}

// GetSession returns the current wizard state.
func (h *WizardHandler) GetSession(c *gin.Context) {
	view, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleService adds or removes a service from the draft.
func (h *WizardHandler) ToggleService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.ToggleService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MonthGrid returns the 42-day calendar for the requested month,
// clamped to never view earlier than the present month.
func (h *WizardHandler) MonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "year must be an integer")
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "month must be 1-12")
		return
	}

	days, err := h.Service.MonthGrid(c.Request.Context(), c.Param("sessionID"), year, time.Month(monthNum))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// SelectDate records the chosen day and returns its slot sequence.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectTime records a slot picked from the current sequence.
func (h *WizardHandler) SelectTime(c *gin.Context) {
	var input struct {
		StartMinute *int `json:"startMinute" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), *input.StartMinute)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectStaff records the chosen stylist.
func (h *WizardHandler) SelectStaff(c *gin.Context) {
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SelectStaff(c.Request.Context(), c.Param("sessionID"), input.StaffID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance moves the wizard one stage forward.
func (h *WizardHandler) Advance(c *gin.Context) {
	view, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back moves the wizard one stage backward.
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit finalizes the booking from the confirmation stage.
func (h *WizardHandler) Submit(c *gin.Context) {
	booking, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelSession abandons the wizard and discards its draft.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wizard session cancelled"})
}

// fail maps wizard errors onto HTTP statuses. Refused transitions and
// unavailable slots are client errors; submission failures are
// retryable; everything else is internal.
func (h *WizardHandler) fail(c *gin.Context, err error) {
	var transitionErr *wizard.TransitionError
	var submissionErr *wizard.SubmissionError
	var configErr *scheduling.ConfigError

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", "")
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		utils.JSONError(c, http.StatusConflict, "submission already in flight", "")
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "action refused", transitionErr.Reason)
	case errors.As(err, &submissionErr):
		utils.JSONError(c, http.StatusBadGateway, "booking submission failed, retry or change date/time", submissionErr.Error())
	case errors.As(err, &configErr):
		utils.JSONError(c, http.StatusInternalServerError, "outlet configuration gap", configErr.Reason)
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
