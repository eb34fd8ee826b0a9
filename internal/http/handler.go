package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
	"github.com/nurpe/agroexchange/internal/service"
)

type Handler struct {
	sessions *service.Sessions
	reports  *service.ReportService
	log      zerolog.Logger
}

func NewHandler(sessions *service.Sessions, reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{sessions: sessions, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.health)
	router.GET("/catalog", h.catalog)

	router.POST("/sessions", h.createSession)
	sessions := router.Group("/sessions/:id")
	sessions.GET("/screen", h.screen)
	sessions.POST("/start", h.start)
	sessions.POST("/role", h.selectRole)
	sessions.POST("/buyer-intent", h.submitBuyerIntent)
	sessions.POST("/seller-type", h.selectSellerType)
	sessions.POST("/seller-intent", h.submitSellerIntent)
	sessions.POST("/back", h.goBack)
	sessions.POST("/navigate", h.navigate)

	sessions.GET("/dashboard", h.dashboard)
	sessions.GET("/dashboard/export.xlsx", h.exportExcel)
	sessions.GET("/dashboard/export.pdf", h.exportPDF)
	sessions.GET("/dashboard/price-trend.png", h.priceTrend)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
}

func (h *Handler) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, newCatalogResponse())
}

func (h *Handler) createSession(c *gin.Context) {
	snap := h.sessions.Create()
	c.JSON(http.StatusCreated, newScreenResponse(snap))
}

func (h *Handler) screen(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c)(h.sessions.Screen(id))
}

func (h *Handler) start(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c)(h.sessions.Start(id))
}

func (h *Handler) selectRole(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, ok := model.ParseRole(req.Role)
	if !ok {
		h.handleError(c, fmt.Errorf("%w: role %q", service.ErrInvalidInput, req.Role))
		return
	}
	h.respond(c)(h.sessions.SelectRole(id, role))
}

func (h *Handler) submitBuyerIntent(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req buyerIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c)(h.sessions.SubmitBuyerIntent(id, req.toForm()))
}

func (h *Handler) selectSellerType(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req sellerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := model.ParseSellerType(req.SellerType)
	if !ok {
		h.handleError(c, fmt.Errorf("%w: seller_type %q", service.ErrInvalidInput, req.SellerType))
		return
	}
	h.respond(c)(h.sessions.SelectSellerType(id, st))
}

func (h *Handler) submitSellerIntent(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req sellerIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c)(h.sessions.SubmitSellerIntent(id, req.toForm()))
}

func (h *Handler) goBack(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.respond(c)(h.sessions.GoBack(id))
}

func (h *Handler) navigate(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, ok := model.ParseView(req.View)
	if !ok {
		h.handleError(c, fmt.Errorf("%w: view %q", service.ErrInvalidInput, req.View))
		return
	}
	h.respond(c)(h.sessions.NavigateTo(id, view))
}

func (h *Handler) dashboard(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	d, err := h.reports.Dashboard(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDashboardResponse(d))
}

func (h *Handler) exportExcel(c *gin.Context) {
	h.download(c, h.reports.ExportExcel)
}

func (h *Handler) exportPDF(c *gin.Context) {
	h.download(c, h.reports.ExportPDF)
}

func (h *Handler) priceTrend(c *gin.Context) {
	h.download(c, h.reports.PriceTrendPNG)
}

func (h *Handler) download(c *gin.Context, export func(uuid.UUID) (*service.ExportResult, error)) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	result, err := export(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// respond writes the screen on success and maps the error otherwise.
func (h *Handler) respond(c *gin.Context) func(service.Snapshot, error) {
	return func(snap service.Snapshot, err error) {
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, newScreenResponse(snap))
	}
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var verr *flow.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  verr.Error(),
			"field":  verr.Field,
			"reason": verr.Reason,
		})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, flow.ErrInvalidTransition), errors.Is(err, service.ErrNotOnDashboard):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, flow.ErrInvalidArgument), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
