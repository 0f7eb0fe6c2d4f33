package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/bizops-dashboard/internal/http/middleware"
	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/service"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

type Services struct {
	Auth            *service.AuthService
	Clients         *service.ClientService
	Prospects       *service.ProspectService
	TransportRates  *service.TransportRateService
	PriceReferences *service.PriceReferenceService
	Users           *service.UserService
	Exports         *service.ExportService
}

type Handler struct {
	svc Services
	log zerolog.Logger
}

func NewHandler(svc Services, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)
	router.POST("/auth/login", h.login)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.GET("/menu", h.menu)
	protected.GET("/user-role", h.userRole)

	protected.GET("/clients", h.listClients)
	protected.POST("/clients", h.createClient)
	protected.GET("/clients/export", h.exportClients)
	protected.GET("/clients/:id", h.getClient)
	protected.PUT("/clients/:id", h.updateClient)
	protected.DELETE("/clients/:id", h.deleteClient)

	protected.GET("/prospects", h.listProspects)
	protected.POST("/prospects", h.createProspect)
	protected.GET("/prospects/export", h.exportProspects)
	protected.GET("/prospects/:id", h.getProspect)
	protected.PUT("/prospects/:id", h.updateProspect)
	protected.DELETE("/prospects/:id", h.deleteProspect)

	protected.GET("/transport-rates", h.listTransportRates)
	protected.POST("/transport-rates", h.upsertTransportRate)

	protected.GET("/non-mining-prices", h.listNonMiningPrices)
	protected.GET("/non-mining-prices/:id", h.getNonMiningPrice)

	protected.GET("/price-references", h.listPriceReferences)
	protected.POST("/price-references", h.createPriceReference)
	protected.POST("/price-references/preview", h.previewPriceReference)
	protected.GET("/price-references/export", h.exportPriceReferences)
	protected.GET("/price-references/:id", h.getPriceReference)
	protected.PUT("/price-references/:id", h.updatePriceReference)
	protected.DELETE("/price-references/:id", h.deletePriceReference)
	protected.GET("/price-references/:id/pdf", h.priceReferencePDF)

	users := protected.Group("/users")
	users.Use(middleware.RequireRole(model.RoleAdmin))
	users.GET("", h.listUsers)
	users.POST("", h.createUser)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.deleteUser)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var invalid *validation.Error
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": invalid.Details()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrConflict.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return false
	}
	return true
}

func (h *Handler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) sendFile(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func queryUserID(c *gin.Context) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, validation.Field("userId", "must be a valid UUID")
	}
	return &id, nil
}

// queryEnum reads an optional upper-cased query value restricted to allowed.
func queryEnum[T ~string](c *gin.Context, key string, allowed ...T) (T, error) {
	raw := T(strings.ToUpper(strings.TrimSpace(c.Query(key))))
	if raw == "" {
		return raw, nil
	}
	for _, value := range allowed {
		if raw == value {
			return raw, nil
		}
	}
	return "", validation.Field(key, "unsupported value")
}
