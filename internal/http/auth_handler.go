package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/bizops-dashboard/internal/service"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

func (h *Handler) login(c *gin.Context) {
	var req validation.LoginInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.svc.Auth.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) menu(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": principal.Role, "items": service.MenuFor(principal.Role)})
}

func (h *Handler) userRole(c *gin.Context) {
	email := c.Query("email")
	role, err := h.svc.Users.RoleByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "role": role})
}
