package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

func clientFilter(c *gin.Context) (repository.ClientFilter, error) {
	status, err := queryEnum(c, "status", model.ClientStatusActive, model.ClientStatusInactive)
	if err != nil {
		return repository.ClientFilter{}, err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return repository.ClientFilter{}, err
	}
	return repository.ClientFilter{
		Status: status,
		UserID: userID,
		Search: strings.TrimSpace(c.Query("search")),
	}, nil
}

func (h *Handler) listClients(c *gin.Context) {
	filter, err := clientFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	clients, err := h.svc.Clients.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) getClient(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	client, err := h.svc.Clients.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) createClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req validation.ClientInput
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.svc.Clients.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) updateClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req validation.ClientInput
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.svc.Clients.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) deleteClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Clients.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportClients(c *gin.Context) {
	filter, err := clientFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.svc.Exports.Clients(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}
