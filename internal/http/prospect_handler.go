package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

func prospectFilter(c *gin.Context) (repository.ProspectFilter, error) {
	stage, err := queryEnum(c, "stage",
		model.ProspectStageNew,
		model.ProspectStageContacted,
		model.ProspectStageQualified,
		model.ProspectStageWon,
		model.ProspectStageLost,
	)
	if err != nil {
		return repository.ProspectFilter{}, err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return repository.ProspectFilter{}, err
	}
	return repository.ProspectFilter{
		Stage:  stage,
		UserID: userID,
		Search: strings.TrimSpace(c.Query("search")),
	}, nil
}

func (h *Handler) listProspects(c *gin.Context) {
	filter, err := prospectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	prospects, err := h.svc.Prospects.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prospects)
}

func (h *Handler) getProspect(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	prospect, err := h.svc.Prospects.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prospect)
}

func (h *Handler) createProspect(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req validation.ProspectInput
	if !h.bindJSON(c, &req) {
		return
	}
	prospect, err := h.svc.Prospects.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prospect)
}

func (h *Handler) updateProspect(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req validation.ProspectInput
	if !h.bindJSON(c, &req) {
		return
	}
	prospect, err := h.svc.Prospects.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prospect)
}

func (h *Handler) deleteProspect(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Prospects.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportProspects(c *gin.Context) {
	filter, err := prospectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.svc.Exports.Prospects(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}
