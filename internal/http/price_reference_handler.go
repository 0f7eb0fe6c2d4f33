package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

var cardinalZones = []model.CardinalZone{
	model.CardinalZoneNorth,
	model.CardinalZoneSouth,
	model.CardinalZoneEast,
	model.CardinalZoneWest,
}

func priceReferenceFilter(c *gin.Context) (repository.PriceReferenceFilter, error) {
	structure, err := queryEnum(c, "structureSociety", model.StructureSocietyMineOwned, model.StructureSocietyOther)
	if err != nil {
		return repository.PriceReferenceFilter{}, err
	}
	zone, err := queryEnum(c, "cardinalZone", cardinalZones...)
	if err != nil {
		return repository.PriceReferenceFilter{}, err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return repository.PriceReferenceFilter{}, err
	}
	return repository.PriceReferenceFilter{
		StructureSociety: structure,
		CardinalZone:     zone,
		UserID:           userID,
	}, nil
}

func (h *Handler) listNonMiningPrices(c *gin.Context) {
	zone, err := queryEnum(c, "cardinalZone", cardinalZones...)
	if err != nil {
		h.handleError(c, err)
		return
	}
	refs, err := h.svc.PriceReferences.ListNonMining(c.Request.Context(), zone)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (h *Handler) getNonMiningPrice(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ref, err := h.svc.PriceReferences.GetNonMining(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *Handler) listPriceReferences(c *gin.Context) {
	filter, err := priceReferenceFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	refs, err := h.svc.PriceReferences.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (h *Handler) getPriceReference(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ref, err := h.svc.PriceReferences.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *Handler) previewPriceReference(c *gin.Context) {
	var req validation.PriceReferenceInput
	if !h.bindJSON(c, &req) {
		return
	}
	ref, err := h.svc.PriceReferences.Preview(req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *Handler) createPriceReference(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req validation.PriceReferenceInput
	if !h.bindJSON(c, &req) {
		return
	}
	ref, err := h.svc.PriceReferences.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

func (h *Handler) updatePriceReference(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req validation.PriceReferenceInput
	if !h.bindJSON(c, &req) {
		return
	}
	ref, err := h.svc.PriceReferences.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *Handler) deletePriceReference(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.PriceReferences.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportPriceReferences(c *gin.Context) {
	filter, err := priceReferenceFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.svc.Exports.PriceReferences(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *Handler) priceReferencePDF(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.svc.Exports.PriceReferenceSheet(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, result)
}
