package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

func (h *Handler) createMember(c *gin.Context) {
	var in models.MemberCreate
	if !bindJSON(c, &in) {
		return
	}
	m, err := h.svc.CreateMember(c.Request.Context(), in)
	if err != nil {
		respondError(c, "Member", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) listMembers(c *gin.Context) {
	list, err := h.svc.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, "Member", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getMember(c *gin.Context) {
	m, err := h.svc.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Member", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) updateMember(c *gin.Context) {
	var in models.MemberUpdate
	if !bindJSON(c, &in) {
		return
	}
	m, err := h.svc.UpdateMember(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, "Member", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) deleteMember(c *gin.Context) {
	if err := h.svc.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Member", err)
		return
	}
	c.JSON(http.StatusOK, deletedMessage("Member"))
}
