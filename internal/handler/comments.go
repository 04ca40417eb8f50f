package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

func (h *Handler) createComment(c *gin.Context) {
	var in models.CommentCreate
	if !bindJSON(c, &in) {
		return
	}
	cm, err := h.svc.CreateComment(c.Request.Context(), in)
	if err != nil {
		respondError(c, "Comment", err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (h *Handler) listComments(c *gin.Context) {
	list, err := h.svc.ListComments(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		respondError(c, "Comment", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
