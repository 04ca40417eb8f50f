package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

func (h *Handler) createQuote(c *gin.Context) {
	var in models.QuoteCreate
	if !bindJSON(c, &in) {
		return
	}
	q, err := h.svc.CreateQuote(c.Request.Context(), in)
	if err != nil {
		respondError(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *Handler) listQuotes(c *gin.Context) {
	list, err := h.svc.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) deleteQuote(c *gin.Context) {
	if err := h.svc.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, deletedMessage("Quote"))
}
