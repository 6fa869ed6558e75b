package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processItemReq(c *gin.Context) (itemReq, error) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
