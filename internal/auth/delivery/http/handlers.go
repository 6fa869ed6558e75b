package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/pkg/response"
	"inventory-management/pkg/scope"
)

// Login godoc
// @Summary     Sign in
// @Description Exchanges email and password for a bearer session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Missing email or password"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Failure     503 {object} response.Resp "Identity provider unavailable"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Ends the current session; its token stops working immediately.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.SignOut(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.SignOut: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
