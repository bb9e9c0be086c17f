package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const passwordSetMessage = "password set, please log in again"

// Login handles POST /login
// @Summary Log in
// @Description Verifies the credentials and returns a signed token valid for one hour.
// @Description A user without a stored password gets it set on the first call and must log in again.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} rest.StatusResponse
// @Router /login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	res, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	if res.PasswordSet {
		return c.JSON(http.StatusOK, LoginResponse{Status: statusSuccess, Message: passwordSetMessage})
	}

	return c.JSON(http.StatusOK, LoginResponse{Status: statusSuccess, Token: res.Token})
}
