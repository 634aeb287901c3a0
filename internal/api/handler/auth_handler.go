package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type otpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type otpVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// Register creates an account.
// @Summary Register
// @Tags auth
// @Accept json
// @Param request body registerRequest true "registration"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 409 {object} response.Response
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user)
}

// Login verifies credentials and returns a bearer token.
// @Summary Login
// @Tags auth
// @Accept json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": user})
}

// SendOTP issues a one-time code to an email address.
// @Summary Send OTP
// @Tags auth
// @Accept json
// @Param request body otpRequest true "email"
// @Success 200 {object} response.Response
// @Router /api/auth/otp [post]
func (h *Handler) SendOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.otp.Issue(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// VerifyOTP checks a one-time code.
// @Summary Verify OTP
// @Tags auth
// @Accept json
// @Param request body otpVerifyRequest true "email and code"
// @Success 200 {object} response.Response
// @Router /api/auth/otp/verify [post]
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req otpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ok, err := h.otp.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"valid": ok})
}
