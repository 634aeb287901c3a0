package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

// Handler groups all HTTP endpoints over the engine services.
type Handler struct {
	accounts      service.AccountService
	relations     service.RelationshipService
	engagement    service.EngagementService
	notifications service.NotificationService
	chat          service.ChatService
	otp           *service.OTPService
}

func New(accounts service.AccountService, relations service.RelationshipService, engagement service.EngagementService, notifications service.NotificationService, chat service.ChatService, otp *service.OTPService) *Handler {
	return &Handler{
		accounts:      accounts,
		relations:     relations,
		engagement:    engagement,
		notifications: notifications,
		chat:          chat,
		otp:           otp,
	}
}

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
