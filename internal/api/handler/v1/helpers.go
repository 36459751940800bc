package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/api/middleware"
	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the authenticated caller from the user ID the
// JWT middleware stored in the gin context.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	rawID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized("missing authentication")
	}

	userID, ok := rawID.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("invalid authentication")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "ID", userID)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}
