package http

import (
	"strings"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyActor     = "actor"
	contextKeyAccountID = "accountID"
)

// authMiddleware verifies the bearer token and resolves the acting account.
// The account is looked up on every request so a deleted account or a
// changed role takes effect immediately, not at token expiry.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(ctx, "Missing bearer token")
		}

		accountID, err := s.tokens.ParseToken(token)
		if err != nil {
			return unauthorized(ctx, "Invalid or expired token")
		}

		query, err := queries.NewGetAccountQuery(accountID)
		if err != nil {
			return unauthorized(ctx, "Invalid or expired token")
		}

		resp, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return unauthorized(ctx, "Account no longer exists")
		}

		role, err := account.RoleFromString(resp.Role)
		if err != nil {
			return unauthorized(ctx, "Account role is invalid")
		}

		actor, err := commands.NewActor(role, resp.DisplayName)
		if err != nil {
			return unauthorized(ctx, "Account is invalid")
		}

		ctx.Set(contextKeyActor, actor)
		ctx.Set(contextKeyAccountID, accountID)
		return next(ctx)
	}
}

func actorFrom(ctx echo.Context) (commands.Actor, bool) {
	actor, ok := ctx.Get(contextKeyActor).(commands.Actor)
	return actor, ok
}

func accountIDFrom(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(contextKeyAccountID).(kernel.UUID)
	return id, ok
}
