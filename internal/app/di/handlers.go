package di

import (
	"github.com/sirupsen/logrus"

	"account_backend/internal/app/config"
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	userhandler "account_backend/internal/feature/user/transport/handler"
	userusecase "account_backend/internal/feature/user/usecase"
	jwtmw "account_backend/internal/platform/jwt"
)

// Handlers bundles what the router needs from the feature slices.
type Handlers struct {
	Auth   *authhandler.AuthHandler
	Users  *userhandler.UserHandler
	Tokens jwtmw.TokenValidator
}

// NewHandlers wires use cases and handlers on top of a user repository.
func NewHandlers(cfg *config.Config, users userusecase.UserRepository, log logrus.FieldLogger) *Handlers {
	signer := jwtmw.NewGenerator(cfg.JWTSecret)
	authSvc := authadapters.NewJWTAuthService(users, signer, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	authUC := authusecase.NewAuthUsecase(users, authSvc, log)

	return &Handlers{
		Auth: authhandler.NewAuthHandler(authUC),
		Users: userhandler.NewUserHandler(
			userusecase.NewCreateUserUsecase(users),
			userusecase.NewGetUserUsecase(users),
			userusecase.NewListUsersUsecase(users),
			userusecase.NewUpdateUserUsecase(users),
			userusecase.NewDeleteUserUsecase(users),
		),
		Tokens: authUC,
	}
}
