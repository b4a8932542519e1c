//go:build wireinject
// +build wireinject

package di

import (
	"forge/config"
	"forge/infras/jwt"
	"forge/infras/kafka"
	"forge/infras/otel"
	"forge/infras/postgres"
	"forge/infras/redis"
	"forge/infras/s3"
	"forge/permissions"
	"forge/shared/cache"
	"forge/transport/http"
	"forge/transport/http/middleware"
	"forge/transport/http/router"

	"github.com/google/wire"

	authService "forge/internal/domains/auth/service"
	contactService "forge/internal/domains/contact/service"
	engagementRepository "forge/internal/domains/engagement/repository"
	engagementService "forge/internal/domains/engagement/service"
	galleryRepository "forge/internal/domains/gallery/repository"
	galleryService "forge/internal/domains/gallery/service"
	profileRepository "forge/internal/domains/profile/repository"
	profileService "forge/internal/domains/profile/service"
	projectRepository "forge/internal/domains/project/repository"
	projectService "forge/internal/domains/project/service"
	reviewRepository "forge/internal/domains/review/repository"
	reviewService "forge/internal/domains/review/service"
	userRepository "forge/internal/domains/user/repository"
	userService "forge/internal/domains/user/service"

	authHandler "forge/internal/handlers/auth"
	contactHandler "forge/internal/handlers/contact"
	engagementHandler "forge/internal/handlers/engagement"
	galleryHandler "forge/internal/handlers/gallery"
	healthHandler "forge/internal/handlers/health"
	profileHandler "forge/internal/handlers/profile"
	projectHandler "forge/internal/handlers/project"
	reviewHandler "forge/internal/handlers/review"
	userHandler "forge/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var engagementDomain = wire.NewSet(
	engagementRepository.New,
	engagementService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var contactDomain = wire.NewSet(
	contactService.New,
)

var domains = wire.NewSet(
	galleryDomain,
	engagementDomain,
	reviewDomain,
	projectDomain,
	profileDomain,
	userDomain,
	authDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	galleryHandler.New,
	engagementHandler.New,
	reviewHandler.New,
	projectHandler.New,
	profileHandler.New,
	contactHandler.New,
	userHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
