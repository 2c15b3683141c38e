//go:build wireinject
// +build wireinject

package di

import (
	"manzil/config"
	"manzil/infras/jwt"
	"manzil/infras/kafka"
	"manzil/infras/otel"
	"manzil/infras/postgres"
	"manzil/infras/redis"
	"manzil/infras/s3"
	"manzil/permissions"
	"manzil/shared/cache"
	"manzil/transport/http"
	"manzil/transport/http/middleware"
	"manzil/transport/http/router"

	activityRepository "manzil/internal/domains/activity/repository"
	activityService "manzil/internal/domains/activity/service"
	authService "manzil/internal/domains/auth/service"
	blogRepository "manzil/internal/domains/blog/repository"
	blogService "manzil/internal/domains/blog/service"
	bookingRepository "manzil/internal/domains/booking/repository"
	bookingService "manzil/internal/domains/booking/service"
	contactRepository "manzil/internal/domains/contact/repository"
	contactService "manzil/internal/domains/contact/service"
	hotelRepository "manzil/internal/domains/hotel/repository"
	hotelService "manzil/internal/domains/hotel/service"
	mediaRepository "manzil/internal/domains/media/repository"
	mediaService "manzil/internal/domains/media/service"
	roomRepository "manzil/internal/domains/room/repository"
	roomService "manzil/internal/domains/room/service"
	userRepository "manzil/internal/domains/user/repository"
	userService "manzil/internal/domains/user/service"

	activityHandler "manzil/internal/handlers/activity"
	authHandler "manzil/internal/handlers/auth"
	blogHandler "manzil/internal/handlers/blog"
	bookingHandler "manzil/internal/handlers/booking"
	contactHandler "manzil/internal/handlers/contact"
	hotelHandler "manzil/internal/handlers/hotel"
	mediaHandler "manzil/internal/handlers/media"
	roomHandler "manzil/internal/handlers/room"
	userHandler "manzil/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.NewContact,
	contactRepository.NewNewsletter,
	contactService.New,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var domains = wire.NewSet(
	activityDomain,
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	blogDomain,
	contactDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	blogHandler.New,
	activityHandler.New,
	contactHandler.New,
	mediaHandler.New,
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
