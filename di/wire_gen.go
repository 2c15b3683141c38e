// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"manzil/config"
	"manzil/infras/jwt"
	"manzil/infras/kafka"
	"manzil/infras/otel"
	"manzil/infras/postgres"
	"manzil/infras/redis"
	"manzil/infras/s3"
	repository2 "manzil/internal/domains/activity/repository"
	"manzil/internal/domains/activity/service"
	service2 "manzil/internal/domains/auth/service"
	repository6 "manzil/internal/domains/blog/repository"
	service7 "manzil/internal/domains/blog/service"
	repository5 "manzil/internal/domains/booking/repository"
	service6 "manzil/internal/domains/booking/service"
	repository7 "manzil/internal/domains/contact/repository"
	service8 "manzil/internal/domains/contact/service"
	repository3 "manzil/internal/domains/hotel/repository"
	service4 "manzil/internal/domains/hotel/service"
	repository8 "manzil/internal/domains/media/repository"
	service9 "manzil/internal/domains/media/service"
	repository4 "manzil/internal/domains/room/repository"
	service5 "manzil/internal/domains/room/service"
	"manzil/internal/domains/user/repository"
	service3 "manzil/internal/domains/user/service"
	"manzil/internal/handlers/activity"
	"manzil/internal/handlers/auth"
	"manzil/internal/handlers/blog"
	"manzil/internal/handlers/booking"
	"manzil/internal/handlers/contact"
	"manzil/internal/handlers/hotel"
	"manzil/internal/handlers/media"
	"manzil/internal/handlers/room"
	"manzil/internal/handlers/user"
	"manzil/permissions"
	"manzil/shared/cache"
	"manzil/transport/http"
	"manzil/transport/http/middleware"
	"manzil/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	repositoryActivity := repository2.New(connection, otelOtel)
	client := kafka.New(configConfig)
	serviceActivity := service.New(repositoryActivity, client, configConfig, otelOtel)
	serviceAuth := service2.New(repositoryUser, jwtJWT, serviceActivity, configConfig, otelOtel)
	handler := auth.New(serviceAuth, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	serviceUser := service3.New(repositoryUser, serviceActivity, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryHotel := repository3.New(connection, otelOtel)
	serviceHotel := service4.New(repositoryHotel, configConfig, redisCache, otelOtel)
	hotelHandler := hotel.New(serviceHotel, otelOtel)
	repositoryRoom := repository4.New(connection, otelOtel)
	serviceRoom := service5.New(repositoryRoom, repositoryHotel, configConfig, redisCache, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryBooking := repository5.New(connection, otelOtel)
	serviceBooking := service6.New(repositoryBooking, repositoryRoom, serviceActivity, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	repositoryBlog := repository6.New(connection, otelOtel)
	serviceBlog := service7.New(repositoryBlog, configConfig, redisCache, otelOtel)
	blogHandler := blog.New(serviceBlog, otelOtel)
	activityHandler := activity.New(serviceActivity, otelOtel)
	repositoryContact := repository7.NewContact(connection, otelOtel)
	newsletter := repository7.NewNewsletter(connection, otelOtel)
	serviceContact := service8.New(repositoryContact, newsletter, configConfig, redisCache, otelOtel)
	contactHandler := contact.New(serviceContact, otelOtel)
	repositoryMedia := repository8.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceMedia := service9.New(repositoryMedia, s3S3, configConfig, redisCache, otelOtel)
	mediaHandler := media.New(serviceMedia, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:     handler,
		User:     userHandler,
		Hotel:    hotelHandler,
		Room:     roomHandler,
		Booking:  bookingHandler,
		Blog:     blogHandler,
		Activity: activityHandler,
		Contact:  contactHandler,
		Media:    mediaHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, authRole)
	httpHTTP := http.New(configConfig, connection, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var activityDomain = wire.NewSet(repository2.New, service.New)

var authDomain = wire.NewSet(repository.New, service2.New, service3.New)

var hotelDomain = wire.NewSet(repository3.New, service4.New)

var roomDomain = wire.NewSet(repository4.New, service5.New)

var bookingDomain = wire.NewSet(repository5.New, service6.New)

var blogDomain = wire.NewSet(repository6.New, service7.New)

var contactDomain = wire.NewSet(repository7.NewContact, repository7.NewNewsletter, service8.New)

var mediaDomain = wire.NewSet(repository8.New, service9.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, hotel.New, room.New, booking.New, blog.New, activity.New, contact.New, media.New, router.New)
