//go:build wireinject
// +build wireinject

package di

import (
	"lessons/config"
	"lessons/infras/broker"
	"lessons/infras/jwt"
	"lessons/infras/otel"
	"lessons/infras/postgres"
	"lessons/infras/redis"
	"lessons/infras/s3"
	paymentConsumer "lessons/internal/consumers/payment"
	"lessons/permissions"
	"lessons/shared/cache"
	"lessons/transport/http"
	"lessons/transport/http/middleware"
	"lessons/transport/http/router"

	"github.com/google/wire"

	authService "lessons/internal/domains/auth/service"
	bookingRepository "lessons/internal/domains/booking/repository"
	bookingService "lessons/internal/domains/booking/service"
	lessonRepository "lessons/internal/domains/lesson/repository"
	lessonService "lessons/internal/domains/lesson/service"
	paymentProvider "lessons/internal/domains/payment/provider"
	paymentService "lessons/internal/domains/payment/service"
	userRepository "lessons/internal/domains/user/repository"
	authHandler "lessons/internal/handlers/auth"
	bookingHandler "lessons/internal/handlers/booking"
	lessonHandler "lessons/internal/handlers/lesson"
	paymentHandler "lessons/internal/handlers/payment"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	broker.NewPublisher,
)

var paymentDomain = wire.NewSet(
	paymentProvider.NewRegistry,
	paymentService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var lessonDomain = wire.NewSet(
	lessonRepository.New,
	lessonService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	paymentDomain,
	authDomain,
	lessonDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	lessonHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializePaymentConsumer() (*paymentConsumer.Consumer, error) {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		s3.New,
		sharedHelpers,
		bookingDomain,
		paymentDomain,
		broker.NewConsumer,
		paymentConsumer.New,
	)

	return &paymentConsumer.Consumer{}, nil
}
