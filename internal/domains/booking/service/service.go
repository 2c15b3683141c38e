package service

import (
	"context"
	"errors"
	"fmt"
	"manzil/config"
	"manzil/infras/otel"
	activityDto "manzil/internal/domains/activity/model/dto"
	activitySvc "manzil/internal/domains/activity/service"
	"manzil/internal/domains/booking/model"
	"manzil/internal/domains/booking/model/dto"
	"manzil/internal/domains/booking/repository"
	roomModel "manzil/internal/domains/room/model"
	roomRepo "manzil/internal/domains/room/repository"
	"manzil/shared"
	"manzil/shared/cache"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
	"manzil/shared/random"
	"manzil/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheGetRoom = "room:get"

	// Retries on a confirmation code collision before giving up.
	maxCodeAttempts = 3
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetMy(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	activity activitySvc.Activity
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, activity activitySvc.Activity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		activity: activity,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create books a room. Availability is consumed with a conditional decrement
// so two concurrent requests can never oversell the last unit, and the
// confirmation code is regenerated on a unique violation.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.HotelID != req.HotelID {
		return res, failure.BadRequestFromString("room does not belong to the hotel") // nolint:wrapcheck
	}

	if req.Guests > room.Capacity {
		return res, failure.BadRequestFromString("number of guests exceeds room capacity") // nolint:wrapcheck
	}

	code, err := random.ConfirmationCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate confirmation code")

		return res, fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	booking, err := req.ToModel(user, room.Price, code)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	consumed, err := s.roomRepo.ConsumeAvailability(ctx, room.ID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to consume room availability")

		return res, fmt.Errorf("failed to consume room availability: %w", err)
	}

	if !consumed {
		return res, failure.Conflict("room is fully booked") // nolint:wrapcheck
	}

	if err = s.insertWithCodeRetry(ctx, &booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		if restoreErr := s.roomRepo.RestoreAvailability(ctx, room.ID, user); restoreErr != nil {
			log.Error().Err(restoreErr).Str("roomID", room.ID).Msg("failed to restore room availability")
		}

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
	}()

	s.activity.Record(ctx, activityDto.RecordActivityRequest{
		Action:   "booking.created",
		Entity:   model.EntityName,
		EntityID: booking.ID,
		Detail: map[string]any{
			"confirmation_code": booking.ConfirmationCode,
			"room_id":           booking.RoomID,
			"hotel_id":          booking.HotelID,
		},
	})

	return res, nil
}

func (s *serviceImpl) insertWithCodeRetry(ctx context.Context, booking *model.Booking) error {
	var err error

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		if attempt > 0 {
			code, codeErr := random.ConfirmationCode()
			if codeErr != nil {
				return fmt.Errorf("failed to generate confirmation code: %w", codeErr)
			}

			booking.ConfirmationCode = code
		}

		err = s.repo.Insert(ctx, *booking)
		if err == nil {
			return nil
		}

		var pqErr *pq.Error
		if !errors.As(err, &pqErr) || string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
			return err
		}

		log.Warn().Str("code", booking.ConfirmationCode).Msg("confirmation code collision, regenerating")
	}

	return err
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMy(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMy")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && booking.UserID != user {
		return res, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel flips a confirmed booking to cancelled and gives the room unit back.
// The owner can cancel their own booking; admins can cancel any.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && booking.UserID != user {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err = s.roomRepo.RestoreAvailability(ctx, booking.RoomID, user); err != nil {
		log.Error().Err(err).Str("roomID", booking.RoomID).Msg("failed to restore room availability")

		return fmt.Errorf("failed to restore room availability: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
	}()

	s.activity.Record(ctx, activityDto.RecordActivityRequest{
		Action:   "booking.cancelled",
		Entity:   model.EntityName,
		EntityID: booking.ID,
	})

	return nil
}
