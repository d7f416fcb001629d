package booking

import (
	"lessons/infras/otel"
	"lessons/internal/domains/booking/model/dto"
	"lessons/internal/domains/booking/service"
	"lessons/shared/constant"
	"lessons/shared/validator"
	"lessons/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Put("/", handler.ConfirmPayment)
		routerGroup.Delete("/", handler.DeleteBooking)
	})
}

// GetBookings lists every booking in the ledger.
// @Summary List bookings
// @Description List every booking, most recently booked first.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]model.Booking] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetAvailability reports which slots of a day are still open.
// @Summary Slot availability
// @Description List the lesson slots of a day and whether each can still be confirmed.
// @Tags Booking
// @Produce json
// @Param day query string true "Day of the week" Enums(Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday)
// @Success 200 {object} response.Data[[]model.Slot] "Slots of the day"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	day := request.URL.Query().Get(constant.RequestParamDay)

	slots, err := handler.service.Availability(ctx, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("day", day).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}

// GetBookingByID retrieves a single booking.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Booking] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CreateBooking records a pending booking for a slot.
// @Summary Create a booking
// @Description Record a pending booking. Fails when the slot already has a confirmed booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[model.Booking] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// ConfirmPayment moves a pending booking to confirmed.
// @Summary Confirm a booking payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Data[model.Booking] "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [put]
func (handler *Handler) ConfirmPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed " + booking.ID)

	response.WithJSON(writer, http.StatusOK, booking)
}

// DeleteBooking removes a pending booking.
// @Summary Delete a booking
// @Description Remove a pending booking. Confirmed bookings cannot be deleted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.DeleteBookingRequest true "Delete Booking Request"
// @Success 200 {object} response.Data[dto.DeleteBookingResponse] "Booking deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	req := dto.DeleteBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.DeleteBookingResponse{Success: true})
}
