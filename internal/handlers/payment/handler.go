package payment

import (
	"lessons/infras/otel"
	"lessons/internal/domains/payment/model/dto"
	"lessons/internal/domains/payment/service"
	"lessons/shared/constant"
	"lessons/shared/validator"
	"lessons/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/{provider}/session", handler.CreateSession)
		r.Post("/{provider}/confirm", handler.Confirm)
	})
}

// CreateSession opens a hosted checkout page for a pending booking.
// @Summary Create a checkout session
// @Description Open the provider's checkout page for a pending booking. The session carries the booking id.
// @Tags Payment
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider" Enums(stripe)
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 201 {object} response.Data[dto.CreateSessionResponse] "Checkout session created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/payments/{provider}/session [post]
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	provider := chi.URLParam(r, constant.RequestParamProvider)
	req := dto.CreateSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.CreateSession(ctx, provider, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("provider", provider).Str("bookingId", req.BookingID).Msg("failed to create checkout session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout session " + session.ID + " created for booking " + req.BookingID)

	response.WithJSON(w, http.StatusCreated, session)
}

// Confirm verifies a payment with its provider and confirms the booking it paid for.
// @Summary Confirm a booking through a payment provider
// @Description Look the payment up with the provider and confirm the booking once it is paid.
// @Tags Payment
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider" Enums(stripe, paypal, payoneer, checkout)
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Data[model.Booking] "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/payments/{provider}/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	provider := chi.URLParam(r, constant.RequestParamProvider)
	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, provider, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("provider", provider).Str("bookingId", req.BookingID).Msg("failed to confirm payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment confirmed for booking " + booking.ID)

	response.WithJSON(w, http.StatusOK, booking)
}
