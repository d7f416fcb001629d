package lesson

import (
	"lessons/infras/otel"
	"lessons/internal/domains/lesson/model/dto"
	"lessons/internal/domains/lesson/service"
	"lessons/shared/constant"
	gDto "lessons/shared/dto"
	"lessons/shared/failure"
	"lessons/shared/validator"
	"lessons/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.LessonBooking
	otel    otel.Otel
}

func New(service service.LessonBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLessonBooking)
		routerGroup.Get("/", handler.GetMyLessonBookings)
		routerGroup.Get("/all", handler.GetLessonBookings)
	})
}

// CreateLessonBooking books a lesson for the current user.
// @Summary Book a lesson
// @Description Create a pending lesson booking owned by the authenticated user.
// @Tags Lesson
// @Accept json
// @Produce json
// @Param request body dto.CreateLessonBookingRequest true "Create Lesson Booking Request"
// @Success 201 {object} response.Data[dto.LessonBookingResponse] "Lesson booked"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user-bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateLessonBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLessonBooking")
	defer scope.End()

	req := dto.CreateLessonBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lesson booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Lesson booked by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyLessonBookings lists the lessons of the current user.
// @Summary Get my lesson bookings
// @Description List the authenticated user's lesson bookings, newest lesson first.
// @Tags Lesson
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param user_id query string false "Must match the authenticated user when given"
// @Success 200 {object} response.Data[dto.GetLessonBookingsResponse] "List of lesson bookings"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyLessonBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyLessonBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if requested := r.URL.Query().Get(constant.RequestParamUserID); requested != "" && requested != userID {
		scope.TraceError(failure.ResourceRestrictedError)
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	handler.list(w, r, service.UserFilter(userID, r.URL.Query().Get(constant.RequestParamStatus)))
}

// GetLessonBookings lists lesson bookings of every user.
// @Summary Get all lesson bookings
// @Description List lesson bookings across users. Admin only.
// @Tags Lesson
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param user_id query string false "Filter by user ID"
// @Success 200 {object} response.Data[dto.GetLessonBookingsResponse] "List of lesson bookings"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user-bookings/all [get]
// @Security BearerAuth
func (handler *Handler) GetLessonBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	handler.list(w, r, service.UserFilter(query.Get(constant.RequestParamUserID), query.Get(constant.RequestParamStatus)))
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, filter gDto.FilterGroup) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListLessonBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lesson bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
