package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lessons/config"
	brokerMocks "lessons/infras/broker/mocks"
	"lessons/infras/otel/mocks"
	"lessons/internal/domains/booking/model"
	"lessons/internal/domains/booking/repository"
	"lessons/internal/domains/booking/service"
	"lessons/internal/handlers/booking"
	"lessons/shared/cache"
	cacheMocks "lessons/shared/cache/mocks"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := brokerMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	repo := repository.NewDocument(repository.NewMemoryDocument(), 0, mocks.NewOtel())
	handler := booking.New(service.New(repo, cfg, redis, publisher, mocks.NewOtel()), mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func call(t *testing.T, router http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	var res envelope
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	return recorder.Code, res
}

func TestHandler_BookingLifecycle(t *testing.T) {
	router := newRouter(t)

	code, res := call(t, router, http.MethodPost, "/v1/bookings", `{"day":"Monday","time":"2:00 PM","paymentMethod":"paypal"}`)
	assert.Equal(t, http.StatusCreated, code)

	var created model.Booking
	assert.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, model.StatusPending, created.PaymentStatus)
	assert.Nil(t, created.PaymentReference)

	code, res = call(t, router, http.MethodPut, "/v1/bookings", `{"bookingId":"`+created.ID+`","paymentReference":"REF123"}`)
	assert.Equal(t, http.StatusOK, code)

	var confirmed model.Booking
	assert.NoError(t, json.Unmarshal(res.Data, &confirmed))
	assert.Equal(t, model.StatusConfirmed, confirmed.PaymentStatus)
	assert.Equal(t, "REF123", *confirmed.PaymentReference)

	code, res = call(t, router, http.MethodPost, "/v1/bookings", `{"day":"Monday","time":"2:00 PM","paymentMethod":"stripe"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "slot already booked", res.Message)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	code, res = call(t, router, http.MethodDelete, "/v1/bookings", `{"bookingId":"`+created.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "cannot delete confirmed booking", res.Message)

	code, res = call(t, router, http.MethodGet, "/v1/bookings/availability?day=Monday", "")
	assert.Equal(t, http.StatusOK, code)

	var slots []model.Slot
	assert.NoError(t, json.Unmarshal(res.Data, &slots))
	assert.Len(t, slots, len(model.Times()))

	for _, slot := range slots {
		assert.Equal(t, slot.Time != "2:00 PM", slot.Available, slot.Time)
	}
}

func TestHandler_DeletePending(t *testing.T) {
	router := newRouter(t)

	_, res := call(t, router, http.MethodPost, "/v1/bookings", `{"day":"Friday","time":"6:00 PM","paymentMethod":"checkout"}`)

	var created model.Booking
	assert.NoError(t, json.Unmarshal(res.Data, &created))

	code, res := call(t, router, http.MethodDelete, "/v1/bookings", `{"bookingId":"`+created.ID+`"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"success":true}`, string(res.Data))

	code, res = call(t, router, http.MethodGet, "/v1/bookings/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "booking not found", res.Message)

	code, res = call(t, router, http.MethodGet, "/v1/bookings", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(res.Data))
}

func TestHandler_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{name: "unknown day", method: http.MethodPost, path: "/v1/bookings", body: `{"day":"Funday","time":"1:00 PM","paymentMethod":"paypal"}`, code: http.StatusBadRequest},
		{name: "morning slot", method: http.MethodPost, path: "/v1/bookings", body: `{"day":"Monday","time":"9:00 AM","paymentMethod":"paypal"}`, code: http.StatusBadRequest},
		{name: "missing payment method", method: http.MethodPost, path: "/v1/bookings", body: `{"day":"Monday","time":"1:00 PM"}`, code: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, path: "/v1/bookings", body: `{"day":`, code: http.StatusBadRequest},
		{name: "confirm unknown booking", method: http.MethodPut, path: "/v1/bookings", body: `{"bookingId":"6f1c2f2e-8d1a-4a53-9d7e-3f7d3c7c2b11","paymentReference":"REF"}`, code: http.StatusNotFound},
		{name: "confirm without reference", method: http.MethodPut, path: "/v1/bookings", body: `{"bookingId":"6f1c2f2e-8d1a-4a53-9d7e-3f7d3c7c2b11"}`, code: http.StatusBadRequest},
		{name: "delete unknown booking", method: http.MethodDelete, path: "/v1/bookings", body: `{"bookingId":"nope"}`, code: http.StatusNotFound},
		{name: "availability of unknown day", method: http.MethodGet, path: "/v1/bookings/availability?day=Funday", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t)

			code, res := call(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.code, res.Code)
			assert.NotEmpty(t, res.Message)
		})
	}

	code, res := call(t, newRouter(t), http.MethodGet, "/v1/bookings", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(res.Data))
}
