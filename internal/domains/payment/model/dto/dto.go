package dto

type ConfirmPaymentRequest struct {
	BookingID string `json:"bookingId" validate:"required,notblank"`
	Reference string `json:"reference" validate:"required,notblank,max=255"`
}

// PaymentPaidEvent is consumed from the payment.paid topic.
type PaymentPaidEvent struct {
	BookingID string `json:"bookingId" validate:"required,notblank"`
	Provider  string `json:"provider"  validate:"required,notblank"`
	Reference string `json:"reference" validate:"required,notblank,max=255"`
}

func (e PaymentPaidEvent) ToConfirmRequest() ConfirmPaymentRequest {
	return ConfirmPaymentRequest{BookingID: e.BookingID, Reference: e.Reference}
}

type CustomerDetails struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName"  validate:"required,notblank,max=100"`
	Email     string `json:"email"     validate:"required,email"`
}

// CreateSessionRequest opens a hosted checkout page for a pending booking.
// Amount is in whole currency units.
type CreateSessionRequest struct {
	BookingID       string          `json:"bookingId"       validate:"required,notblank"`
	Amount          int64           `json:"amount"          validate:"required,gt=0"`
	Description     string          `json:"description"     validate:"required,notblank,max=500"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type CreateSessionResponse struct {
	PaymentURL string `json:"paymentUrl"`
	ID         string `json:"id"`
	Status     string `json:"status"`
}
