package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"beet-booking-cli/model"
)

const (
	defaultPaymentLatency = 2 * time.Second
	defaultDeclineOdds    = 10
)

// Payment failure taxonomy. Callers classify with errors.Is; anything else
// coming out of ProcessPayment is the unknown case.
var (
	ErrNetworkFailure       = errors.New("network connection failed, check your internet connection")
	ErrInvalidPaymentMethod = errors.New("invalid payment method selected")
	ErrInsufficientFunds    = errors.New("insufficient funds in your account")
	ErrPaymentDeclined      = errors.New("payment was declined, try another payment method")
)

// IsPaymentDeclined reports whether the error is a decline (retryable with
// another method, the booking itself stays valid).
func IsPaymentDeclined(err error) bool {
	return errors.Is(err, ErrPaymentDeclined)
}

// PaymentService simulates the payment gateway: a fixed latency followed by
// a 1-in-declineOdds random decline.
type PaymentService struct {
	latency     time.Duration
	declineOdds int
	rng         *rand.Rand
}

// NewPaymentService creates a gateway with the default 2s latency and 1-in-10
// decline rate. If rng is nil a time-seeded source is used.
func NewPaymentService(rng *rand.Rand) *PaymentService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PaymentService{
		latency:     defaultPaymentLatency,
		declineOdds: defaultDeclineOdds,
		rng:         rng,
	}
}

// ProcessPayment charges the booking with the given method. It blocks for the
// simulated latency (honoring ctx) and returns one of the taxonomy errors on
// failure. A failed payment does not touch the booking.
func (s *PaymentService) ProcessPayment(ctx context.Context, booking model.Booking, method model.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	if s.declineOdds > 0 && s.rng.Intn(s.declineOdds) == 0 {
		return ErrPaymentDeclined
	}
	return nil
}

func (s *PaymentService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
