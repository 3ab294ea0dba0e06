package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/bedjos/storefront/pkg/logger"
)

type STKPushInput struct {
	Phone  string  `json:"phone"  validate:"required,max=20"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type PaymentData struct {
	Phone     string  `json:"phone"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Timestamp string  `json:"timestamp"`
}

type STKPushResult struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	PaymentData PaymentData `json:"payment_data"`
}

type Verification struct {
	Status     string `json:"status"`
	Reference  string `json:"reference"`
	VerifiedAt string `json:"verified_at"`
}

// PaymentService mocks the M-Pesa STK push flow. No gateway is contacted.
type PaymentService struct {
	prefix string
	now    func() time.Time
}

func NewPaymentService(referencePrefix string, now func() time.Time) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{prefix: referencePrefix, now: now}
}

// STKPush pretends to prompt the phone for payment.
func (s *PaymentService) STKPush(ctx context.Context, in STKPushInput) STKPushResult {
	now := s.now()
	data := PaymentData{
		Phone:     NormalizePhone(in.Phone),
		Amount:    in.Amount,
		Reference: s.prefix + now.Format("20060102150405"),
		Timestamp: now.Format(time.RFC3339),
	}

	logger.WithCtx(ctx).Info("stk push initiated", "reference", data.Reference, "amount", data.Amount)
	return STKPushResult{
		Success:     true,
		Message:     "STK Push initiated. Enter PIN on your phone to complete payment.",
		PaymentData: data,
	}
}

// Verify always reports the payment as completed.
func (s *PaymentService) Verify(reference string) Verification {
	return Verification{
		Status:     "completed",
		Reference:  reference,
		VerifiedAt: s.now().Format(time.RFC3339),
	}
}

// NormalizePhone turns a local Kenyan number into international form:
// whitespace is removed, a leading "+" dropped and a leading "0" becomes "254".
func NormalizePhone(phone string) string {
	phone = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "0") {
		phone = "254" + phone[1:]
	}
	return phone
}
