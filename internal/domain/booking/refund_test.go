package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staybook/internal/domain/booking"
)

func TestRefundRuleFor(t *testing.T) {
	assert.IsType(t, booking.FullRefund{}, booking.RefundRuleFor(8))
	assert.IsType(t, booking.FullRefund{}, booking.RefundRuleFor(30))

	for days := 1; days <= 7; days++ {
		assert.IsType(t, booking.PartialRefund{}, booking.RefundRuleFor(days), "days=%d", days)
	}

	assert.IsType(t, booking.NoRefund{}, booking.RefundRuleFor(0))
	assert.IsType(t, booking.NoRefund{}, booking.RefundRuleFor(-5))
}

func TestRefundRuleAmounts(t *testing.T) {
	assert.Equal(t, 0.0, booking.FullRefund{}.CalculateRefund(1000))
	assert.Equal(t, 0.0, booking.FullRefund{}.CalculateRefund(0))

	assert.Equal(t, 500.0, booking.PartialRefund{}.CalculateRefund(1000))
	assert.Equal(t, 100.0, booking.PartialRefund{}.CalculateRefund(200))

	assert.Equal(t, 1000.0, booking.NoRefund{}.CalculateRefund(1000))
	assert.Equal(t, 99999.0, booking.NoRefund{}.CalculateRefund(99999))
}
