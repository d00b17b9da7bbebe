package booking

// RefundRule maps the booking's price to the amount the host retains once the
// guest cancels. "Full refund" therefore retains zero.
type RefundRule interface {
	CalculateRefund(totalPrice float64) float64
}

type FullRefund struct{}

func (FullRefund) CalculateRefund(totalPrice float64) float64 { return 0 }

type PartialRefund struct{}

func (PartialRefund) CalculateRefund(totalPrice float64) float64 { return totalPrice * 0.5 }

type NoRefund struct{}

func (NoRefund) CalculateRefund(totalPrice float64) float64 { return totalPrice }

// RefundRuleFor selects the rule from the number of days left before
// check-in: more than a week cancels free, a week or less costs half, and
// same-day or later cancellations retain everything.
func RefundRuleFor(daysUntilCheckIn int) RefundRule {
	switch {
	case daysUntilCheckIn > 7:
		return FullRefund{}
	case daysUntilCheckIn >= 1:
		return PartialRefund{}
	default:
		return NoRefund{}
	}
}
