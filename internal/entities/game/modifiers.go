package game

// Modifiers carries the time-limited bonuses a caller has active.
//
// The bonuses split into two independent axes: efficiency (how much progress a
// single charge yields) and speed (how fast charges land in real time). VIP is
// the only speed bonus and must never change a charge or effort count.
type Modifiers struct {
	LoyaltyPercent int
	DoubleEvent    bool
	PrivateDummy   bool
	VIP            bool
}

// Efficiency bonus values
const (
	privateDummyFactor = 1.10
	doubleEventFactor  = 2.0
	vipSpeedFactor     = 1.10
)

// EfficiencyFactor returns the combined multiplier on effort yielded per
// charge. Active bonuses compose multiplicatively.
func (m Modifiers) EfficiencyFactor() float64 {
	factor := 1.0
	if m.DoubleEvent {
		factor *= doubleEventFactor
	}
	if m.PrivateDummy {
		factor *= privateDummyFactor
	}
	if m.LoyaltyPercent > 0 {
		factor *= 1 + float64(m.LoyaltyPercent)/100
	}
	return factor
}

// SpeedFactor returns the divisor on real time per charge. It enters the
// computation only when converting charge counts to wall-clock estimates.
func (m Modifiers) SpeedFactor() float64 {
	if m.VIP {
		return vipSpeedFactor
	}
	return 1.0
}

// IsValid reports whether the modifier values are inside their domain
func (m Modifiers) IsValid() bool {
	return m.LoyaltyPercent >= 0
}
