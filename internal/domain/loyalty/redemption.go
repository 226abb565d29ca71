package loyalty

import (
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/errors"
)

// ErrInvalidTransition is returned when a redemption step is called out of order.
var ErrInvalidTransition = errors.New("invalid redemption transition")

// RedemptionState is a step of the redemption flow.
type RedemptionState string

const (
	RedemptionIdle       RedemptionState = "idle"
	RedemptionConfirming RedemptionState = "confirming"
	RedemptionValidating RedemptionState = "validating"
	RedemptionSuccess    RedemptionState = "success"
	RedemptionBlocked    RedemptionState = "blocked"
	RedemptionRejected   RedemptionState = "rejected"
	RedemptionClosed     RedemptionState = "closed"
)

// IsTerminal reports whether validation already decided the outcome.
func (s RedemptionState) IsTerminal() bool {
	switch s {
	case RedemptionSuccess, RedemptionBlocked, RedemptionRejected:
		return true
	default:
		return false
	}
}

// RedemptionInput is the state read inside the redemption transaction.
// Exactly one of Reward and Gift is set.
type RedemptionInput struct {
	Profile      *entity.ClientProfile
	Registration *entity.Registration // May be nil for a gift or a client without card.
	Reward       *entity.RewardDefinition
	Gift         *entity.Gift
}

// Redemption drives a single confirm-once redemption:
// Idle -> Confirming -> Validating -> Success | Blocked | Rejected -> Closed.
// It is not safe for concurrent use; each request owns its instance.
type Redemption struct {
	state  RedemptionState
	reason error
}

// NewRedemption returns a redemption in the Idle state.
func NewRedemption() *Redemption {
	return &Redemption{state: RedemptionIdle}
}

// State returns the current state.
func (r *Redemption) State() RedemptionState {
	return r.state
}

// Reason returns the business error behind a Blocked or Rejected outcome.
func (r *Redemption) Reason() error {
	return r.reason
}

// Confirm is the single commit signal of the client.
func (r *Redemption) Confirm() error {
	if r.state != RedemptionIdle {
		return errors.Wrapf(ErrInvalidTransition, "confirm from %s", r.state)
	}
	r.state = RedemptionConfirming

	return nil
}

// Validate decides the outcome from fresh state. It returns the business error
// of a Blocked or Rejected outcome, nil on Success.
func (r *Redemption) Validate(in RedemptionInput) error {
	if r.state != RedemptionConfirming {
		return errors.Wrapf(ErrInvalidTransition, "validate from %s", r.state)
	}
	if (in.Reward == nil) == (in.Gift == nil) {
		return errors.Wrap(ErrInvalidTransition, "exactly one of reward or gift is required")
	}
	r.state = RedemptionValidating

	switch {
	case in.Profile == nil || !entity.IsProfileComplete(in.Profile):
		return r.finish(RedemptionBlocked, domainerrors.ErrIncompleteProfile)
	case in.Reward != nil && (in.Registration == nil || in.Registration.Points < in.Reward.Points):
		return r.finish(RedemptionRejected, domainerrors.ErrInsufficientPoints)
	case in.Gift != nil && in.Gift.Used:
		return r.finish(RedemptionRejected, domainerrors.ErrGiftAlreadyUsed)
	default:
		return r.finish(RedemptionSuccess, nil)
	}
}

// Close ends the flow after an outcome was decided.
func (r *Redemption) Close() error {
	if !r.state.IsTerminal() {
		return errors.Wrapf(ErrInvalidTransition, "close from %s", r.state)
	}
	r.state = RedemptionClosed

	return nil
}

func (r *Redemption) finish(state RedemptionState, reason error) error {
	r.state = state
	r.reason = reason

	return reason
}

// DebitPoints returns the registration after paying cost, floored at zero.
func DebitPoints(reg *entity.Registration, cost int, now time.Time) *entity.Registration {
	next := *reg
	next.Points = max(reg.Points-cost, 0)
	next.UpdatedAt = now

	return &next
}
