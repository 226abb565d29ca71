package service

import "time"

// Metrics records engine outcomes.
type Metrics interface {
	// ObserveScan records a scan outcome (tier name, "cooldown" or "error").
	ObserveScan(outcome string, duration time.Duration)

	// ObserveRedemption records a redemption by kind and final state.
	ObserveRedemption(kind, state string)

	// ObservePartnerGift records one link evaluation of a propagation run.
	ObservePartnerGift(outcome string)
}
