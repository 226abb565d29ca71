package entity

// Tier classifies a visit and drives the points awarded for it.
type Tier string

const (
	TierNew      Tier = "new"
	TierStandard Tier = "standard"
	TierVIP      Tier = "vip"
)

// String returns the tier name.
func (t Tier) String() string {
	return string(t)
}

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierNew, TierStandard, TierVIP:
		return true
	default:
		return false
	}
}
