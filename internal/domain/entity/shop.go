// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultCooldownSeconds is applied when a shop leaves its revisit cooldown unset.
const DefaultCooldownSeconds = 1800

// Shop is a partner shop accepting NFC scans.
type Shop struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Rules     ShopRuleConfig `json:"rules"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ShopRuleConfig holds the point rules of a shop. It is read-only for the engine.
type ShopRuleConfig struct {
	NewClientPoints      int      `json:"new_client_points"`      // Awarded on the first scan.
	StandardClientPoints int      `json:"standard_client_points"` // Awarded to returning clients.
	VIPClientPoints      int      `json:"vip_client_points"`      // Awarded once the VIP threshold is reached.
	VIPVisitThreshold    int      `json:"vip_visit_threshold"`    // Minimum prior visits for the VIP tier.
	VIPActive            bool     `json:"vip_active"`             // VIP rule switch; standard points apply when off.
	CooldownSeconds      int      `json:"cooldown_seconds"`       // Minimum delay between point-earning scans.
	NFCTagIDs            []string `json:"nfc_tag_ids"`            // Tags owned by the shop.
}

// Cooldown returns the revisit cooldown, falling back to DefaultCooldownSeconds.
func (c ShopRuleConfig) Cooldown() time.Duration {
	seconds := c.CooldownSeconds
	if seconds <= 0 {
		seconds = DefaultCooldownSeconds
	}

	return time.Duration(seconds) * time.Second
}

// HasTag reports whether the tag belongs to the shop.
// A shop without configured tags owns none.
func (c ShopRuleConfig) HasTag(tagID string) bool {
	if len(c.NFCTagIDs) == 0 || tagID == "" {
		return false
	}

	return slices.Contains(c.NFCTagIDs, tagID)
}

// PointsFor returns the configured points of a tier.
func (c ShopRuleConfig) PointsFor(tier Tier) int {
	switch tier {
	case TierNew:
		return c.NewClientPoints
	case TierVIP:
		return c.VIPClientPoints
	default:
		return c.StandardClientPoints
	}
}
