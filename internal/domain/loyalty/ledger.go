package loyalty

import (
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyVisit returns the registration after a recorded scan. The balance is
// capped by the ladder's highest threshold and never goes negative. The
// existing registration is left untouched.
func ApplyVisit(
	existing *entity.Registration,
	clientID, shopID uuid.UUID,
	points int,
	ladder entity.RewardLadder,
	snapshot entity.DemographicSnapshot,
	now time.Time,
) *entity.Registration {
	if existing == nil {
		return &entity.Registration{
			ClientID:            clientID,
			ShopID:              shopID,
			Points:              CapPoints(points, ladder),
			NbVisit:             1,
			LastVisit:           now,
			Snapshot:            snapshot,
			NotificationsActive: true,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
	}

	next := *existing
	next.Points = CapPoints(existing.Points+points, ladder)
	next.NbVisit = existing.NbVisit + 1
	next.LastVisit = now
	next.Snapshot = snapshot
	next.UpdatedAt = now

	return &next
}

// CapPoints clamps a balance into [0, ladder cap]. An empty ladder has no cap.
func CapPoints(points int, ladder entity.RewardLadder) int {
	points = max(points, 0)
	if limit, ok := ladder.Cap(); ok {
		points = min(points, limit)
	}

	return points
}
