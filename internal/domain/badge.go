package domain

import "time"

// PredicateKey selects the award rule for a badge. It is a stable dispatch
// key stored on the catalog entry, deliberately decoupled from the
// human-readable badge name so renaming a badge never disables its rule.
// The set of known keys is closed; a badge carrying an unknown key is never
// awarded.
type PredicateKey string

const (
	PredicateFirstContent       PredicateKey = "first_content"
	PredicateViralContent       PredicateKey = "viral_content"
	PredicateContentVolume      PredicateKey = "content_volume"
	PredicateCumulativeLikes    PredicateKey = "cumulative_likes"
	PredicateMentorship         PredicateKey = "ambassador_mentorship"
	PredicateEventCountTier1    PredicateKey = "event_count_tier_1"
	PredicateEventParticipation PredicateKey = "event_participation"
	PredicateEventCountTier2    PredicateKey = "event_count_tier_2"
	PredicateEventCountTier3    PredicateKey = "event_count_tier_3"
)

// Badge is a static catalog entry. Role restricts eligibility to one role;
// nil means both roles qualify. RequiredPoints is informational display data,
// not a gate enforced by the award engine.
type Badge struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Icon           string       `json:"icon"`
	Requirement    string       `json:"requirement"`
	RequiredPoints int          `json:"required_points"`
	Role           *Role        `json:"role,omitempty"`
	PredicateKey   PredicateKey `json:"predicate_key"`
	CreatedAt      time.Time    `json:"created_at"`
}

// UserBadge records that a user earned a badge. At most one row exists per
// (user, badge) pair.
type UserBadge struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	BadgeID  uint      `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
	Badge    Badge     `json:"badge"`
}
