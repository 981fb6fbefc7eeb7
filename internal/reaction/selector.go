package reaction

import (
	"github.com/xaenox/power-bot/internal/models"
)

// Animations maps each tier to its fixed animation asset. The assets are
// external references, never derived from message data.
var Animations = map[models.ReactionTier]string{
	models.TierExact300:     "https://media.giphy.com/media/3o7TKSjRrfIPjeiVyM/giphy.gif",
	models.TierOverThousand: "https://media.giphy.com/media/5GoVLqeAOo6PK/giphy.gif",
	models.TierOverTen:      "https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif",
	models.TierNormal:       "https://media.giphy.com/media/111ebonMs90YLu/giphy.gif",
}

// Decision is the outcome of weighing a delta against the current score.
// Only the Normal tier mutates the score; the jackpot tiers leave
// persistent state alone.
type Decision struct {
	Tier     models.ReactionTier
	Mutates  bool
	NewScore int64
}

// Decide maps a delta intent and the current score to a reaction tier.
// Pure: the same (intent, score) pair always yields the same decision.
// Rules apply in order, first match wins.
func Decide(intent models.Intent, score int64) Decision {
	switch {
	case intent.Sign == models.SignPlus && intent.Magnitude == 300:
		return Decision{Tier: models.TierExact300, NewScore: score}
	case intent.Magnitude > 1000:
		return Decision{Tier: models.TierOverThousand, NewScore: score}
	case intent.Magnitude > 10:
		return Decision{Tier: models.TierOverTen, NewScore: score}
	default:
		return Decision{
			Tier:     models.TierNormal,
			Mutates:  true,
			NewScore: score + intent.Signed(),
		}
	}
}
