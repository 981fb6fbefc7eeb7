package models

// ChatID identifies a Telegram conversation. It is never reused across chats.
type ChatID = int64

type IntentKind string

const (
	// IntentNoOp means the message carried no actionable signal.
	IntentNoOp IntentKind = "noop"
	// IntentDelta means the message carried a signed score delta.
	IntentDelta IntentKind = "delta"
)

type Sign int

const (
	SignPlus  Sign = 1
	SignMinus Sign = -1
)

// Intent is the result of classifying raw message text.
type Intent struct {
	Kind      IntentKind `json:"kind"`
	Sign      Sign       `json:"sign,omitempty"`
	Magnitude int64      `json:"magnitude,omitempty"`
}

func NoOp() Intent {
	return Intent{Kind: IntentNoOp}
}

func Delta(sign Sign, magnitude int64) Intent {
	return Intent{Kind: IntentDelta, Sign: sign, Magnitude: magnitude}
}

// Signed returns the magnitude with the sign applied.
func (i Intent) Signed() int64 {
	return int64(i.Sign) * i.Magnitude
}

// ReactionTier is the closed set of reaction buckets. A tier is chosen from
// the delta alone, never from the resulting score.
type ReactionTier string

const (
	TierExact300     ReactionTier = "exact_300"
	TierOverThousand ReactionTier = "over_thousand"
	TierOverTen      ReactionTier = "over_ten"
	TierNormal       ReactionTier = "normal"
)
