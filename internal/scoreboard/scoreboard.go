// Package scoreboard holds the live event state — teams, challenges, and the
// hint schedule — together with the mutation rules that keep team points,
// completed challenges, and challenge winners consistent with each other.
package scoreboard

// ChallengeType classifies how a challenge can be won.
type ChallengeType string

const (
	ChallengeNormal ChallengeType = "normal"
	ChallengeRare   ChallengeType = "rare"
	ChallengeSecret ChallengeType = "secret"
)

// Exclusive reports whether at most one team may hold the challenge at a time.
func (t ChallengeType) Exclusive() bool {
	return t == ChallengeRare || t == ChallengeSecret
}

type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PersonalPoints int    `json:"personalPoints"`
}

type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
	// Points is maintained incrementally: it always equals the sum of
	// completed challenge points plus every player's personal points,
	// except where a mutation clamped it at zero.
	Points              int      `json:"points"`
	CompletedChallenges []string `json:"completedChallenges"`
}

type Challenge struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Points   int           `json:"points"`
	Type     ChallengeType `json:"type"`
	Disabled bool          `json:"disabled"`
	// Winners mirrors Team.CompletedChallenges: a team id appears here
	// exactly when the challenge id appears in that team's completed set.
	Winners []string `json:"winners"`
}

// HintWindow is one timed hint. Bounds are RFC 3339 strings kept verbatim
// from the seed data; windows that fail to parse are never shown.
type HintWindow struct {
	Text     string `json:"text"`
	RevealAt string `json:"revealAt"`
	EndAt    string `json:"endAt"`
}

// HintGroup is an ordered run of hints released together for one challenge.
type HintGroup []HintWindow

// ChallengeHints pairs a challenge with its ordered hint groups.
type ChallengeHints struct {
	ChallengeID string      `json:"challengeId"`
	Groups      []HintGroup `json:"groups"`
}

// ActiveHint is one hint whose window contains the queried instant.
type ActiveHint struct {
	ChallengeID string `json:"challengeId"`
	Text        string `json:"text"`
	RevealAt    string `json:"revealAt"`
	EndAt       string `json:"endAt"`
}

// Snapshot is a freshly loaded copy of all seed collections.
type Snapshot struct {
	Teams      []*Team
	Challenges []*Challenge
	Hints      []ChallengeHints
}

// Outcome reports whether a mutation changed state. Operations on ids that
// do not resolve are Ignored rather than failed: the API treats them as
// best-effort no-ops and still reports success to the caller.
type Outcome int

const (
	Applied Outcome = iota
	Ignored
)
