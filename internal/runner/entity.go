// Package runner implements the endless runner simulation: procedural
// spawning, player physics, collision resolution, scoring and the session
// state machine. It has no terminal or audio dependencies; collaborators are
// reached through small interfaces.
package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Kind identifies the variant of a world entity.
type Kind uint8

const (
	KindObstacle Kind = iota // ground hurdle
	KindCoin
	KindPlatform
	KindHole
	KindRamp
	KindBlock
	KindBird
	KindSnail
	KindWatch
	numKinds
)

// Kinds lists every entity kind in declaration order.
var Kinds = [...]Kind{
	KindObstacle, KindCoin, KindPlatform, KindHole, KindRamp,
	KindBlock, KindBird, KindSnail, KindWatch,
}

// Capability is a bitset of behaviours shared across kinds.
type Capability uint8

const (
	Movable     Capability = 1 << iota // has its own horizontal speed besides the world scroll
	Collidable                         // takes part in the collision pass
	Collectible                        // removed and rewarded on contact
	Lethal                             // starts the death animation on contact
	Landable                           // the player can stand on it
	Pit                                // lethal only when the player's feet reach ground level over it
)

// traits is one row of the dispatch table.
type traits struct {
	name string
	caps Capability
	// ownSpeed is the leftward speed independent of the world scroll.
	ownSpeed func(gameSpeed float64) float64
	// cullMargin: removed once x+w < -cullMargin.
	cullMargin float64
	// cullRight: removed once x > displayWidth + rightCullMargin.
	cullRight bool
	// upcoming marks kinds consulted by the look-ahead window.
	upcoming bool
	animRate float64
	rotRate  float64
}

const rightCullMargin = 200

func noOwnSpeed(float64) float64 { return 0 }

var kindTraits = [numKinds]traits{
	KindObstacle: {
		name: "obstacle", caps: Collidable | Lethal,
		ownSpeed: noOwnSpeed, cullRight: true, upcoming: true,
	},
	KindCoin: {
		name: "coin", caps: Collidable | Collectible,
		ownSpeed: noOwnSpeed, cullRight: true, rotRate: 0.1, animRate: 0.15,
	},
	KindPlatform: {
		name: "platform", caps: Collidable | Landable,
		ownSpeed: noOwnSpeed, cullRight: true, upcoming: true,
	},
	KindHole: {
		name: "hole", caps: Collidable | Lethal | Pit,
		ownSpeed: noOwnSpeed, cullRight: true, upcoming: true,
	},
	KindRamp: {
		name: "ramp", caps: Collidable | Landable,
		ownSpeed: noOwnSpeed, cullRight: true,
	},
	KindBlock: {
		name: "block", caps: Collidable | Landable,
		ownSpeed: noOwnSpeed, cullRight: true, upcoming: true,
	},
	KindBird: {
		name: "bird", caps: Movable | Collidable | Lethal,
		ownSpeed: func(gameSpeed float64) float64 {
			return 2 + min(gameSpeed*0.3, 4)
		},
		cullMargin: 50, animRate: 0.3,
	},
	KindSnail: {
		name: "snail", caps: Movable | Collidable | Lethal,
		ownSpeed:   func(float64) float64 { return 1 },
		cullMargin: 50, animRate: 0.1,
	},
	KindWatch: {
		name: "watch", caps: Collidable | Collectible,
		ownSpeed: noOwnSpeed, cullMargin: 50, cullRight: true, animRate: 0.15,
	},
}

// String returns the kind's name.
func (k Kind) String() string {
	if k >= numKinds {
		return "unknown"
	}
	return kindTraits[k].name
}

// Has reports whether the kind carries capability c.
func (k Kind) Has(c Capability) bool {
	return k < numKinds && kindTraits[k].caps&c != 0
}

// OwnSpeed returns the kind's leftward speed at the given game speed.
func (k Kind) OwnSpeed(gameSpeed float64) float64 {
	return kindTraits[k].ownSpeed(gameSpeed)
}

// Entity is a world object. Only the fields relevant to its Kind are used.
type Entity struct {
	Kind Kind
	core.Box

	Slope      float64 // ramps: H / W
	Multiplier int     // coins: -1 or 1..5
	Rotation   float64 // coins
	AnimTime   float64 // coins, birds, snails, watches
}

// Culled reports whether the entity has left the playfield for good.
func (e Entity) Culled(displayWidth float64) bool {
	t := kindTraits[e.Kind]
	if e.Right() < -t.cullMargin {
		return true
	}
	return t.cullRight && e.X > displayWidth+rightCullMargin
}

// CoinValue returns the coin's score contribution.
func (e Entity) CoinValue(basePoints int) int {
	return basePoints * e.Multiplier
}
