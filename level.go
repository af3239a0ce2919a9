package kerbee

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// ErrMissingSingleton is returned when the level does not hold exactly one of an entity
// the systems depend on.
var ErrMissingSingleton = errors.New("missing singleton")

const (
	ringSlots = 12
	ringStep  = 2 * math.Pi / ringSlots
)

// SpawnerPositions places spawners on an ellipse inset from the playfield edge. The ring has
// a slot every 30 degrees and the four slots on the axes are left empty. Positions are
// rounded to whole units so solid edges land on the same grid the push-out rounds to.
func SpawnerPositions(cfg Config) []mgl32.Vec3 {
	half := cfg.HalfExtent()
	rx, ry := half[0]-cfg.Spawner.Inset, half[1]-cfg.Spawner.Inset

	var out []mgl32.Vec3
	for i := 0; i < ringSlots; i++ {
		if i%3 == 0 {
			continue
		}
		sin, cos := math.Sincos(float64(i) * ringStep)
		x := math.Round(cos * float64(rx))
		y := math.Round(sin * float64(ry))
		out = append(out, mgl32.Vec3{float32(x), float32(y), 0})
	}
	return out
}

// Setup queues every entity of the starting level.
func Setup(cfg Config, cmds *Commands) {
	cmds.Spawn(NewReticle(cfg))
	cmds.Spawn(NewPlayer(cfg))

	for _, pos := range SpawnerPositions(cfg) {
		cmds.Spawn(NewSpawner(cfg, pos))
	}
	for i := 0; i < cfg.Hearts.Count; i++ {
		cmds.Spawn(NewHeart(cfg, i))
	}
	log.WithField("entities", cmds.Len()).Debug("Level queued")
}

// Validate checks the level has exactly one player and one reticle.
func Validate(entities map[uint64]Entity) error {
	var players, reticles int
	for _, e := range entities {
		switch e.(type) {
		case *Player:
			players++
		case *Reticle:
			reticles++
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: found %d players", ErrMissingSingleton, players)
	}
	if reticles != 1 {
		return fmt.Errorf("%w: found %d reticles", ErrMissingSingleton, reticles)
	}
	return nil
}
