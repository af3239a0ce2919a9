package kerbee

import (
	"time"

	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

var (
	moveKeys = []Key{KeyW, KeyA, KeyS, KeyD}
	maxHold  = 2 * time.Second
)

// BotSystem drives the input state on its own: it picks a movement key and an aim key,
// holds them for a random time, then picks again. It runs before every other system.
type BotSystem struct {
	Res *Resources

	clock      time.Duration
	NextMoveAt time.Duration
	NextAimAt  time.Duration

	move Key
	aim  Key
}

func NewBotSystem(res *Resources) *BotSystem {
	return &BotSystem{Res: res, move: -1, aim: -1}
}

func (*BotSystem) Priority() int          { return 110 }
func (*BotSystem) Remove(ecs.BasicEntity) {}
func (bs *BotSystem) Update(dt float32) {
	bs.clock += seconds(dt)
	in := bs.Res.Input
	rng := bs.Res.Rand

	if bs.clock >= bs.NextMoveAt {
		if bs.move >= 0 {
			in.Set(bs.move, false)
		}
		bs.move = moveKeys[rng.Intn(len(moveKeys))]
		in.Set(bs.move, true)
		in.Set(KeyShift, rng.Intn(4) == 0)
		bs.NextMoveAt = bs.clock + bs.hold()
		log.WithField("key", bs.move).Debug("Bot moving")
	}

	if bs.clock >= bs.NextAimAt {
		if bs.aim >= 0 {
			in.Set(bs.aim, false)
		}
		// one turn in four the bot stops shooting
		if rng.Intn(4) == 0 {
			bs.aim = -1
		} else {
			bs.aim = AimKeys[rng.Intn(len(AimKeys))]
			in.Set(bs.aim, true)
		}
		bs.NextAimAt = bs.clock + bs.hold()
		log.WithField("key", bs.aim).Debug("Bot aiming")
	}
}

func (bs *BotSystem) hold() time.Duration {
	return time.Duration(bs.Res.Rand.Int63n(int64(maxHold)))
}
