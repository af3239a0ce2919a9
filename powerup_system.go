package kerbee

import (
	"time"

	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// PowerupSystem drops a powerup every interval of play and hands its attack to the
// player on pickup.
type PowerupSystem struct {
	Res *Resources

	Entities []*Powerup
	elapsed  time.Duration
}

func (ps *PowerupSystem) Add(p *Powerup) {
	ps.Entities = append(ps.Entities, p)
}

func (ps *PowerupSystem) Remove(ent ecs.BasicEntity) {
	for i, e := range ps.Entities {
		if e.ID() == ent.ID() {
			ps.Entities = append(ps.Entities[:i], ps.Entities[i+1:]...)
			return
		}
	}
}

func (*PowerupSystem) Priority() int { return 30 }
func (ps *PowerupSystem) Update(dt float32) {
	cfg := ps.Res.Config

	ps.elapsed += seconds(dt)
	if cfg.Powerup.Interval > 0 && ps.elapsed >= cfg.Powerup.Interval {
		ps.elapsed -= cfg.Powerup.Interval
		ps.spawn()
	}

	p := ps.Res.player
	if p == nil {
		return
	}
	for _, pu := range ps.Entities {
		if ps.Res.Commands.Despawning(pu.BasicEntity) {
			continue
		}
		if _, hit := Collide(p.Translation, p.Size, pu.Translation, pu.Size); !hit {
			continue
		}
		ps.Res.Attack = pu.Attack
		ps.Res.Commands.Despawn(pu.BasicEntity)
		log.WithField("attack", pu.Attack.Name()).Info("Picked up powerup")
	}
}

func (ps *PowerupSystem) spawn() {
	cfg := ps.Res.Config
	attack, err := cfg.NewAttack(cfg.Powerup.Attack)
	if err != nil {
		log.WithError(err).Error("Unable to build powerup attack")
		return
	}
	pos := randomPoint(ps.Res.Rand, cfg.PlayerBounds())
	ps.Res.Commands.Spawn(NewPowerup(cfg, pos, attack))
	log.WithField("pos", pos).Info("Spawned powerup")
}
