package kerbee

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// HealthSystem consumes the frame's player hit events, lowers HP and empties a heart per hit.
type HealthSystem struct {
	Res *Resources

	Hearts []*Heart
	// OnHit is called after each processed hit with the new HP. Frontends use it to update the HUD.
	OnHit func(hp int)
}

func (hs *HealthSystem) Add(h *Heart) {
	hs.Hearts = append(hs.Hearts, h)
}

func (hs *HealthSystem) Remove(ent ecs.BasicEntity) {
	for i, e := range hs.Hearts {
		if e.ID() == ent.ID() {
			hs.Hearts = append(hs.Hearts[:i], hs.Hearts[i+1:]...)
			return
		}
	}
}

func (*HealthSystem) Priority() int { return 20 }
func (hs *HealthSystem) Update(dt float32) {
	for range hs.Res.Events.Drain() {
		hs.Res.HP--
		log.WithField("hp", hs.Res.HP).Info("Player hit")

		if hs.Res.HP == 0 {
			log.Info("Player died")
		} else if hs.Res.HP < 0 {
			log.WithField("hp", hs.Res.HP).Error("Player HP below zero")
			return
		}

		for _, h := range hs.Hearts {
			if h.Index == hs.Res.HP {
				h.Advance()
			}
		}
		if hs.OnHit != nil {
			hs.OnHit(hs.Res.HP)
		}
	}
}
