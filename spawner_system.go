package kerbee

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// SpawnerSystem runs every spawner's enemy timer, the global difficulty timer and the
// spawner animation.
type SpawnerSystem struct {
	Res *Resources

	Entities   []*Spawner
	Difficulty *Timer
}

func NewSpawnerSystem(res *Resources) *SpawnerSystem {
	return &SpawnerSystem{Res: res, Difficulty: NewTimer(res.Config.Spawner.Difficulty, true)}
}

func (ss *SpawnerSystem) Add(s *Spawner) {
	ss.Entities = append(ss.Entities, s)
}

func (ss *SpawnerSystem) Remove(ent ecs.BasicEntity) {
	for i, e := range ss.Entities {
		if e.ID() == ent.ID() {
			ss.Entities = append(ss.Entities[:i], ss.Entities[i+1:]...)
			return
		}
	}
}

func (*SpawnerSystem) Priority() int { return 40 }
func (ss *SpawnerSystem) Update(dt float32) {
	d := seconds(dt)
	cfg := ss.Res.Config

	harder := ss.Difficulty.Tick(d).JustFinished()
	for _, s := range ss.Entities {
		if s.EnemyTimer.Tick(d).JustFinished() {
			ss.Res.Commands.Spawn(NewEnemy(cfg, s.Translation))
		}
		if s.AnimTimer.Tick(d).JustFinished() {
			s.Advance()
		}
	}
	if harder {
		ss.raiseDifficulty()
	}
}

// raiseDifficulty shortens every spawner's interval. Spawners already at the floor stay there.
func (ss *SpawnerSystem) raiseDifficulty() {
	cfg := ss.Res.Config.Spawner
	changed := 0
	for _, s := range ss.Entities {
		if s.Harder(cfg.Decrement, cfg.MinInterval) {
			changed++
		}
	}
	if changed == 0 {
		log.WithField("interval", cfg.MinInterval).Info("Difficulty max")
		return
	}
	log.WithField("spawners", changed).Info("Difficulty went up")
}
