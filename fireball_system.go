package kerbee

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// FireballSystem advances live fireballs and removes the ones that left the playfield.
type FireballSystem struct {
	Res *Resources

	Entities []*Fireball
}

func (fs *FireballSystem) Add(f *Fireball) {
	fs.Entities = append(fs.Entities, f)
}

func (fs *FireballSystem) Remove(ent ecs.BasicEntity) {
	idx := -1
	for i, e := range fs.Entities {
		if e.ID() == ent.ID() {
			idx = i
			break
		}
	}
	if idx != -1 {
		fs.Entities = append(fs.Entities[:idx], fs.Entities[idx+1:]...)
	}
}

func (*FireballSystem) Priority() int { return 50 }
func (fs *FireballSystem) Update(dt float32) {
	cfg := fs.Res.Config.Fireball
	half := fs.Res.Config.HalfExtent()

	for _, f := range fs.Entities {
		f.Update(dt, cfg.Speed, cfg.Spin)
		if f.OutOfBounds(half, cfg.Margin) {
			fs.Res.Commands.Despawn(f.BasicEntity)
			log.WithField("id", f.ID()).Debug("Removed fireball")
		}
	}
}
