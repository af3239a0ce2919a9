package kerbee

import "github.com/EngoEngine/ecs"

// EnemySystem walks every enemy toward the player.
type EnemySystem struct {
	Res *Resources

	Entities []*Enemy
}

func (es *EnemySystem) Add(e *Enemy) {
	es.Entities = append(es.Entities, e)
}

func (es *EnemySystem) Remove(ent ecs.BasicEntity) {
	idx := -1
	for i, e := range es.Entities {
		if e.ID() == ent.ID() {
			idx = i
			break
		}
	}
	if idx != -1 {
		es.Entities = append(es.Entities[:idx], es.Entities[idx+1:]...)
	}
}

func (*EnemySystem) Priority() int { return 70 }
func (es *EnemySystem) Update(dt float32) {
	p := es.Res.player
	if p == nil {
		return
	}
	for _, e := range es.Entities {
		e.Chase(p.Translation, dt)
	}
}
