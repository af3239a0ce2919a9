package kerbee

import (
	"math"

	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// CollisionSystem runs three AABB passes each frame: the player against everything with a
// collider, enemies against each other, and fireballs against everything with a collider.
type CollisionSystem struct {
	Res *Resources

	Entities  []Collidable
	Enemies   []*Enemy
	Fireballs []*Fireball
}

func (cs *CollisionSystem) Add(c Collidable) {
	cs.Entities = append(cs.Entities, c)
	switch e := c.(type) {
	case *Enemy:
		cs.Enemies = append(cs.Enemies, e)
	case *Fireball:
		cs.Fireballs = append(cs.Fireballs, e)
	}
}

func (cs *CollisionSystem) Remove(ent ecs.BasicEntity) {
	for i, e := range cs.Entities {
		if e.GetBasicEntity().ID() == ent.ID() {
			cs.Entities = append(cs.Entities[:i], cs.Entities[i+1:]...)
			break
		}
	}
	for i, e := range cs.Enemies {
		if e.ID() == ent.ID() {
			cs.Enemies = append(cs.Enemies[:i], cs.Enemies[i+1:]...)
			break
		}
	}
	for i, e := range cs.Fireballs {
		if e.ID() == ent.ID() {
			cs.Fireballs = append(cs.Fireballs[:i], cs.Fireballs[i+1:]...)
			break
		}
	}
}

func (*CollisionSystem) Priority() int { return 60 }
func (cs *CollisionSystem) Update(dt float32) {
	cs.collidePlayer()
	cs.collideEnemies()
	cs.collideFireballs()
}

func (cs *CollisionSystem) collidePlayer() {
	p := cs.Res.player
	if p == nil {
		return
	}
	for _, c := range cs.Entities {
		t, hb := c.GetTransform(), c.GetHitbox()
		side, hit := Collide(p.Translation, p.Size, t.Translation, hb.Size)
		if !hit {
			continue
		}

		switch c.Tag() {
		case ColliderEnemy:
			cs.Res.Commands.Despawn(*c.GetBasicEntity())
			cs.Res.Events.Send(PlayerHitEvent{Player: p.ID()})
			log.Info("Player got hit")
		case ColliderSolid:
			// side is the face of the solid the player ran into
			p.Translation = Resolve(p.Translation, p.Size, t.Translation, hb.Size, side, math.Floor)
		}
	}
}

// collideEnemies pairs enemies up in order, (1,2) then (3,4) and so on, and pushes the
// first of each pair out of the second. An odd enemy out is left alone for the frame.
func (cs *CollisionSystem) collideEnemies() {
	for i := 0; i+1 < len(cs.Enemies); i += 2 {
		a, b := cs.Enemies[i], cs.Enemies[i+1]
		side, hit := Collide(a.Translation, a.Size, b.Translation, b.Size)
		if !hit {
			continue
		}
		a.Translation = Resolve(a.Translation, a.Size, b.Translation, b.Size, side, math.Ceil)
	}
}

func (cs *CollisionSystem) collideFireballs() {
	for _, f := range cs.Fireballs {
		for _, c := range cs.Entities {
			t, hb := c.GetTransform(), c.GetHitbox()
			if _, hit := Collide(f.Translation, f.Size, t.Translation, hb.Size); !hit {
				continue
			}
			switch c.Tag() {
			case ColliderEnemy:
				cs.Res.Commands.Despawn(f.BasicEntity)
				cs.Res.Commands.Despawn(*c.GetBasicEntity())
			case ColliderSolid:
				cs.Res.Commands.Despawn(f.BasicEntity)
			}
		}
	}
}
