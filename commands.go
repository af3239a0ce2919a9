package kerbee

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// Entity is anything that can be spawned into the game.
type Entity interface {
	GetBasicEntity() *ecs.BasicEntity
}

// Commands collects spawns and despawns during a frame. Nothing is applied until Flush,
// so no system sees entities created or removed in the same frame.
type Commands struct {
	spawns   []Entity
	despawns []ecs.BasicEntity
	pending  map[uint64]bool
}

func NewCommands() *Commands {
	return &Commands{pending: map[uint64]bool{}}
}

func (c *Commands) Spawn(e Entity) {
	c.spawns = append(c.spawns, e)
}

// Despawn queues e for removal. Queuing the same entity twice removes it once.
func (c *Commands) Despawn(e ecs.BasicEntity) {
	if c.pending[e.ID()] {
		return
	}
	c.pending[e.ID()] = true
	c.despawns = append(c.despawns, e)
}

// Despawning reports whether e is already queued for removal this frame.
func (c *Commands) Despawning(e ecs.BasicEntity) bool {
	return c.pending[e.ID()]
}

func (c *Commands) Len() int { return len(c.spawns) + len(c.despawns) }

// Apply runs the queued despawns then spawns and empties the buffer.
func (c *Commands) Apply(remove func(ecs.BasicEntity), add func(Entity)) {
	despawns, spawns := c.despawns, c.spawns
	c.despawns, c.spawns = nil, nil
	c.pending = map[uint64]bool{}

	for _, e := range despawns {
		remove(e)
	}
	for _, e := range spawns {
		add(e)
	}
	if len(despawns) > 0 || len(spawns) > 0 {
		log.WithFields(log.Fields{"spawned": len(spawns), "despawned": len(despawns)}).Trace("Flushed commands")
	}
}

// FlushSystem applies the command buffer at the end of every frame.
type FlushSystem struct {
	Game *Game
}

func (*FlushSystem) Priority() int          { return -100 }
func (*FlushSystem) Remove(ecs.BasicEntity) {}
func (fs *FlushSystem) Update(dt float32) {
	fs.Game.flush()
}
