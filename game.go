package kerbee

import (
	"fmt"
	"math/rand"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// Game owns the world, the shared resources and every system of the simulation.
// Frontends feed Input, call Update once per frame and draw what Each yields.
type Game struct {
	World *ecs.World
	Res   *Resources

	mouse     *MouseSystem
	movement  *MovementSystem
	fire      *FireSystem
	enemies   *EnemySystem
	collision *CollisionSystem
	fireballs *FireballSystem
	spawners  *SpawnerSystem
	powerups  *PowerupSystem
	health    *HealthSystem

	entities map[uint64]Entity
	order    []Entity
}

// NewGame builds the world from cfg and spawns the starting level.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	attack, err := cfg.NewAttack(cfg.Attack)
	if err != nil {
		return nil, err
	}

	res := &Resources{
		Config:   cfg,
		Input:    NewInputState(mgl32.Vec2{cfg.Window.Width, cfg.Window.Height}),
		Commands: NewCommands(),
		Events:   NewEventQueue(cfg.EventQueue),
		Rand:     rng,
		Attack:   attack,
		HP:       cfg.Player.HP,
	}

	g := &Game{
		World:     &ecs.World{},
		Res:       res,
		mouse:     &MouseSystem{Res: res},
		movement:  &MovementSystem{Res: res},
		fire:      NewFireSystem(res),
		enemies:   &EnemySystem{Res: res},
		collision: &CollisionSystem{Res: res},
		fireballs: &FireballSystem{Res: res},
		spawners:  NewSpawnerSystem(res),
		powerups:  &PowerupSystem{Res: res},
		health:    &HealthSystem{Res: res},
		entities:  map[uint64]Entity{},
	}

	g.World.AddSystem(g.mouse)
	g.World.AddSystem(g.movement)
	g.World.AddSystem(g.fire)
	g.World.AddSystem(g.enemies)
	g.World.AddSystem(g.collision)
	g.World.AddSystem(g.fireballs)
	g.World.AddSystem(g.spawners)
	g.World.AddSystem(g.powerups)
	g.World.AddSystem(g.health)
	g.World.AddSystem(&FlushSystem{Game: g})

	Setup(cfg, res.Commands)
	g.flush()
	if err := Validate(g.entities); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"entities": len(g.entities),
		"attack":   attack.Name(),
		"hp":       res.HP,
	}).Info("Game ready")
	return g, nil
}

// Update advances the simulation one frame. dt is in seconds.
func (g *Game) Update(dt float32) {
	g.World.Update(dt)
}

// AddSystem registers an extra system, such as the autopilot, with the world.
func (g *Game) AddSystem(s ecs.System) {
	g.World.AddSystem(s)
}

// OnPlayerHit registers fn to be called with the new HP after each hit.
func (g *Game) OnPlayerHit(fn func(hp int)) {
	g.health.OnHit = fn
}

// Each calls fn for every live renderable entity, in spawn order.
func (g *Game) Each(fn func(Renderable)) {
	for _, e := range g.order {
		if r, ok := e.(Renderable); ok {
			fn(r)
		}
	}
}

// Entities returns the live entities in spawn order.
func (g *Game) Entities() []Entity {
	out := make([]Entity, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Game) Player() *Player      { return g.Res.player }
func (g *Game) Reticle() *Reticle    { return g.Res.reticle }
func (g *Game) HP() int              { return g.Res.HP }
func (g *Game) Attack() Attack       { return g.Res.Attack }
func (g *Game) Input() *InputState   { return g.Res.Input }
func (g *Game) Difficulty() *Timer   { return g.spawners.Difficulty }
func (g *Game) Spawners() []*Spawner { return g.spawners.Entities }

func (g *Game) flush() {
	g.Res.Commands.Apply(g.remove, g.add)
	g.Res.Events.Clear()
}

func (g *Game) add(e Entity) {
	switch ent := e.(type) {
	case *Player:
		g.Res.player = ent
	case *Reticle:
		g.Res.reticle = ent
	case *Fireball:
		g.fireballs.Add(ent)
		g.collision.Add(ent)
	case *Enemy:
		g.enemies.Add(ent)
		g.collision.Add(ent)
	case *Spawner:
		g.spawners.Add(ent)
		g.collision.Add(ent)
	case *Powerup:
		g.powerups.Add(ent)
	case *Heart:
		g.health.Add(ent)
	default:
		log.WithField("type", fmt.Sprintf("%T", e)).Warn("Spawned entity no system handles")
	}

	id := e.GetBasicEntity().ID()
	g.entities[id] = e
	g.order = append(g.order, e)
}

func (g *Game) remove(b ecs.BasicEntity) {
	e, ok := g.entities[b.ID()]
	if !ok {
		return
	}
	g.World.RemoveEntity(b)

	switch e.(type) {
	case *Player:
		g.Res.player = nil
	case *Reticle:
		g.Res.reticle = nil
	}

	delete(g.entities, b.ID())
	for i, o := range g.order {
		if o.GetBasicEntity().ID() == b.ID() {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}
