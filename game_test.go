package kerbee

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return newTestGameConfig(t, DefaultConfig())
}

func newTestGameConfig(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func count(g *Game) map[string]int {
	n := map[string]int{}
	for _, e := range g.Entities() {
		n[fmt.Sprintf("%T", e)]++
	}
	return n
}

func alive(g *Game, e Entity) bool {
	_, ok := g.entities[e.GetBasicEntity().ID()]
	return ok
}

func TestNewGameLevel(t *testing.T) {
	g := newTestGame(t)
	n := count(g)

	var tests = []struct {
		kind string
		want int
	}{
		{"*kerbee.Player", 1},
		{"*kerbee.Reticle", 1},
		{"*kerbee.Spawner", 8},
		{"*kerbee.Heart", 3},
		{"*kerbee.Enemy", 0},
		{"*kerbee.Fireball", 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s should be %d", tt.kind, tt.want), func(t *testing.T) {
			if n[tt.kind] != tt.want {
				t.Errorf("got %d, want %d", n[tt.kind], tt.want)
			}
		})
	}

	if g.HP() != 3 {
		t.Errorf("got hp %d, want 3", g.HP())
	}
	if g.Attack().Name() != "basic" {
		t.Errorf("got attack %s, want basic", g.Attack().Name())
	}
	if want := (mgl32.Vec3{100, 0, 0}); g.Reticle().Translation != want {
		t.Errorf("reticle at %v, want %v", g.Reticle().Translation, want)
	}
}

func TestSpawnerPositions(t *testing.T) {
	cfg := DefaultConfig()
	half := cfg.HalfExtent()
	pos := SpawnerPositions(cfg)
	if len(pos) != 8 {
		t.Fatalf("got %d spawners, want 8", len(pos))
	}
	for i, p := range pos {
		t.Run(fmt.Sprintf("spawner %d at %v", i, p), func(t *testing.T) {
			if abs32(p[0]) < 1 || abs32(p[1]) < 1 {
				t.Errorf("spawner sits on an axis")
			}
			if abs32(p[0]) > half[0]-cfg.Spawner.Inset+0.5 || abs32(p[1]) > half[1]-cfg.Spawner.Inset+0.5 {
				t.Errorf("spawner outside the inset ring")
			}
			if p[0] != float32(math.Round(float64(p[0]))) || p[1] != float32(math.Round(float64(p[1]))) {
				t.Errorf("spawner not on a whole unit")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	p, r := NewPlayer(cfg), NewReticle(cfg)
	p2 := NewPlayer(cfg)

	var tests = []struct {
		name     string
		entities []Entity
		err      error
	}{
		{"complete", []Entity{p, r}, nil},
		{"no player", []Entity{r}, ErrMissingSingleton},
		{"no reticle", []Entity{p}, ErrMissingSingleton},
		{"two players", []Entity{p, p2, r}, ErrMissingSingleton},
		{"empty", nil, ErrMissingSingleton},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[uint64]Entity{}
			for _, e := range tt.entities {
				m[e.GetBasicEntity().ID()] = e
			}
			if err := Validate(m); !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestNewGameBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Attack = "laser"
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownAttack) {
		t.Errorf("got %v, want %v", err, ErrUnknownAttack)
	}
}

func TestCommandsDeferred(t *testing.T) {
	g := newTestGame(t)
	e := NewEnemy(g.Res.Config, mgl32.Vec3{300, -300, 0})

	g.Res.Commands.Spawn(e)
	if alive(g, e) || len(g.enemies.Entities) != 0 {
		t.Fatal("spawned enemy visible before flush")
	}
	g.flush()
	if !alive(g, e) || len(g.enemies.Entities) != 1 || len(g.collision.Enemies) != 1 {
		t.Fatal("spawned enemy missing after flush")
	}

	g.Res.Commands.Despawn(e.BasicEntity)
	g.Res.Commands.Despawn(e.BasicEntity)
	if !alive(g, e) {
		t.Fatal("despawned enemy removed before flush")
	}
	g.flush()
	if alive(g, e) || len(g.enemies.Entities) != 0 || len(g.collision.Enemies) != 0 {
		t.Fatal("despawned enemy still present after flush")
	}

	// removing an entity that is already gone is ignored
	g.Res.Commands.Despawn(e.BasicEntity)
	g.flush()
	if n := count(g)["*kerbee.Spawner"]; n != 8 {
		t.Errorf("got %d spawners, want 8", n)
	}
}

func TestFireOnHold(t *testing.T) {
	g := newTestGame(t)
	g.Input().Set(KeyRight, true)

	fireballs := func() []*Fireball { return g.fireballs.Entities }

	g.Update(0.03)
	if n := len(fireballs()); n != 1 {
		t.Fatalf("got %d fireballs after the first frame, want 1", n)
	}
	f := fireballs()[0]
	if f.Translation != (mgl32.Vec3{}) {
		t.Errorf("new fireball moved to %v in the frame it was fired", f.Translation)
	}
	if want := (mgl32.Vec3{1, 0, 0}); !f.Direction.ApproxEqual(want) {
		t.Errorf("got direction %v, want %v", f.Direction, want)
	}

	for i := 0; i < 3; i++ {
		g.Update(0.03)
	}
	if n := len(fireballs()); n != 1 {
		t.Fatalf("got %d fireballs after 0.12s, want 1", n)
	}
	g.Update(0.03)
	if n := len(fireballs()); n != 2 {
		t.Fatalf("got %d fireballs after the interval, want 2", n)
	}

	g.Input().Set(KeyRight, false)
	for i := 0; i < 10; i++ {
		g.Update(0.03)
	}
	if n := len(fireballs()); n != 2 {
		t.Errorf("got %d fireballs after release, want 2", n)
	}
}

func TestFireSplit(t *testing.T) {
	g := newTestGame(t)
	g.Res.Attack = Split{Offset: 10}
	g.Input().Set(KeyUp, true)

	g.Update(0.01)
	if n := len(g.fireballs.Entities); n != 3 {
		t.Fatalf("got %d fireballs, want 3", n)
	}
}

func TestCollisionPlayerHit(t *testing.T) {
	g := newTestGame(t)
	a := NewEnemy(g.Res.Config, mgl32.Vec3{10, 0, 0})
	b := NewEnemy(g.Res.Config, mgl32.Vec3{-10, 5, 0})
	far := NewEnemy(g.Res.Config, mgl32.Vec3{300, -300, 0})
	g.Res.Commands.Spawn(a)
	g.Res.Commands.Spawn(b)
	g.Res.Commands.Spawn(far)
	g.flush()

	g.Update(0)

	if alive(g, a) || alive(g, b) {
		t.Error("enemies touching the player were not despawned")
	}
	if !alive(g, far) {
		t.Error("enemy away from the player was despawned")
	}
	if g.HP() != 1 {
		t.Errorf("got hp %d, want 1", g.HP())
	}
	if g.Res.Events.Len() != 0 {
		t.Errorf("%d events left after the frame", g.Res.Events.Len())
	}
	for _, h := range g.health.Hearts {
		want := 0
		if h.Index >= 1 {
			want = 1
		}
		if h.Frame != want {
			t.Errorf("heart %d on frame %d, want %d", h.Index, h.Frame, want)
		}
	}
}

func TestCollisionPlayerSolid(t *testing.T) {
	g := newTestGame(t)
	s := g.Spawners()[0]
	s.Translation = mgl32.Vec3{300, 100, 0}
	g.Player().Translation = mgl32.Vec3{300, 140, 0}

	g.collision.Update(0)
	if want := (mgl32.Vec3{300, 148, 0}); g.Player().Translation != want {
		t.Errorf("got %v, want %v", g.Player().Translation, want)
	}

	g.collision.Update(0)
	if want := (mgl32.Vec3{300, 148, 0}); g.Player().Translation != want {
		t.Errorf("second pass moved the player to %v", g.Player().Translation)
	}
}

func TestCollisionPlayerLevelSpawners(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()

	for i, s := range g.Spawners() {
		reach := (s.Size[0] + p.Size[0]) / 2
		var tests = []struct {
			side  string
			start mgl32.Vec3
		}{
			{"top", s.Translation.Add(mgl32.Vec3{0, reach - 4, 0})},
			{"bottom", s.Translation.Add(mgl32.Vec3{0, -reach + 4, 0})},
			{"left", s.Translation.Add(mgl32.Vec3{-reach + 4, 0, 0})},
			{"right", s.Translation.Add(mgl32.Vec3{reach - 4, 0, 0})},
		}
		for _, tt := range tests {
			t.Run(fmt.Sprintf("spawner %d at %v from the %s", i, s.Translation, tt.side), func(t *testing.T) {
				p.Translation = tt.start
				g.collision.collidePlayer()
				if _, hit := Collide(p.Translation, p.Size, s.Translation, s.Size); hit {
					t.Fatalf("player at %v still inside the spawner", p.Translation)
				}
				after := p.Translation
				g.collision.collidePlayer()
				if p.Translation != after {
					t.Errorf("second pass moved the player from %v to %v", after, p.Translation)
				}
			})
		}
	}
}

func TestCollisionEnemyPairs(t *testing.T) {
	g := newTestGame(t)
	e1 := NewEnemy(g.Res.Config, mgl32.Vec3{100, 0, 0})
	e2 := NewEnemy(g.Res.Config, mgl32.Vec3{110, 0, 0})
	e3 := NewEnemy(g.Res.Config, mgl32.Vec3{105, 5, 0})
	for _, e := range []*Enemy{e1, e2, e3} {
		g.Res.Commands.Spawn(e)
	}
	g.flush()

	g.collision.collideEnemies()

	var tests = []struct {
		name string
		e    *Enemy
		want mgl32.Vec3
	}{
		{"first of the pair is pushed left", e1, mgl32.Vec3{86, 0, 0}},
		{"second of the pair stays", e2, mgl32.Vec3{110, 0, 0}},
		{"odd enemy out stays", e3, mgl32.Vec3{105, 5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.e.Translation != tt.want {
				t.Errorf("got %v, want %v", tt.e.Translation, tt.want)
			}
		})
	}
}

func TestCollisionFireball(t *testing.T) {
	g := newTestGame(t)
	s := g.Spawners()[0]
	e := NewEnemy(g.Res.Config, mgl32.Vec3{300, -300, 0})
	hitsEnemy := NewFireball(g.Res.Config, Shot{Origin: e.Translation, Target: mgl32.Vec3{}})
	hitsSpawner := NewFireball(g.Res.Config, Shot{Origin: s.Translation, Target: mgl32.Vec3{}})
	misses := NewFireball(g.Res.Config, Shot{Origin: mgl32.Vec3{-300, 0, 0}, Target: mgl32.Vec3{-400, 0, 0}})
	for _, en := range []Entity{e, hitsEnemy, hitsSpawner, misses} {
		g.Res.Commands.Spawn(en)
	}
	g.flush()

	g.collision.Update(0)
	g.flush()

	var tests = []struct {
		name  string
		e     Entity
		alive bool
	}{
		{"enemy hit by a fireball", e, false},
		{"fireball that hit an enemy", hitsEnemy, false},
		{"fireball that hit a spawner", hitsSpawner, false},
		{"spawner hit by a fireball", s, true},
		{"fireball that hit nothing", misses, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alive(g, tt.e); got != tt.alive {
				t.Errorf("got alive %v, want %v", got, tt.alive)
			}
		})
	}
}

func TestEnemyChase(t *testing.T) {
	g := newTestGame(t)
	e := NewEnemy(g.Res.Config, mgl32.Vec3{0, 175, 0})
	still := NewEnemy(g.Res.Config, mgl32.Vec3{})
	g.Res.Commands.Spawn(e)
	g.Res.Commands.Spawn(still)
	g.flush()

	g.enemies.Update(0.5)
	if want := (mgl32.Vec3{0, 87.5, 0}); !e.Translation.ApproxEqual(want) {
		t.Errorf("got %v, want %v", e.Translation, want)
	}
	if still.Translation != (mgl32.Vec3{}) {
		t.Errorf("enemy on the player moved to %v", still.Translation)
	}
}

func TestSpawnerSystem(t *testing.T) {
	g := newTestGame(t)

	g.Update(1)
	if n := count(g)["*kerbee.Enemy"]; n != 0 {
		t.Fatalf("got %d enemies after 1s, want 0", n)
	}
	g.Update(1)
	if n := count(g)["*kerbee.Enemy"]; n != 8 {
		t.Fatalf("got %d enemies after 2s, want 8", n)
	}
}

func TestDifficulty(t *testing.T) {
	g := newTestGame(t)
	want := []float64{1.5, 1.0, 0.5, 0.5, 0.5}

	for i, w := range want {
		t.Run(fmt.Sprintf("after %d rounds should be %vs", i+1, w), func(t *testing.T) {
			g.spawners.Update(30)
			if !g.Difficulty().JustFinished() {
				t.Fatal("difficulty timer did not fire")
			}
			for _, s := range g.Spawners() {
				if got := s.EnemyTimer.Duration().Seconds(); got != w {
					t.Errorf("got %vs, want %vs", got, w)
				}
			}
		})
	}
}

func TestSpawnerAnimation(t *testing.T) {
	g := newTestGame(t)
	s := g.Spawners()[0]

	var frames []int
	for i := 0; i < 4; i++ {
		g.spawners.Update(0.13)
		frames = append(frames, s.Frame)
	}
	want := []int{1, 2, 0, 1}
	if fmt.Sprint(frames) != fmt.Sprint(want) {
		t.Errorf("got frames %v, want %v", frames, want)
	}
}

func TestPowerupCadence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Powerup.Interval = time.Second
	res := &Resources{Config: cfg, Commands: NewCommands(), Rand: rand.New(rand.NewSource(3))}
	ps := &PowerupSystem{Res: res}

	var tests = []struct {
		dt   float32
		want int
	}{
		{0.6, 0},
		{0.6, 1},
		{0.6, 1},
		{0.3, 2},
		{0.5, 2},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("frame %d should have %d powerups", i+1, tt.want), func(t *testing.T) {
			ps.Update(tt.dt)
			if got := res.Commands.Len(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	half := cfg.PlayerBounds()
	for _, e := range res.Commands.spawns {
		pu := e.(*Powerup)
		if abs32(pu.Translation[0]) > half[0] || abs32(pu.Translation[1]) > half[1] {
			t.Errorf("powerup at %v outside the playfield", pu.Translation)
		}
		if pu.Attack.Name() != "split" {
			t.Errorf("powerup carries %s, want split", pu.Attack.Name())
		}
	}
}

func TestPowerupPickup(t *testing.T) {
	g := newTestGame(t)
	pu := NewPowerup(g.Res.Config, mgl32.Vec3{5, 5, 0}, Split{Offset: 10})
	away := NewPowerup(g.Res.Config, mgl32.Vec3{-300, 200, 0}, Split{Offset: 10})
	g.Res.Commands.Spawn(pu)
	g.Res.Commands.Spawn(away)
	g.flush()

	g.Update(0)
	if g.Attack() != (Split{Offset: 10}) {
		t.Errorf("got attack %v, want split", g.Attack())
	}
	if alive(g, pu) {
		t.Error("picked up powerup still alive")
	}
	if !alive(g, away) {
		t.Error("powerup away from the player was removed")
	}
}

func TestHealthBelowZero(t *testing.T) {
	g := newTestGame(t)
	g.Res.HP = 0

	var hits []int
	g.OnPlayerHit(func(hp int) { hits = append(hits, hp) })
	g.Res.Events.Send(PlayerHitEvent{Player: g.Player().ID()})
	g.Res.Events.Send(PlayerHitEvent{Player: g.Player().ID()})
	g.health.Update(0)

	if g.HP() != -1 {
		t.Errorf("got hp %d, want -1", g.HP())
	}
	if len(hits) != 0 {
		t.Errorf("got hit callbacks %v, want none", hits)
	}
	for _, h := range g.health.Hearts {
		if h.Frame != 0 {
			t.Errorf("heart %d changed with hp below zero", h.Index)
		}
	}
}

func TestEventQueue(t *testing.T) {
	q := NewEventQueue(2)
	if !q.Send(PlayerHitEvent{Player: 1}) || !q.Send(PlayerHitEvent{Player: 2}) {
		t.Fatal("queue refused events under capacity")
	}
	if q.Send(PlayerHitEvent{Player: 3}) {
		t.Error("full queue accepted an event")
	}
	if q.Dropped() != 1 {
		t.Errorf("got %d dropped, want 1", q.Dropped())
	}

	got := q.Drain()
	if len(got) != 2 || got[0].Player != 1 || got[1].Player != 2 {
		t.Errorf("got %v, want players 1 then 2", got)
	}
	if again := q.Drain(); len(again) != 0 {
		t.Errorf("second drain returned %v", again)
	}
}

func TestEventsClearedEachFrame(t *testing.T) {
	g := newTestGame(t)
	g.Res.Events.Send(PlayerHitEvent{})
	g.flush()
	if g.Res.Events.Len() != 0 {
		t.Errorf("got %d events after flush, want 0", g.Res.Events.Len())
	}
}

func TestBotSystem(t *testing.T) {
	g := newTestGame(t)
	g.AddSystem(NewBotSystem(g.Res))

	g.Update(0.05)
	if !g.Input().AnyPressed(moveKeys...) {
		t.Fatal("bot did not press a movement key")
	}
	start := g.Player().Translation
	for i := 0; i < 40; i++ {
		g.Update(0.05)
	}
	if g.Player() != nil && g.Player().Translation == start {
		t.Errorf("bot never moved the player from %v", start)
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetOutput(log.StandardLogger().Out)

	var buf bytes.Buffer
	if err := SetupLogging("debug", &buf); err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	log.Debug("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("debug line missing from %q", buf.String())
	}

	if err := SetupLogging("loud", &buf); err == nil {
		t.Error("unknown level accepted")
	}
}
