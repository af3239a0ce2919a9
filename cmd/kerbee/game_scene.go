package main

import (
	"image/color"
	"math/rand"
	"path"
	"path/filepath"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/ScottBrooks/kerbee"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

var buttons = map[string]struct {
	key  kerbee.Key
	keys []engo.Key
}{
	"MoveUp":    {kerbee.KeyW, []engo.Key{engo.KeyW}},
	"MoveLeft":  {kerbee.KeyA, []engo.Key{engo.KeyA}},
	"MoveDown":  {kerbee.KeyS, []engo.Key{engo.KeyS}},
	"MoveRight": {kerbee.KeyD, []engo.Key{engo.KeyD}},
	"AimUp":     {kerbee.KeyUp, []engo.Key{engo.KeyArrowUp}},
	"AimDown":   {kerbee.KeyDown, []engo.Key{engo.KeyArrowDown}},
	"AimLeft":   {kerbee.KeyLeft, []engo.Key{engo.KeyArrowLeft}},
	"AimRight":  {kerbee.KeyRight, []engo.Key{engo.KeyArrowRight}},
	"Sprint":    {kerbee.KeyShift, []engo.Key{engo.KeyLeftShift, engo.KeyRightShift}},
}

// PlayerInputSystem copies the engo button state and cursor into the game's input.
type PlayerInputSystem struct {
	Input *kerbee.InputState

	lastMouse engo.Point
}

func (*PlayerInputSystem) Priority() int          { return 100 }
func (*PlayerInputSystem) Remove(ecs.BasicEntity) {}
func (pis *PlayerInputSystem) Update(dt float32) {
	for name, b := range buttons {
		pis.Input.Set(b.key, engo.Input.Button(name).Down())
	}

	m := engo.Point{X: engo.Input.Mouse.X, Y: engo.Input.Mouse.Y}
	if m != pis.lastMouse {
		pis.lastMouse = m
		// engo's cursor is top left origin, the game's is bottom left
		pis.Input.MoveCursor(mgl32.Vec2{m.X, engo.GameHeight() - m.Y})
	}
}

// SimulationSystem steps the game once per engo frame.
type SimulationSystem struct {
	Game *kerbee.Game
}

func (*SimulationSystem) Priority() int          { return 90 }
func (*SimulationSystem) Remove(ecs.BasicEntity) {}
func (ss *SimulationSystem) Update(dt float32) {
	ss.Game.Update(dt)
}

type GameScene struct {
	Config     kerbee.Config
	Music      bool
	AssetsRoot string

	Game *kerbee.Game
	Font *common.Font
}

func (gs *GameScene) Preload() {
	a := gs.Config.Assets
	for _, asset := range []string{a.Player, a.Reticle, a.Fireball, a.Enemy, a.Spawner, a.Heart} {
		if err := engo.Files.Load(path.Join("textures", asset)); err != nil {
			log.WithError(err).WithField("asset", asset).Fatal("Error loading asset")
		}
	}
}

func (gs *GameScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	for name, b := range buttons {
		engo.Input.RegisterButton(name, b.keys...)
	}
	common.SetBackground(color.Black)

	g, err := kerbee.NewGame(gs.Config, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.WithError(err).Fatal("Unable to set up game")
	}
	gs.Game = g
	g.OnPlayerHit(func(hp int) {
		engo.Mailbox.Dispatch(PlayerHitMessage{HP: hp})
	})

	gs.Font = &common.Font{URL: "go.ttf", FG: color.White, Size: 24}
	if err := gs.Font.CreatePreloaded(); err != nil {
		log.WithError(err).Fatal("Unable to create font")
	}

	rs := &common.RenderSystem{}
	w.AddSystem(rs)
	w.AddSystem(&PlayerInputSystem{Input: g.Input()})
	w.AddSystem(&SimulationSystem{Game: g})
	w.AddSystem(NewRenderSyncSystem(g, rs))
	w.AddSystem(NewHudSystem(g, rs, gs.Font))

	if gs.Music {
		if err := PlayMusic(filepath.Join(gs.AssetsRoot, "audio", gs.Config.Assets.Music), gs.Config.MusicVolume); err != nil {
			log.WithError(err).Warn("Unable to play music")
		}
	}
}

func (*GameScene) Type() string { return "Game" }
