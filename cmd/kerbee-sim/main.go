package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/ScottBrooks/kerbee"
	log "github.com/sirupsen/logrus"
)

// BotScene runs the game headless with the autopilot holding the keys.
type BotScene struct {
	Config   kerbee.Config
	Seed     int64
	Duration time.Duration

	Game *kerbee.Game
}

func (*BotScene) Preload() {}
func (bs *BotScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	g, err := kerbee.NewGame(bs.Config, rand.New(rand.NewSource(bs.Seed)))
	if err != nil {
		log.WithError(err).Fatal("Unable to set up game")
	}
	bs.Game = g
	g.AddSystem(kerbee.NewBotSystem(g.Res))
	g.OnPlayerHit(func(hp int) {
		if hp <= 0 {
			log.WithField("hp", hp).Info("Bot died")
		}
	})

	w.AddSystem(&StepSystem{Game: g, Duration: bs.Duration})
	log.WithField("seed", bs.Seed).Info("Bot started")
}
func (*BotScene) Type() string { return "Bot" }

// StepSystem steps the game and stops the run once the duration has passed or the player is out of health.
type StepSystem struct {
	Game     *kerbee.Game
	Duration time.Duration

	elapsed time.Duration
	frames  int
}

func (*StepSystem) Remove(ecs.BasicEntity) {}
func (ss *StepSystem) Update(dt float32) {
	ss.Game.Update(dt)
	ss.frames++
	ss.elapsed += time.Duration(float64(dt) * float64(time.Second))

	if ss.Game.HP() > 0 && (ss.Duration <= 0 || ss.elapsed < ss.Duration) {
		return
	}

	fields := log.Fields{
		"frames":   ss.frames,
		"elapsed":  ss.elapsed,
		"hp":       ss.Game.HP(),
		"attack":   ss.Game.Attack().Name(),
		"entities": len(ss.Game.Entities()),
		"dropped":  ss.Game.Res.Events.Dropped(),
	}
	if d := ss.Game.Difficulty(); d != nil {
		fields["next_difficulty"] = d.Duration() - d.Elapsed()
	}
	if sp := ss.Game.Spawners(); len(sp) > 0 {
		fields["spawn_interval"] = sp[0].EnemyTimer.Duration()
	}
	if p := ss.Game.Player(); p != nil {
		fields["pos"] = p.Translation
	}
	log.WithFields(fields).Info("Run finished")
	engo.Exit()
}

func main() {
	configPath := flag.String("config", "", "yaml config file, defaults are used when empty")
	logLevel := flag.String("log-level", "", "log level, overrides the config")
	fps := flag.Int("fps", 30, "frame rate limit")
	seed := flag.Int64("seed", time.Now().Unix(), "random seed")
	duration := flag.Duration("duration", 2*time.Minute, "stop after this much game time, 0 runs until the bot dies")
	flag.Parse()

	cfg := kerbee.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = kerbee.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := kerbee.SetupLogging(cfg.LogLevel, os.Stdout); err != nil {
		log.Fatal(err)
	}

	opts := engo.RunOptions{
		Title:        cfg.Window.Title,
		HeadlessMode: true,
		FPSLimit:     *fps,
	}
	engo.Run(opts, &BotScene{Config: cfg, Seed: *seed, Duration: *duration})
}
