package kerbee

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type PlayerConfig struct {
	Speed    float32 `yaml:"speed"`
	Sprint   float32 `yaml:"sprint"`
	HalfSize float32 `yaml:"half_size"`
	HP       int     `yaml:"hp"`
}

type ReticleConfig struct {
	Offset float32    `yaml:"offset"`
	Start  [2]float32 `yaml:"start"`
	Size   float32    `yaml:"size"`
}

type FireballConfig struct {
	Speed    float32       `yaml:"speed"`
	Spin     float32       `yaml:"spin"`
	Margin   float32       `yaml:"margin"`
	Size     float32       `yaml:"size"`
	Interval time.Duration `yaml:"interval"`
}

type EnemyConfig struct {
	Speed float32 `yaml:"speed"`
	Scale float32 `yaml:"scale"`
	Size  float32 `yaml:"size"`
}

type SpawnerConfig struct {
	Inset        float32       `yaml:"inset"`
	Interval     time.Duration `yaml:"interval"`
	AnimInterval time.Duration `yaml:"anim_interval"`
	Frames       int           `yaml:"frames"`
	Scale        float32       `yaml:"scale"`
	Size         float32       `yaml:"size"`
	Decrement    time.Duration `yaml:"decrement"`
	MinInterval  time.Duration `yaml:"min_interval"`
	Difficulty   time.Duration `yaml:"difficulty_interval"`
}

type PowerupConfig struct {
	Interval time.Duration `yaml:"interval"`
	Attack   string        `yaml:"attack"`
	Size     float32       `yaml:"size"`
}

type HeartConfig struct {
	Count   int     `yaml:"count"`
	Spacing float32 `yaml:"spacing"`
	Inset   float32 `yaml:"inset"`
	Scale   float32 `yaml:"scale"`
}

type AssetConfig struct {
	Player   string `yaml:"player"`
	Reticle  string `yaml:"reticle"`
	Fireball string `yaml:"fireball"`
	Enemy    string `yaml:"enemy"`
	Spawner  string `yaml:"spawner"`
	Heart    string `yaml:"heart"`
	Music    string `yaml:"music"`
}

// Config holds every tunable of the game. DefaultConfig matches the shipped game.
type Config struct {
	Window      WindowConfig   `yaml:"window"`
	Player      PlayerConfig   `yaml:"player"`
	Reticle     ReticleConfig  `yaml:"reticle"`
	Fireball    FireballConfig `yaml:"fireball"`
	Enemy       EnemyConfig    `yaml:"enemy"`
	Spawner     SpawnerConfig  `yaml:"spawner"`
	Powerup     PowerupConfig  `yaml:"powerup"`
	Hearts      HeartConfig    `yaml:"hearts"`
	Assets      AssetConfig    `yaml:"assets"`
	Attack      string         `yaml:"attack"`
	SplitOffset float32        `yaml:"split_offset"`
	EventQueue  int            `yaml:"event_queue"`
	LogLevel    string         `yaml:"log_level"`
	MusicVolume float64        `yaml:"music_volume"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "Game Thing", Width: 1280, Height: 720},
		Player: PlayerConfig{Speed: 200, Sprint: 1.5, HalfSize: 16, HP: 3},
		Reticle: ReticleConfig{
			Offset: 100,
			Start:  [2]float32{100, 0},
			Size:   16,
		},
		Fireball: FireballConfig{
			Speed:    500,
			Spin:     0.5,
			Margin:   100,
			Size:     16,
			Interval: 100 * time.Millisecond,
		},
		Enemy: EnemyConfig{Speed: 175, Scale: 1.5, Size: 16},
		Spawner: SpawnerConfig{
			Inset:        100,
			Interval:     2 * time.Second,
			AnimInterval: 120 * time.Millisecond,
			Frames:       3,
			Scale:        2,
			Size:         32,
			Decrement:    500 * time.Millisecond,
			MinInterval:  500 * time.Millisecond,
			Difficulty:   30 * time.Second,
		},
		Powerup: PowerupConfig{Interval: 30 * time.Second, Attack: "split", Size: 8},
		Hearts:  HeartConfig{Count: 3, Spacing: 36, Inset: 20, Scale: 2},
		Assets: AssetConfig{
			Player:   "kerbee.png",
			Reticle:  "reticle.png",
			Fireball: "fireball.png",
			Enemy:    "enemy.png",
			Spawner:  "spawner.png",
			Heart:    "heart.png",
			Music:    "music1.mp3",
		},
		Attack:      "basic",
		SplitOffset: 10,
		EventQueue:  16,
		LogLevel:    "info",
		MusicVolume: -1,
	}
}

// LoadConfig reads a YAML file on top of the defaults. Missing keys keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if _, err := AttackByName(c.Attack); err != nil {
		return err
	}
	if _, err := AttackByName(c.Powerup.Attack); err != nil {
		return err
	}
	if c.Spawner.MinInterval <= 0 {
		return fmt.Errorf("spawner min_interval must be positive, got %v", c.Spawner.MinInterval)
	}
	if c.Hearts.Count < 0 {
		return fmt.Errorf("hearts count must not be negative, got %d", c.Hearts.Count)
	}
	return nil
}

// HalfExtent is half the window size, the playfield bounds around the origin.
func (c Config) HalfExtent() mgl32.Vec2 {
	return mgl32.Vec2{c.Window.Width / 2, c.Window.Height / 2}
}

// PlayerBounds is the box the player's center is clamped to.
func (c Config) PlayerBounds() mgl32.Vec2 {
	h := c.HalfExtent()
	return mgl32.Vec2{h[0] - c.Player.HalfSize, h[1] - c.Player.HalfSize}
}

// NewAttack builds the named attack with the configured tuning.
func (c Config) NewAttack(name string) (Attack, error) {
	a, err := AttackByName(name)
	if err != nil {
		return nil, err
	}
	if _, ok := a.(Split); ok {
		return Split{Offset: c.SplitOffset}, nil
	}
	return a, nil
}
