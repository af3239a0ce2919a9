package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/EngoEngine/engo"
	"github.com/ScottBrooks/kerbee"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "yaml config file, defaults are used when empty")
	logLevel := flag.String("log-level", "", "log level, overrides the config")
	fps := flag.Int("fps", 60, "frame rate limit")
	music := flag.Bool("music", true, "play background music")
	assets := flag.String("assets", "", "assets folder, searched for next to the working directory and the exe when empty")
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

	root, err := findAssets(*assets)
	if err != nil {
		log.Fatal(err)
	}

	var useGraphics bool
	displayEnv := os.Getenv("DISPLAY")
	if displayEnv != "" || runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		useGraphics = true
	}
	if !useGraphics {
		log.Fatal("No display found, use kerbee-sim or kerbee-term instead")
	}

	gs := &GameScene{Config: cfg, Music: *music, AssetsRoot: root}
	engo.RegisterScene(gs)

	opts := engo.RunOptions{
		Title:          cfg.Window.Title,
		Width:          int(cfg.Window.Width),
		Height:         int(cfg.Window.Height),
		StandardInputs: true,
		FPSLimit:       *fps,
		AssetsRoot:     root,
	}
	engo.Run(opts, &MainMenuScene{Title: cfg.Window.Title})
}

// findAssets returns dir when set. Otherwise it looks for an assets folder in the working
// directory and then next to the executable.
func findAssets(dir string) (string, error) {
	candidates := []string{dir}
	if dir == "" {
		candidates = []string{"assets"}
		if ex, err := os.Executable(); err == nil {
			candidates = append(candidates, filepath.Join(filepath.Dir(ex), "assets"))
		}
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			log.WithField("root", c).Debug("Found assets")
			return c, nil
		}
	}
	return "", fmt.Errorf("no assets folder in %v", candidates)
}
