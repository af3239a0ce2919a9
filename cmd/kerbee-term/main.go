package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ScottBrooks/kerbee"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

const (
	frameDuration = time.Second / 30
	// terminals only report key presses, a key counts as held until this long after its last repeat
	keyTimeout = 150 * time.Millisecond
	maxDelta   = 0.1
)

func main() {
	configPath := flag.String("config", "", "yaml config file, defaults are used when empty")
	logLevel := flag.String("log-level", "", "log level, overrides the config")
	flag.Parse()

	cfg := kerbee.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = kerbee.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// stdout is the game screen, so logs go to a file named for the day
	logName := fmt.Sprintf("kerbee_%s.log", time.Now().Format("01_02_06"))
	logFile, err := os.OpenFile(logName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	if err := kerbee.SetupLogging(cfg.LogLevel, logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := kerbee.NewGame(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.WithError(err).Error("Unable to set up game")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	t := &Terminal{Screen: screen, Game: g, keys: map[kerbee.Key]time.Time{}}
	t.Run()
}

// Terminal drives the game from a tcell screen.
type Terminal struct {
	Screen tcell.Screen
	Game   *kerbee.Game

	keys      map[kerbee.Key]time.Time
	lastFrame time.Time
	paused    bool
}

func (t *Terminal) Run() {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := t.Screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	t.lastFrame = time.Now()

	for {
		now := time.Now()
		dt := now.Sub(t.lastFrame).Seconds()
		t.lastFrame = now
		if dt > maxDelta {
			dt = maxDelta
		}

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				if quit := t.handle(ev); quit {
					log.Info("Quit")
					return
				}
			default:
				break drain
			}
		}

		t.updateKeys(now)
		if !t.paused && t.Game.HP() > 0 {
			t.Game.Update(float32(dt))
		}
		t.Draw()

		<-ticker.C
	}
}

func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		shift := ev.Modifiers()&tcell.ModShift != 0

		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			t.press(kerbee.KeyUp, shift, now)
		case tcell.KeyDown:
			t.press(kerbee.KeyDown, shift, now)
		case tcell.KeyLeft:
			t.press(kerbee.KeyLeft, shift, now)
		case tcell.KeyRight:
			t.press(kerbee.KeyRight, shift, now)
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'p' || r == 'P' {
				t.paused = !t.paused
				return false
			}
			if r == 'q' {
				return true
			}
			if k, ok := runeKeys[r]; ok {
				// an upper case letter means shift was down
				t.press(k, shift || (r >= 'A' && r <= 'Z'), now)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.Game.Input().MoveCursor(t.toWindow(x, y))
	case *tcell.EventResize:
		t.Screen.Sync()
	}
	return false
}

var runeKeys = map[rune]kerbee.Key{
	'w': kerbee.KeyW, 'W': kerbee.KeyW,
	'a': kerbee.KeyA, 'A': kerbee.KeyA,
	's': kerbee.KeyS, 'S': kerbee.KeyS,
	'd': kerbee.KeyD, 'D': kerbee.KeyD,
}

func (t *Terminal) press(k kerbee.Key, shift bool, now time.Time) {
	t.keys[k] = now
	if shift {
		t.keys[kerbee.KeyShift] = now
	}
}

// updateKeys writes the emulated held keys into the game input.
func (t *Terminal) updateKeys(now time.Time) {
	in := t.Game.Input()
	in.ReleaseAll()
	for k, last := range t.keys {
		if now.Sub(last) < keyTimeout {
			in.Set(k, true)
			continue
		}
		delete(t.keys, k)
	}
}
