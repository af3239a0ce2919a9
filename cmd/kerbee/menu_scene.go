package main

import (
	"bytes"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

var (
	selectedColor   = color.RGBA{255, 0, 0, 255}
	unselectedColor = color.RGBA{255, 255, 255, 255}
)

type Text struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
}

type menuEntry struct {
	*common.RenderComponent
	label string
	run   func()
}

// MenuSystem highlights one menu entry at a time. Up and Down wrap around the ends and
// Enter or Space runs the highlighted entry.
type MenuSystem struct {
	entries []menuEntry
	current int
}

func (ms *MenuSystem) Add(t *Text, label string, run func()) {
	ms.entries = append(ms.entries, menuEntry{&t.RenderComponent, label, run})
	ms.paint()
}

// Move shifts the highlight by step entries.
func (ms *MenuSystem) Move(step int) {
	n := len(ms.entries)
	if n == 0 {
		return
	}
	ms.current = ((ms.current+step)%n + n) % n
	ms.paint()
}

func (ms *MenuSystem) Select() {
	if len(ms.entries) == 0 {
		return
	}
	e := ms.entries[ms.current]
	log.WithField("entry", e.label).Info("Menu entry selected")
	ms.entries = nil
	ms.current = 0
	e.run()
}

func (ms *MenuSystem) paint() {
	for i, e := range ms.entries {
		e.Color = unselectedColor
		if i == ms.current {
			e.Color = selectedColor
		}
	}
}

func (*MenuSystem) Remove(ecs.BasicEntity) {}
func (ms *MenuSystem) Update(dt float32) {
	switch {
	case engo.Input.Button("MenuUp").JustPressed():
		ms.Move(-1)
	case engo.Input.Button("MenuDown").JustPressed():
		ms.Move(1)
	case engo.Input.Button("MenuSelect").JustPressed():
		ms.Select()
	}
}

type MainMenuScene struct {
	Title string
	Font  *common.Font
}

func (*MainMenuScene) Preload() {
	if err := engo.Files.LoadReaderData("go.ttf", bytes.NewReader(gosmallcaps.TTF)); err != nil {
		log.WithError(err).Fatal("Unable to load font")
	}
}

func (mm *MainMenuScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	engo.Input.RegisterButton("MenuUp", engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton("MenuDown", engo.KeyArrowDown, engo.KeyS)
	engo.Input.RegisterButton("MenuSelect", engo.KeyEnter, engo.KeySpace)

	common.SetBackground(color.Black)
	rs := common.RenderSystem{}
	ms := MenuSystem{}
	w.AddSystem(&rs)
	w.AddSystem(&ms)

	mm.Font = &common.Font{
		URL:  "go.ttf",
		FG:   color.White,
		Size: 64,
	}
	if err := mm.Font.CreatePreloaded(); err != nil {
		log.WithError(err).Fatal("Unable to create font")
	}

	x := engo.GameWidth()/2 - 200
	title := newText(mm.Font, mm.Title, engo.Point{X: x, Y: 60})
	start := newText(mm.Font, "Start", engo.Point{X: x, Y: 300})
	exit := newText(mm.Font, "Exit", engo.Point{X: x, Y: 420})

	for _, t := range []*Text{title, start, exit} {
		rs.Add(&t.BasicEntity, &t.RenderComponent, &t.SpaceComponent)
	}

	ms.Add(start, "start", func() {
		if err := engo.SetSceneByName("Game", false); err != nil {
			log.WithError(err).Error("Unable to start game")
		}
	})
	ms.Add(exit, "exit", func() {
		engo.Exit()
	})
}

func (*MainMenuScene) Type() string { return "Menu" }

func newText(font *common.Font, s string, pos engo.Point) *Text {
	return &Text{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{
				Font: font,
				Text: s,
			},
			Scale:       engo.Point{X: 1, Y: 1},
			StartZIndex: 100,
		},
		SpaceComponent: common.SpaceComponent{
			Position: pos,
			Width:    400,
			Height:   64,
		},
	}
}
