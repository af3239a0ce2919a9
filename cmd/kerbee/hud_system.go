package main

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/ScottBrooks/kerbee"
	log "github.com/sirupsen/logrus"
)

// PlayerHitMessage is dispatched on the engo mailbox each time the player loses health.
type PlayerHitMessage struct {
	HP int
}

func (PlayerHitMessage) Type() string { return "PlayerHitMessage" }

type HudElement struct {
	Text
	Offset engo.Point
}

// HudSystem draws the status line in the top right corner of the window.
type HudSystem struct {
	Game *kerbee.Game
	Font *common.Font

	Status HudElement
	hp     int
	attack string
	dead   bool
}

func NewHudSystem(g *kerbee.Game, rs *common.RenderSystem, font *common.Font) *HudSystem {
	hs := &HudSystem{Game: g, Font: font, hp: g.HP(), attack: g.Attack().Name()}
	hs.Status = HudElement{
		Text: Text{
			BasicEntity: ecs.NewBasic(),
			RenderComponent: common.RenderComponent{
				Drawable: common.Text{Font: font, Text: hs.status()},
				Scale:    engo.Point{X: 1, Y: 1},
			},
			SpaceComponent: common.SpaceComponent{Width: 300, Height: 30},
		},
		Offset: engo.Point{X: -320, Y: 12},
	}
	hs.Status.RenderComponent.SetZIndex(100)
	rs.Add(&hs.Status.BasicEntity, &hs.Status.RenderComponent, &hs.Status.SpaceComponent)

	engo.Mailbox.Listen(PlayerHitMessage{}.Type(), func(msg engo.Message) {
		m, ok := msg.(PlayerHitMessage)
		if !ok {
			return
		}
		hs.hp = m.HP
		if m.HP <= 0 && !hs.dead {
			hs.dead = true
			log.Info("Game over")
		}
		hs.refresh()
	})
	return hs
}

func (*HudSystem) Priority() int          { return 70 }
func (*HudSystem) Remove(ecs.BasicEntity) {}
func (hs *HudSystem) Update(dt float32) {
	if a := hs.Game.Attack().Name(); a != hs.attack {
		hs.attack = a
		hs.refresh()
	}

	pos := engo.Point{X: engo.GameWidth(), Y: 0}
	pos.Add(hs.Status.Offset)
	hs.Status.SpaceComponent.Position = pos
}

func (hs *HudSystem) refresh() {
	hs.Status.RenderComponent.Drawable = common.Text{Font: hs.Font, Text: hs.status()}
}

func (hs *HudSystem) status() string {
	if hs.dead {
		return fmt.Sprintf("GAME OVER  attack: %s", hs.attack)
	}
	return fmt.Sprintf("HP: %d  attack: %s", hs.hp, hs.attack)
}
