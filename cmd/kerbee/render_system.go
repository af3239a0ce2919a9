package main

import (
	"path"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/ScottBrooks/kerbee"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// ClientSprite is the engo side of a game entity.
type ClientSprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	sheet *common.Spritesheet
	frame int
	size  engo.Point
}

// RenderSyncSystem mirrors every renderable game entity into the engo render system,
// creating and removing sprites as entities come and go.
type RenderSyncSystem struct {
	Game *kerbee.Game
	R    *common.RenderSystem

	Entities map[uint64]*ClientSprite
	seen     map[uint64]bool
	sheets   map[string]*common.Spritesheet
}

func NewRenderSyncSystem(g *kerbee.Game, rs *common.RenderSystem) *RenderSyncSystem {
	return &RenderSyncSystem{
		Game:     g,
		R:        rs,
		Entities: map[uint64]*ClientSprite{},
		seen:     map[uint64]bool{},
		sheets:   map[string]*common.Spritesheet{},
	}
}

func (*RenderSyncSystem) Priority() int          { return 80 }
func (*RenderSyncSystem) Remove(ecs.BasicEntity) {}
func (rss *RenderSyncSystem) Update(dt float32) {
	for id := range rss.seen {
		delete(rss.seen, id)
	}

	rss.Game.Each(func(r kerbee.Renderable) {
		id := r.GetBasicEntity().ID()
		rss.seen[id] = true

		cs, ok := rss.Entities[id]
		if !ok {
			cs = rss.newSprite(r)
			if cs == nil {
				return
			}
			rss.Entities[id] = cs
		}
		cs.Sync(r.GetTransform(), r.GetSprite())
	})

	for id, cs := range rss.Entities {
		if rss.seen[id] {
			continue
		}
		rss.R.Remove(cs.BasicEntity)
		delete(rss.Entities, id)
	}
}

func (rss *RenderSyncSystem) newSprite(r kerbee.Renderable) *ClientSprite {
	s := r.GetSprite()
	sheet, err := rss.sheet(s)
	if err != nil {
		log.WithError(err).WithField("texture", s.Texture).Error("Unable to load texture")
		return nil
	}

	cell := sheet.Cell(0)
	cs := &ClientSprite{
		BasicEntity: ecs.NewBasic(),
		sheet:       sheet,
		frame:       s.Frame,
		size:        engo.Point{X: cell.Width(), Y: cell.Height()},
	}
	cs.RenderComponent = common.RenderComponent{
		Drawable: sheet.Drawable(s.Frame),
		Scale:    engo.Point{X: 1, Y: 1},
		Color:    s.Tint,
	}
	cs.RenderComponent.SetZIndex(zIndex(r))
	cs.Sync(r.GetTransform(), s)

	rss.R.Add(&cs.BasicEntity, &cs.RenderComponent, &cs.SpaceComponent)
	return cs
}

func (rss *RenderSyncSystem) sheet(s *kerbee.Sprite) (*common.Spritesheet, error) {
	if sheet, ok := rss.sheets[s.Texture]; ok {
		return sheet, nil
	}
	url := path.Join("textures", s.Texture)
	tex, err := common.LoadedSprite(url)
	if err != nil {
		return nil, err
	}
	frames := s.Frames
	if frames < 1 {
		frames = 1
	}
	sheet := common.NewSpritesheetFromFile(url, int(tex.Width())/frames, int(tex.Height()))
	rss.sheets[s.Texture] = sheet
	return sheet, nil
}

// Sync copies the game transform into screen space. The game's origin is the center of the
// window with y up, engo's is the top left corner with y down.
func (cs *ClientSprite) Sync(t *kerbee.Transform, s *kerbee.Sprite) {
	if s.Frame != cs.frame {
		cs.frame = s.Frame
		cs.RenderComponent.Drawable = cs.sheet.Drawable(s.Frame)
	}
	cs.RenderComponent.Scale = engo.Point{X: t.Scale[0], Y: t.Scale[1]}
	cs.RenderComponent.Color = s.Tint

	cs.SpaceComponent.Width = cs.size.X * t.Scale[0]
	cs.SpaceComponent.Height = cs.size.Y * t.Scale[1]
	cs.SpaceComponent.Rotation = -mgl32.RadToDeg(t.Angle())
	cs.SpaceComponent.SetCenter(toScreen(t.Translation))
}

func toScreen(p mgl32.Vec3) engo.Point {
	return engo.Point{X: p[0] + engo.GameWidth()/2, Y: engo.GameHeight()/2 - p[1]}
}

func zIndex(r kerbee.Renderable) float32 {
	switch r.(type) {
	case *kerbee.Heart:
		return 20
	case *kerbee.Reticle:
		return 12
	case *kerbee.Player:
		return 11
	case *kerbee.Fireball:
		return 10
	case *kerbee.Enemy, *kerbee.Powerup:
		return 9
	}
	return 5
}
