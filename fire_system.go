package kerbee

import (
	"github.com/EngoEngine/ecs"
	log "github.com/sirupsen/logrus"
)

// FireSystem fires the current attack at the reticle while an aim key is held.
// The first shot goes out on the frame the key goes down, then one per interval.
type FireSystem struct {
	Res *Resources

	timer *Timer
}

func NewFireSystem(res *Resources) *FireSystem {
	t := NewTimer(res.Config.Fireball.Interval, true)
	t.Pause()
	t.Reset()
	return &FireSystem{Res: res, timer: t}
}

func (*FireSystem) Priority() int          { return 80 }
func (*FireSystem) Remove(ecs.BasicEntity) {}
func (fs *FireSystem) Update(dt float32) {
	if !fs.timer.Tick(seconds(dt)).JustFinished() && !fs.timer.Paused() {
		return
	}

	if !fs.Res.Input.AnyPressed(AimKeys...) {
		fs.timer.Pause()
		fs.timer.Reset()
		return
	}
	fs.timer.Unpause()

	p, r := fs.Res.player, fs.Res.reticle
	if p == nil || r == nil {
		return
	}

	origin, target := p.Translation, r.Translation
	log.WithField("target", target).Debug("Fireball target")

	for _, shot := range fs.Res.Attack.Attack(origin, target) {
		fs.Res.Commands.Spawn(NewFireball(fs.Res.Config, shot))
	}
}
