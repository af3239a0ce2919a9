package kerbee

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownAttack = errors.New("unknown attack")

// Shot is one projectile an attack wants fired.
type Shot struct {
	Origin mgl32.Vec3
	Target mgl32.Vec3
}

// Attack turns an origin and a target into the shots to fire. The set of attacks is closed:
// Basic and Split are the only implementations.
type Attack interface {
	Attack(origin, target mgl32.Vec3) []Shot
	Name() string
	attack()
}

// Basic fires one projectile straight at the target.
type Basic struct{}

func (Basic) Attack(origin, target mgl32.Vec3) []Shot {
	return []Shot{{Origin: origin, Target: target}}
}

func (Basic) Name() string { return "basic" }
func (Basic) attack()      {}

// Split fires three projectiles: two offset targets either side of the aim point, then the straight shot.
type Split struct {
	// Offset is the distance of each side target from the aim point. Zero means 10.
	Offset float32
}

func (s Split) Attack(origin, target mgl32.Vec3) []Shot {
	offset := s.Offset
	if offset == 0 {
		offset = 10
	}

	up := upAxis.Mul(100)
	raw := target.Sub(origin)
	angle := float64(angleBetween(up, raw)) + math.Pi/2

	sin, cos := math.Sincos(angle)
	diff := normalize(mgl32.Vec3{float32(cos + sin), float32(sin - cos), 0}).Mul(offset)

	left := mgl32.Vec3{target[0] + diff[0], target[1] + diff[1], 0}
	right := mgl32.Vec3{target[0] - diff[0], target[1] - diff[1], 0}

	return []Shot{
		{Origin: origin, Target: left},
		{Origin: origin, Target: right},
		{Origin: origin, Target: target},
	}
}

func (Split) Name() string { return "split" }
func (Split) attack()      {}

// AttackByName resolves a config value to an attack.
func AttackByName(name string) (Attack, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic", "":
		return Basic{}, nil
	case "split":
		return Split{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAttack, name)
}
