// Package movement integrates the avatar: gravity, jumping, yaw-relative
// walking and collision, plus the view transform that follows it.
package movement

import (
	"math"

	"blockfield/craft/collision"
	"blockfield/craft/linalg"
	"blockfield/craft/world"

	"github.com/go-gl/mathgl/mgl64"
)

// Params are the per-frame physics constants.
type Params struct {
	Gravity  float64 // subtracted from vz each falling frame
	Terminal float64 // lower bound for vz
	Jump     float64 // vz set by a jump
	Speed    float64 // walking speed; scaled by dt/2
}

func DefaultParams() Params {
	return Params{Gravity: 0.1, Terminal: collision.DefaultTerminal, Jump: 0.75, Speed: 25}
}

// Intent is the sampled movement input for one frame.
type Intent struct {
	Forward, Back, Left, Right bool
	Jump                       bool
}

// Avatar is the player body. Pos is in the physics frame: Pos[0] and Pos[1]
// are horizontal, Pos[2] is up.
type Avatar struct {
	Pos     mgl64.Vec3
	VZ      float64
	Falling bool
	Yaw     float64
	Pitch   float64
}

// Spawn returns a falling avatar one cell above the ground at horizontal
// position (length, width).
func Spawn(length, width, ground int) Avatar {
	return Avatar{
		Pos:     mgl64.Vec3{float64(length), float64(width), float64(2*ground + 2)},
		Falling: true,
	}
}

// Look turns the avatar. Pitch stays within a quarter turn of level.
func (a *Avatar) Look(dYaw, dPitch float64) {
	a.Yaw += dYaw
	a.SetPitch(a.Pitch + dPitch)
}

func (a *Avatar) SetPitch(p float64) {
	a.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, p))
}

// Eye returns the avatar position in render space (X, Y-up, Z).
func (a *Avatar) Eye() linalg.Vec {
	return linalg.V(a.Pos[0], a.Pos[2], a.Pos[1])
}

// Camera returns the view transform Rx(pitch)·Ry(yaw)·T(-eye).
func (a *Avatar) Camera() linalg.Mat {
	return linalg.Rotation(a.Pitch, linalg.V(1, 0, 0)).
		Mul(linalg.Rotation(a.Yaw, linalg.V(0, 1, 0))).
		Mul(linalg.Translation(a.Eye().Times(-1)))
}

// Frame reports what happened during one Step.
type Frame struct {
	Moved  mgl64.Vec3
	Landed bool
	Hurt   bool
	Cues   []string
}

// Controller advances an Avatar through a grid.
type Controller struct {
	Params   Params
	Resolver *collision.Resolver
	Grid     collision.Grid
}

func NewController(g collision.Grid, p Params) *Controller {
	return &Controller{
		Params:   p,
		Resolver: &collision.Resolver{Terminal: p.Terminal},
		Grid:     g,
	}
}

// Step integrates one frame of dt seconds.
func (c *Controller) Step(a *Avatar, dt float64, in Intent) Frame {
	p := c.Params
	if a.Falling {
		a.VZ -= p.Gravity
		if a.VZ < p.Terminal {
			a.VZ = p.Terminal
		}
	}
	if in.Jump && !a.Falling {
		a.VZ = p.Jump
		a.Falling = true
	}

	vel := mgl64.Vec3{0, 0, a.VZ}
	s := p.Speed * dt / 2
	sin, cos := math.Sincos(a.Yaw)
	if in.Right {
		vel[0] += s * cos
		vel[1] += s * sin
	}
	if in.Left {
		vel[0] -= s * cos
		vel[1] -= s * sin
	}
	if in.Forward {
		vel[0] += s * sin
		vel[1] -= s * cos
	}
	if in.Back {
		vel[0] -= s * sin
		vel[1] += s * cos
	}

	res := c.Resolver.Resolve(c.Grid, a.Pos, vel)
	a.VZ = res.Velocity[2]
	a.Falling = !res.Landed

	f := Frame{Moved: res.Velocity, Landed: res.Landed, Hurt: res.Hurt}
	if res.Hurt {
		f.Cues = append(f.Cues, world.CueHurt)
	}
	if res.Velocity[0] != 0 || res.Velocity[1] != 0 {
		if cue := c.Underfoot(a).Info().Step; cue != "" {
			f.Cues = append(f.Cues, cue)
		}
	}
	a.Pos = a.Pos.Add(res.Velocity)
	return f
}

// Underfoot returns the block one cell below the avatar's body.
func (c *Controller) Underfoot(a *Avatar) world.Block {
	return c.Grid.At(world.CellOf(a.Pos[0], a.Pos[1], a.Pos[2]-world.CellSize))
}
