package picking

import "blockfield/craft/world"

// Button is a pointer button number as reported by the host.
type Button int

const (
	ButtonLeft  Button = 1
	ButtonRight Button = 3
)

// Sounds plays named cues. sound.Gate satisfies it.
type Sounds interface {
	Play(cue string, volume float64) bool
}

// Outcome describes what a click did.
type Outcome struct {
	Changed int    // cells written
	Cue     string // cue requested, "" for none
}

// Interactor applies clicks on picked voxels: the left button breaks, the
// right button places the last broken block type on top of the target.
type Interactor struct {
	Grid      *world.Grid
	Sounds    Sounds
	Placeable world.Block
}

func NewInteractor(g *world.Grid, s Sounds) *Interactor {
	return &Interactor{Grid: g, Sounds: s, Placeable: world.Grass}
}

// Click handles button b on cell c. Clicks on empty or out-of-range cells do
// nothing.
func (in *Interactor) Click(b Button, c world.Coord) Outcome {
	switch b {
	case ButtonLeft:
		return in.breakAt(c)
	case ButtonRight:
		return in.placeOn(c)
	}
	return Outcome{}
}

func (in *Interactor) breakAt(c world.Coord) Outcome {
	target := in.Grid.At(c)
	if !target.Breakable() {
		return Outcome{}
	}
	out := Outcome{Cue: target.Info().Break}
	if target == world.TNT {
		out.Changed = in.blast(c)
	} else {
		in.Grid.Put(c, world.Empty)
		out.Changed = 1
	}
	in.Placeable = target
	in.play(out.Cue)
	return out
}

// blast clears the 3x3x3 block around c, sparing unbreakable cells.
func (in *Interactor) blast(c world.Coord) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				p := c.Add(world.Coord{X: dx, Y: dy, Z: dz})
				if b := in.Grid.At(p); b.Solid() && b != world.Unbreakable {
					in.Grid.Put(p, world.Empty)
					n++
				}
			}
		}
	}
	return n
}

func (in *Interactor) placeOn(c world.Coord) Outcome {
	if !in.Grid.At(c).Solid() {
		return Outcome{}
	}
	up := c.Above()
	if !in.Grid.InBounds(up.X, up.Y, up.Z) || in.Grid.At(up).Solid() {
		return Outcome{}
	}
	in.Grid.Put(up, in.Placeable)
	out := Outcome{Changed: 1, Cue: in.Placeable.Info().Place}
	in.play(out.Cue)
	return out
}

func (in *Interactor) play(cue string) {
	if in.Sounds != nil && cue != "" {
		in.Sounds.Play(cue, 1)
	}
}
