package world

// Block is a block-type tag stored in a grid cell.
type Block uint8

const (
	Empty Block = iota
	Unbreakable
	Grass
	SnowyGround
	Sand
	Glass
	GoldOre
	TNT
	Wood
	Bricks
	Stone
	Snow
	CopperOre
	DiamondOre
	RubyOre
	Pumpkin
	Tree
	Coal
	Cloud

	blockCount
)

// Sound cue names. Hosts map them to asset files.
const (
	CueBackground = "background"
	CueHurt       = "hurt"

	CueStepGrass = "step_grass"
	CueStepSnow  = "step_snow"
	CueStepStone = "step_stone"
	CueStepSand  = "step_sand"
	CueStepWood  = "step_wood"

	CueBreakGrass = "break_grass"
	CueBreakSnow  = "break_snow"
	CueBreakStone = "break_stone"
	CueBreakSand  = "break_sand"
	CueBreakGlass = "break_glass"
	CueBreakWood  = "break_wood"
	CueBreakTNT   = "break_tnt"

	CuePlaceGrass = "place_grass"
	CuePlaceSnow  = "place_snow"
	CuePlaceStone = "place_stone"
	CuePlaceSand  = "place_sand"
	CuePlaceGlass = "place_glass"
	CuePlaceWood  = "place_wood"
)

// RGB is an 8-bit flat color used in place of a texture.
type RGB struct {
	R, G, B uint8
}

// Info is the static description of a block type. Empty cue strings mean
// "no sound".
type Info struct {
	Name      string
	Breakable bool
	Break     string
	Place     string
	Step      string
	Color     RGB
}

var infos = [blockCount]Info{
	Empty:       {Name: "empty"},
	Unbreakable: {Name: "unbreakable", Place: CuePlaceWood, Step: CueStepStone, Color: RGB{40, 40, 44}},
	Grass:       {Name: "grass", Breakable: true, Break: CueBreakGrass, Place: CuePlaceGrass, Step: CueStepGrass, Color: RGB{70, 160, 60}},
	SnowyGround: {Name: "snowy_ground", Breakable: true, Break: CueBreakGrass, Place: CuePlaceGrass, Step: CueStepSnow, Color: RGB{200, 215, 220}},
	Sand:        {Name: "sand", Breakable: true, Break: CueBreakSand, Place: CuePlaceSand, Step: CueStepSand, Color: RGB{220, 205, 140}},
	Glass:       {Name: "glass", Breakable: true, Break: CueBreakGlass, Place: CuePlaceGlass, Step: CueStepStone, Color: RGB{180, 225, 235}},
	GoldOre:     {Name: "gold_ore", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{200, 170, 60}},
	TNT:         {Name: "tnt", Breakable: true, Break: CueBreakTNT, Place: CuePlaceWood, Step: CueStepWood, Color: RGB{200, 50, 40}},
	Wood:        {Name: "wood", Breakable: true, Break: CueBreakWood, Place: CuePlaceWood, Step: CueStepWood, Color: RGB{160, 120, 70}},
	Bricks:      {Name: "bricks", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{150, 70, 55}},
	Stone:       {Name: "stone", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{125, 125, 135}},
	Snow:        {Name: "snow", Breakable: true, Break: CueBreakSnow, Place: CuePlaceSnow, Step: CueStepSnow, Color: RGB{245, 250, 255}},
	CopperOre:   {Name: "copper_ore", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{190, 110, 80}},
	DiamondOre:  {Name: "diamond_ore", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{100, 210, 215}},
	RubyOre:     {Name: "ruby_ore", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{180, 30, 70}},
	Pumpkin:     {Name: "pumpkin", Breakable: true, Break: CueBreakWood, Place: CuePlaceWood, Step: CueStepWood, Color: RGB{230, 130, 30}},
	Tree:        {Name: "tree", Breakable: true, Break: CueBreakWood, Place: CuePlaceWood, Step: CueStepWood, Color: RGB{105, 80, 50}},
	Coal:        {Name: "coal", Breakable: true, Break: CueBreakStone, Place: CuePlaceStone, Step: CueStepStone, Color: RGB{60, 60, 60}},
	Cloud:       {Name: "cloud", Color: RGB{255, 255, 255}},
}

// Info returns the static table entry for b. Unknown tags describe as empty.
func (b Block) Info() Info {
	if b >= blockCount {
		return infos[Empty]
	}
	return infos[b]
}

func (b Block) String() string { return b.Info().Name }

func (b Block) Solid() bool { return b != Empty }

func (b Block) Breakable() bool { return b.Info().Breakable }

// Lookup finds a block by its table name.
func Lookup(name string) (Block, bool) {
	for i := range infos {
		if infos[i].Name == name {
			return Block(i), true
		}
	}
	return Empty, false
}
