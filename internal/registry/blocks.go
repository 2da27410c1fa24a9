package registry

import (
	"fmt"
	"image/color"

	"voxelworld/internal/world"
)

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID   world.BlockType
	Name string
	// TextureTile is the atlas tile drawn on every face, -1 for air.
	TextureTile int
	// IsSolid is metadata for collaborators such as a physics system.
	// World queries treat every non-air id as occupied.
	IsSolid bool
	// Color is the flat colour used by top-down previews.
	Color color.RGBA
}

var (
	blocks     [world.NumBlockTypes]*BlockDefinition
	blockNames = make(map[string]world.BlockType)
)

func registerBlock(def *BlockDefinition) {
	if !def.ID.Valid() {
		panic(fmt.Sprintf("registry: block %q has id %d outside the enumeration", def.Name, def.ID))
	}
	if blocks[def.ID] != nil {
		panic(fmt.Sprintf("registry: id %d registered twice", def.ID))
	}
	// Tile index equals the id for every rendered block.
	def.TextureTile = int(def.ID)
	if def.ID == world.BlockTypeAir {
		def.TextureTile = -1
	}
	blocks[def.ID] = def
	blockNames[def.Name] = def.ID
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

func init() {
	registerBlock(&BlockDefinition{ID: world.BlockTypeAir, Name: "air", Color: color.RGBA{}})
	registerBlock(&BlockDefinition{ID: world.BlockTypeGrass, Name: "grass", IsSolid: true, Color: rgb(0x5d9c3b)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeDirt, Name: "dirt", IsSolid: true, Color: rgb(0x866043)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeStone, Name: "stone", IsSolid: true, Color: rgb(0x7d7d7d)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeSand, Name: "sand", IsSolid: true, Color: rgb(0xdbd3a0)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeOakWood, Name: "oak_wood", IsSolid: true, Color: rgb(0x6b5130)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeOakLeaves, Name: "oak_leaves", IsSolid: true, Color: rgb(0x3b7a28)})

	// Fluids are rendered but not walkable.
	registerBlock(&BlockDefinition{ID: world.BlockTypeWater, Name: "water", Color: rgb(0x2f5fd0)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeLava, Name: "lava", Color: rgb(0xd4500f)})

	registerBlock(&BlockDefinition{ID: world.BlockTypeCoalOre, Name: "coal_ore", IsSolid: true, Color: rgb(0x353535)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeIronOre, Name: "iron_ore", IsSolid: true, Color: rgb(0xa88d7a)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeGoldOre, Name: "gold_ore", IsSolid: true, Color: rgb(0xf5d94a)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeDiamondOre, Name: "diamond_ore", IsSolid: true, Color: rgb(0x5decf5)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeLapisOre, Name: "lapis_ore", IsSolid: true, Color: rgb(0x1f4fa8)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeCopperOre, Name: "copper_ore", IsSolid: true, Color: rgb(0xc06c47)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeSnow, Name: "snow", IsSolid: true, Color: rgb(0xf4fbfb)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeFurnace, Name: "furnace", IsSolid: true, Color: rgb(0x5a5a5a)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeWoodPlanks, Name: "wood_planks", IsSolid: true, Color: rgb(0xa2824e)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeStoneBricks, Name: "stone_bricks", IsSolid: true, Color: rgb(0x7a7a7a)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeTNT, Name: "tnt", IsSolid: true, Color: rgb(0xdb2c2c)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeFlower, Name: "flower", IsSolid: true, Color: rgb(0xe8d53a)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeBush, Name: "bush", IsSolid: true, Color: rgb(0x4f8a2b)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeCactus, Name: "cactus", IsSolid: true, Color: rgb(0x0f7a2c)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeIce, Name: "ice", IsSolid: true, Color: rgb(0x9ec3fa)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeBrick, Name: "brick", IsSolid: true, Color: rgb(0x965a48)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeLeaves, Name: "leaves", IsSolid: true, Color: rgb(0x48a032)})
	registerBlock(&BlockDefinition{ID: world.BlockTypeGravel, Name: "gravel", IsSolid: true, Color: rgb(0x847f7e)})

	for id, def := range blocks {
		if def == nil {
			panic(fmt.Sprintf("registry: block id %d has no definition", id))
		}
	}
}

// Lookup returns the definition of id. An id outside the enumeration is a
// programming error and panics.
func Lookup(id world.BlockType) *BlockDefinition {
	if !id.Valid() {
		panic(fmt.Sprintf("registry: unregistered block id %d", id))
	}
	return blocks[id]
}

// IsSolid reports the solidity flag of id.
func IsSolid(id world.BlockType) bool {
	return Lookup(id).IsSolid
}

// TextureTile returns the atlas tile of id; ok is false for air, which is
// never rendered.
func TextureTile(id world.BlockType) (tile int, ok bool) {
	def := Lookup(id)
	return def.TextureTile, def.TextureTile >= 0
}

// Name returns the registry name of id.
func Name(id world.BlockType) string {
	return Lookup(id).Name
}

// Color returns the preview colour of id.
func Color(id world.BlockType) color.RGBA {
	return Lookup(id).Color
}

// ByName resolves a registry name such as "stone".
func ByName(name string) (world.BlockType, bool) {
	id, ok := blockNames[name]
	return id, ok
}

// All returns a copy of every definition in id order.
func All() []BlockDefinition {
	out := make([]BlockDefinition, 0, len(blocks))
	for _, def := range blocks {
		out = append(out, *def)
	}
	return out
}
