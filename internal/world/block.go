package world

// BlockType is the id stored in every voxel. The set of ids is closed and
// known at compile time; 0 is always air.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
	BlockTypeOakWood
	BlockTypeOakLeaves
	BlockTypeWater
	BlockTypeLava
	BlockTypeCoalOre
	BlockTypeIronOre
	BlockTypeGoldOre
	BlockTypeDiamondOre
	BlockTypeLapisOre
	BlockTypeCopperOre
	BlockTypeSnow
	BlockTypeFurnace
	BlockTypeWoodPlanks
	BlockTypeStoneBricks
	BlockTypeTNT
	BlockTypeFlower
	BlockTypeBush
	BlockTypeCactus
	BlockTypeIce
	BlockTypeBrick
	BlockTypeLeaves
	BlockTypeGravel

	blockTypeCount
)

// NumBlockTypes is the size of the id space.
const NumBlockTypes = int(blockTypeCount)

// Valid reports whether b belongs to the enumeration.
func (b BlockType) Valid() bool {
	return b < blockTypeCount
}

// IsAir reports whether b is the empty block.
func (b BlockType) IsAir() bool {
	return b == BlockTypeAir
}

// BlockFace identifies a face of a block by its outward axis.
type BlockFace int

const (
	FaceEast   BlockFace = iota // +X
	FaceWest                    // -X
	FaceTop                     // +Y
	FaceBottom                  // -Y
	FaceNorth                   // +Z
	FaceSouth                   // -Z
)

// Faces lists every face in emission order.
var Faces = [6]BlockFace{FaceEast, FaceWest, FaceTop, FaceBottom, FaceNorth, FaceSouth}

// Normal returns the unit outward normal of the face.
func (f BlockFace) Normal() [3]int {
	switch f {
	case FaceEast:
		return [3]int{1, 0, 0}
	case FaceWest:
		return [3]int{-1, 0, 0}
	case FaceTop:
		return [3]int{0, 1, 0}
	case FaceBottom:
		return [3]int{0, -1, 0}
	case FaceNorth:
		return [3]int{0, 0, 1}
	case FaceSouth:
		return [3]int{0, 0, -1}
	}
	panic("world: invalid block face")
}
