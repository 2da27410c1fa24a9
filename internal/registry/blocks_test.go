package registry

import (
	"testing"

	"voxelworld/internal/world"
)

func TestEveryBlockRegistered(t *testing.T) {
	all := All()
	if len(all) != world.NumBlockTypes {
		t.Fatalf("got %d definitions, want %d", len(all), world.NumBlockTypes)
	}
	seen := make(map[string]bool)
	for i, def := range all {
		if def.ID != world.BlockType(i) {
			t.Errorf("definition %d has id %d", i, def.ID)
		}
		if def.Name == "" || seen[def.Name] {
			t.Errorf("id %d: empty or duplicate name %q", def.ID, def.Name)
		}
		seen[def.Name] = true
		if got, ok := ByName(def.Name); !ok || got != def.ID {
			t.Errorf("ByName(%q) = %d, %v", def.Name, got, ok)
		}
	}
}

func TestAirIsNotRendered(t *testing.T) {
	if IsSolid(world.BlockTypeAir) {
		t.Error("air must not be solid")
	}
	if _, ok := TextureTile(world.BlockTypeAir); ok {
		t.Error("air must have no texture tile")
	}
	if Color(world.BlockTypeAir).A != 0 {
		t.Error("air must be transparent on previews")
	}
}

func TestTextureTileMatchesID(t *testing.T) {
	for id := world.BlockType(1); int(id) < world.NumBlockTypes; id++ {
		tile, ok := TextureTile(id)
		if !ok || tile != int(id) {
			t.Errorf("TextureTile(%d) = %d, %v", id, tile, ok)
		}
	}
}

func TestSolidity(t *testing.T) {
	cases := map[world.BlockType]bool{
		world.BlockTypeStone:  true,
		world.BlockTypeGravel: true,
		world.BlockTypeWater:  false,
		world.BlockTypeLava:   false,
	}
	for id, want := range cases {
		if got := IsSolid(id); got != want {
			t.Errorf("IsSolid(%s) = %v, want %v", Name(id), got, want)
		}
	}
}

func TestLookupUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lookup of an unknown id should panic")
		}
	}()
	Lookup(world.BlockType(world.NumBlockTypes))
}
