package threads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToLabReferencePoints(t *testing.T) {
	white := RGBToLab([3]uint8{255, 255, 255})
	assert.InDelta(t, 100.0, white.L, 0.1)
	assert.InDelta(t, 0.0, white.A, 0.1)
	assert.InDelta(t, 0.0, white.B, 0.1)

	black := RGBToLab([3]uint8{0, 0, 0})
	assert.InDelta(t, 0.0, black.L, 0.1)

	// Pure red, well-known Lab coordinates.
	red := RGBToLab([3]uint8{255, 0, 0})
	assert.InDelta(t, 53.2, red.L, 0.5)
	assert.InDelta(t, 80.1, red.A, 0.5)
	assert.InDelta(t, 67.2, red.B, 0.5)
}

func TestDistanceIdenticalIsZero(t *testing.T) {
	c := [3]uint8{120, 80, 200}
	for _, alg := range []Algorithm{AlgEuclidean, AlgWeighted, AlgCIE76, AlgCIE94, AlgCIEDE2000} {
		assert.InDelta(t, 0.0, Distance(c, c, alg), 1e-9, "algorithm %s", alg)
	}
}

func TestDeltaE2000Discriminates(t *testing.T) {
	red := [3]uint8{255, 0, 0}
	green := [3]uint8{0, 255, 0}
	nearRed := [3]uint8{250, 5, 5}

	assert.Greater(t, DeltaE2000(red, green), 50.0)
	assert.Less(t, DeltaE2000(red, nearRed), 5.0)
	// Symmetric.
	assert.InDelta(t, DeltaE2000(red, green), DeltaE2000(green, red), 1e-9)
}

func TestDeltaE76MatchesLabEuclidean(t *testing.T) {
	c1 := [3]uint8{10, 200, 30}
	c2 := [3]uint8{200, 10, 90}
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)
	dl, da, db := lab1.L-lab2.L, lab1.A-lab2.A, lab1.B-lab2.B
	want := dl*dl + da*da + db*db
	got := DeltaE76(c1, c2)
	assert.InDelta(t, want, got*got, 1e-6)
}

func TestUnknownAlgorithmFallsBackToCIEDE2000(t *testing.T) {
	c1 := [3]uint8{10, 20, 30}
	c2 := [3]uint8{200, 100, 50}
	assert.Equal(t, DeltaE2000(c1, c2), Distance(c1, c2, Algorithm("bogus")))
}

func TestFindClosestExactHit(t *testing.T) {
	palette := ByBrand(BrandDMC)
	var target ThreadColor
	for _, tc := range palette {
		if tc.Code == "321" {
			target = tc
			break
		}
	}
	assert.NotEmpty(t, target.Code, "DMC 321 present in library")

	m, ok := FindClosest(target.RGB, palette, AlgCIEDE2000)
	assert.True(t, ok)
	assert.Equal(t, "321", m.Thread.Code)
	assert.InDelta(t, 0.0, m.Distance, 1e-9)
}

func TestFindClosestEmptyPalette(t *testing.T) {
	_, ok := FindClosest([3]uint8{1, 2, 3}, nil, AlgCIEDE2000)
	assert.False(t, ok)
}

func TestFindClosestNearWhite(t *testing.T) {
	m, ok := FindClosest([3]uint8{254, 253, 250}, ByBrand(BrandDMC), AlgCIEDE2000)
	assert.True(t, ok)
	// Must land on one of the whites, not a saturated color.
	lab := RGBToLab(m.Thread.RGB)
	assert.Greater(t, lab.L, 90.0)
}

func TestLibrariesNonEmptyUniqueCodes(t *testing.T) {
	for _, lib := range Libraries() {
		card := ByBrand(lib.Brand)
		assert.NotEmpty(t, card, "brand %s", lib.Brand)
		assert.Equal(t, lib.ColorCount, len(card))

		seen := make(map[string]bool, len(card))
		for _, tc := range card {
			assert.False(t, seen[tc.Code], "duplicate code %s in %s", tc.Code, lib.Brand)
			seen[tc.Code] = true
			assert.Equal(t, lib.Brand, tc.Brand)
			assert.NotEmpty(t, tc.Name)
		}
	}
}

func TestByBrandUnknownDefaultsToDMC(t *testing.T) {
	assert.Equal(t, ByBrand(BrandDMC), ByBrand(Brand("unknown")))
}

func TestAllCombinesBrands(t *testing.T) {
	total := 0
	for _, lib := range Libraries() {
		total += lib.ColorCount
	}
	assert.Len(t, All(), total)
}
