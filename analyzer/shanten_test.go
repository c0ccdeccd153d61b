package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/analyzer"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
)

func parse(t *testing.T, notation string) *mahjong.Tehai {
	t.Helper()
	tehai, err := mahjong.ParseTehai(notation)
	assert.NoError(t, err, notation)
	return tehai
}

func TestCalculateShantenNumbers(t *testing.T) {
	cases := []struct {
		name     string
		notation string
		shanten  int
	}{
		{"complete standard", "123m456p789s11122z", -1},
		{"complete four koutsu", "11122233344455m", -1},
		{"complete with fuuro", "123m456p11z[777z][999s]", -1},
		{"complete chiitoitsu", "1199m1199p1199s77z", -1},
		{"complete kokushimusou", "19m19p19s12345677z", -1},
		{"tenpai shanpon", "123m456p789s11223z", 0},
		{"tenpai chiitoitsu", "1122m3344p5566s1z2z", 0},
		{"one away", "123m456p789s12344z", 1},
		{"lone pair", "55m", -1},
		{"lone tile", "5m", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shanten, decomposers, err := analyzer.Calculate(parse(t, tc.notation))
			assert.NoError(t, err)
			assert.Equal(t, tc.shanten, shanten)
			assert.NotEmpty(t, decomposers)
		})
	}
}

func TestCalculatePicksPattern(t *testing.T) {
	// Seven distinct pairs complete only as chiitoitsu; the standard
	// evaluator sees them as a shanten 3 shape.
	_, decomposers, err := analyzer.Calculate(parse(t, "1199m1199p1199s77z"))
	assert.NoError(t, err)
	for _, d := range decomposers {
		assert.Equal(t, analyzer.Chiitoitsu, d.Hourakei)
	}

	_, decomposers, err = analyzer.Calculate(parse(t, "19m19p19s12345677z"))
	assert.NoError(t, err)
	for _, d := range decomposers {
		assert.Equal(t, analyzer.Kokushimusou, d.Hourakei)
	}
}

func TestCalculateGatesPatternsAt14(t *testing.T) {
	// Six pairs and a floater hold 13 tiles, so only the standard pattern
	// runs and the distance is the standard one.
	shanten, decomposers, err := analyzer.Calculate(parse(t, "1199m1199p1199s7z"))
	assert.NoError(t, err)
	assert.Equal(t, 4, shanten)
	for _, d := range decomposers {
		assert.Equal(t, analyzer.Mentsute, d.Hourakei)
	}
}

func TestDecomposersAccountForEveryTile(t *testing.T) {
	for _, notation := range []string{
		"123m456p789s11122z",
		"1122m3344p5566s1z2z",
		"19m19p19s12345677z",
		"1112223334445m",
		"123m456p11z[777z][999s]",
	} {
		tehai := parse(t, notation)
		_, decomposers, err := analyzer.Calculate(tehai)
		assert.NoError(t, err, notation)
		for _, d := range decomposers {
			assert.Equal(t, len(tehai.Menzen), d.TileCount(), "%s: %s", notation, d)
		}
	}
}

func TestDuplicateToitsuRejected(t *testing.T) {
	// A tile value split into two pairs is not a legal standard shape.
	five := mahjong.ParseTile("5p")
	d := &analyzer.Decomposer{
		Hourakei: analyzer.Mentsute,
		Toitsu:   []mahjong.Tile{five, five},
	}
	assert.Equal(t, 13, d.ShantenNumber(14))
}

func TestCalculateRejectsBadHands(t *testing.T) {
	_, _, err := analyzer.Calculate(nil)
	assert.ErrorIs(t, err, mahjong.ErrHandShape)

	_, _, err = analyzer.Calculate(&mahjong.Tehai{
		Menzen: []mahjong.Tile{
			mahjong.ParseTile("1m"), mahjong.ParseTile("2m"), mahjong.ParseTile("3m"),
		},
	})
	assert.ErrorIs(t, err, mahjong.ErrHandShape)
}
