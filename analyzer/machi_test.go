package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/analyzer"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
)

func machi(t *testing.T, cond *analyzer.Condition) map[string]int {
	t.Helper()
	out := make(map[string]int, len(cond.Machihai))
	for tile, count := range cond.Machihai {
		out[tile.Name()] = count
	}
	return out
}

func TestAnalyzeCompleteHand(t *testing.T) {
	shanten, conditions, err := analyzer.Analyze(parse(t, "123m456p789s11122z"), nil)
	assert.NoError(t, err)
	assert.Equal(t, -1, shanten)
	assert.Empty(t, conditions)
}

func TestAnalyzeTenpaiShanpon(t *testing.T) {
	shanten, conditions, err := analyzer.Analyze(parse(t, "123m456p789s11223z"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, shanten)
	assert.Len(t, conditions, 1)

	cond := conditions[0]
	assert.Equal(t, mahjong.ParseTile("3z"), cond.Sutehai)
	assert.Equal(t, map[string]int{"1z": 2, "2z": 2}, machi(t, cond))
	assert.Equal(t, 4, cond.Nokori())
	assert.False(t, cond.Furiten)
}

func TestAnalyzeChiitoitsuTenpai(t *testing.T) {
	shanten, conditions, err := analyzer.Analyze(parse(t, "1122m3344p5566s1z2z"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, shanten)
	assert.Len(t, conditions, 2)

	// Equal nokori, so the smaller discard sorts first.
	assert.Equal(t, mahjong.ParseTile("1z"), conditions[0].Sutehai)
	assert.Equal(t, map[string]int{"2z": 3}, machi(t, conditions[0]))
	assert.Equal(t, mahjong.ParseTile("2z"), conditions[1].Sutehai)
	assert.Equal(t, map[string]int{"1z": 3}, machi(t, conditions[1]))
}

func TestAnalyzeThirteenTileWaitingHand(t *testing.T) {
	shanten, conditions, err := analyzer.Analyze(parse(t, "1112223334445m"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, shanten)
	assert.Len(t, conditions, 1)

	cond := conditions[0]
	assert.Equal(t, mahjong.TileNull, cond.Sutehai)
	assert.Equal(t, map[string]int{"2m": 1, "3m": 1, "5m": 3, "6m": 4}, machi(t, cond))
	assert.Equal(t, 9, cond.Nokori())
}

func TestAnalyzeKokushiThirteenWait(t *testing.T) {
	shanten, conditions, err := analyzer.Analyze(parse(t, "19m19p19s1234567z"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, shanten)
	assert.Len(t, conditions, 1)

	cond := conditions[0]
	assert.Equal(t, mahjong.TileNull, cond.Sutehai)
	assert.Len(t, cond.Machihai, 13)
	for _, tile := range mahjong.YaochuuTiles() {
		assert.Equal(t, 3, cond.Machihai[tile], tile.Name())
	}
}

func TestAnalyzeThirteenTileDistance(t *testing.T) {
	// Three groups and four lone honors: any honor pairing up brings the
	// hand closest, so those four kinds are the effective draws.
	shanten, conditions, err := analyzer.Analyze(parse(t, "123m456p789s1234z"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, shanten)
	assert.Len(t, conditions, 1)
	assert.Equal(t, map[string]int{"1z": 3, "2z": 3, "3z": 3, "4z": 3}, machi(t, conditions[0]))
}

func TestAnalyzeFuriten(t *testing.T) {
	opts := &analyzer.Options{Sutehai: []mahjong.Tile{mahjong.ParseTile("2z")}}
	_, conditions, err := analyzer.Analyze(parse(t, "1122m3344p5566s1z2z"), opts)
	assert.NoError(t, err)
	assert.Len(t, conditions, 2)

	// Waiting on a tile in the own river is furiten; the other way is not.
	assert.Equal(t, mahjong.ParseTile("1z"), conditions[0].Sutehai)
	assert.True(t, conditions[0].Furiten)
	assert.Equal(t, mahjong.ParseTile("2z"), conditions[1].Sutehai)
	assert.False(t, conditions[1].Furiten)
}

func TestAnalyzeYamaClamping(t *testing.T) {
	yama := mahjong.NewHaiyama()
	twoZ := mahjong.ParseTile("2z")
	for i := 0; i < 3; i++ {
		assert.NoError(t, yama.Discard(twoZ))
	}

	shanten, conditions, err := analyzer.Analyze(parse(t, "1122m3344p5566s1z2z"), &analyzer.Options{Yama: yama})
	assert.NoError(t, err)
	assert.Equal(t, 0, shanten)
	assert.Len(t, conditions, 2)
	assert.Equal(t, map[string]int{"1z": 3}, machi(t, conditions[0]))
	assert.Equal(t, mahjong.ParseTile("2z"), conditions[0].Sutehai)
	assert.Equal(t, map[string]int{"2z": 1}, machi(t, conditions[1]))

	// Exhausting the wait entirely drops the condition.
	assert.NoError(t, yama.Discard(twoZ))
	_, conditions, err = analyzer.Analyze(parse(t, "1122m3344p5566s1z2z"), &analyzer.Options{Yama: yama})
	assert.NoError(t, err)
	assert.Len(t, conditions, 1)
	assert.Equal(t, mahjong.ParseTile("2z"), conditions[0].Sutehai)
}

func TestAnalyzeConditionOrdering(t *testing.T) {
	// Ordering is by descending nokori first.
	yama := mahjong.NewHaiyama()
	assert.NoError(t, yama.Discard(mahjong.ParseTile("1z")))
	assert.NoError(t, yama.Discard(mahjong.ParseTile("1z")))

	_, conditions, err := analyzer.Analyze(parse(t, "1122m3344p5566s1z2z"), &analyzer.Options{Yama: yama})
	assert.NoError(t, err)
	assert.Len(t, conditions, 2)
	assert.Equal(t, mahjong.ParseTile("1z"), conditions[0].Sutehai)
	assert.Equal(t, 3, conditions[0].Nokori())
	assert.Equal(t, 2, conditions[1].Nokori())
}

func TestAnalyzeNilTehai(t *testing.T) {
	_, _, err := analyzer.Analyze(nil, nil)
	assert.ErrorIs(t, err, mahjong.ErrHandShape)
}
