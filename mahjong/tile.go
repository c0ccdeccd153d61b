package mahjong

import (
	"strconv"
	"strings"
)

// Tile identifies one of the 34 tile kinds. The encoding keeps the color in
// the high bits so that plain integer comparison orders tiles by
// (color, point), which every analyzer relies on.
type Tile int32

const tileIDStep = 0x10

var (
	TileNull Tile = -1
	TileInf  Tile = MakeTile(ColorEnd, 0)
)

var colorRunes = [ColorEnd]byte{'m', 'p', 's', 'z'}

var runeToColor = map[byte]EColor{
	'm': ColorCharacter,
	'p': ColorDot,
	's': ColorBamboo,
	'z': ColorHonor,
}

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | 1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

// Point is 0-based: "1m" has point 0, "9m" has point 8.
func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c, p := t.Info()
	return c >= ColorBegin && c < ColorEnd && p >= 0 && p < PointCountByColor[c]
}

func (t Tile) IsSuit() bool { // numbered tile
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorBamboo
}

func (t Tile) IsHonor() bool {
	return t.IsValid() && t.Color() == ColorHonor
}

// IsYaochuu reports whether t is a terminal or an honor, the valid set of
// the kokushimusou pattern.
func (t Tile) IsYaochuu() bool {
	if t.IsHonor() {
		return true
	}
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

// Next returns the tile one rank above t within the same suit, or TileNull
// at the 9 boundary and for honors. Adjacency is never defined across the
// honor color.
func (t Tile) Next() Tile {
	if !t.IsSuit() || t.Point() >= 8 {
		return TileNull
	}
	return t + tileIDStep
}

// Prev is the counterpart of Next at the 1 boundary.
func (t Tile) Prev() Tile {
	if !t.IsSuit() || t.Point() <= 0 {
		return TileNull
	}
	return t - tileIDStep
}

func (t Tile) Name() string {
	if !t.IsValid() {
		return "??"
	}
	c, p := t.Info()
	return strconv.Itoa(p+1) + string(colorRunes[c])
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

// ParseTile parses a single "5m"/"7z" style name.
func ParseTile(name string) Tile {
	if len(name) != 2 {
		return TileNull
	}
	color, ok := runeToColor[name[1]]
	if !ok {
		return TileNull
	}
	num := int(name[0] - '0')
	if num < 1 || num > PointCountByColor[color] {
		return TileNull
	}
	return MakeTile(color, num-1)
}

// AllTiles returns every tile kind in ascending order.
func AllTiles() []Tile {
	res := make([]Tile, 0, TileKindCount)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			res = append(res, MakeTile(c, p))
		}
	}
	return res
}

// YaochuuTiles returns the fixed 13-element ordered set of terminals and
// honors.
func YaochuuTiles() []Tile {
	return []Tile{
		MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
		MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
		MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
		MakeTile(ColorHonor, 0), MakeTile(ColorHonor, 1),
		MakeTile(ColorHonor, 2), MakeTile(ColorHonor, 3),
		MakeTile(ColorHonor, 4), MakeTile(ColorHonor, 5),
		MakeTile(ColorHonor, 6),
	}
}

// TilesName renders the tiles back-to-back in mpsz style: "1m2m3m".
func TilesName(tiles []Tile) string {
	var sb strings.Builder
	for _, tile := range tiles {
		sb.WriteString(tile.Name())
	}
	return sb.String()
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}
