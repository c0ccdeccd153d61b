package mahjong

// EColor is the suit of a tile.
type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 m (manzu)
	ColorDot                         // 筒 p (pinzu)
	ColorBamboo                      // 索 s (souzu)
	ColorHonor                       // 字 z (jihai)
	ColorEnd
	ColorBegin = ColorCharacter
)

// PointCountByColor is the number of distinct points per color, points 0-based.
var PointCountByColor = [ColorEnd]int{9, 9, 9, 7}

// SameTileCount is the physical copy count of every tile kind in a full set.
const SameTileCount = 4

const (
	// TileKindCount is the number of distinct tile kinds: 3 suits * 9 + 7 honors.
	TileKindCount = 34
	// MaxHandTiles bounds menzen + 3 tiles per fuuro.
	MaxHandTiles = 14
)
