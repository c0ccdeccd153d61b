package mahjong

import "sort"

// EMeldType is the shape of a completed group.
type EMeldType int

const (
	MeldNone   EMeldType = iota
	MeldShuntsu          // run of three consecutive suit tiles
	MeldKoutsu           // triplet
	MeldKantsu           // quad, shape-equivalent to a koutsu but tagged apart
)

// Meld is a completed group. Tiles holds the canonical (sorted) members:
// three for a shuntsu, one repeated value for koutsu/kantsu.
type Meld struct {
	Type EMeldType
	Tile Tile    // lowest tile of a shuntsu, the repeated tile otherwise
	Rest [2]Tile // remaining shuntsu members, zero for koutsu/kantsu
}

func NewShuntsu(first Tile) Meld {
	return Meld{Type: MeldShuntsu, Tile: first, Rest: [2]Tile{first.Next(), first.Next().Next()}}
}

func NewKoutsu(tile Tile) Meld {
	return Meld{Type: MeldKoutsu, Tile: tile}
}

func NewKantsu(tile Tile) Meld {
	return Meld{Type: MeldKantsu, Tile: tile}
}

// CheckMeld classifies three or four tiles as a shuntsu, koutsu or kantsu.
// Input order is not trusted: the three ranks are canonicalized before the
// consecutiveness check. Returns MeldNone for out-of-range tiles, mixed
// colors, honor runs, or any other shape.
func CheckMeld(tiles []Tile) (Meld, bool) {
	for _, t := range tiles {
		if !t.IsValid() {
			return Meld{}, false
		}
	}
	switch len(tiles) {
	case 4:
		if tiles[0] == tiles[1] && tiles[0] == tiles[2] && tiles[0] == tiles[3] {
			return NewKantsu(tiles[0]), true
		}
	case 3:
		if tiles[0] == tiles[1] && tiles[0] == tiles[2] {
			return NewKoutsu(tiles[0]), true
		}
		sorted := []Tile{tiles[0], tiles[1], tiles[2]}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		if !sorted[0].IsSuit() {
			return Meld{}, false
		}
		if sorted[0].Color() != sorted[1].Color() || sorted[0].Color() != sorted[2].Color() {
			return Meld{}, false
		}
		if sorted[0].Next() == sorted[1] && sorted[1].Next() == sorted[2] {
			return NewShuntsu(sorted[0]), true
		}
	}
	return Meld{}, false
}

// Tiles expands the meld to its member tiles in canonical order.
func (m Meld) Tiles() []Tile {
	switch m.Type {
	case MeldShuntsu:
		return []Tile{m.Tile, m.Rest[0], m.Rest[1]}
	case MeldKoutsu:
		return []Tile{m.Tile, m.Tile, m.Tile}
	case MeldKantsu:
		return []Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	}
	return nil
}

func (m Meld) String() string {
	return "[" + TilesName(m.Tiles()) + "]"
}

// Taatsu is a partial run: two suit tiles either adjacent (ryanmen/penchan)
// or one rank apart (kanchan). Left < Right always.
type Taatsu struct {
	Left  Tile
	Right Tile
}

func (t Taatsu) String() string {
	return t.Left.Name() + t.Right.Name()
}

// IsKanchan reports whether the taatsu waits on its middle tile.
func (t Taatsu) IsKanchan() bool {
	return t.Left.Next() != t.Right
}
