package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

// Tehai is a hand snapshot: the concealed (menzen) tiles plus the declared
// open groups (fuuro). Menzen is kept sorted; the struct is treated as
// immutable by every analyzer.
type Tehai struct {
	Menzen []Tile
	Fuuro  []Meld
}

// ParseTehai parses mpsz notation, with '[]' enclosing declared melds.
// Tiles may be out of order and spaces are ignored:
//
//	standard: 1m2m3m4m4m5m4p4p4p5p8s[1z1z1z]
//	shorter:  123445m4445p8s[111z]
//	chaos:    45p 8s14 4m[11 1z]2 5m44p 3m
//
// Only 3*k+1 or 3*k+2 concealed tiles are accepted.
func ParseTehai(s string) (*Tehai, error) {
	var (
		menzen     []Tile
		fuuro      []Meld
		digitStash []byte
		meldStash  []Tile
		onMeld     bool
	)

	flush := func(color EColor, index int) error {
		if len(digitStash) == 0 {
			return fmt.Errorf("%w: unused type character %q at index %d", ErrNotation, s[index], index)
		}
		for _, d := range digitStash {
			num := int(d - '0')
			if num < 1 || num > PointCountByColor[color] {
				return fmt.Errorf("%w: tile %d%c out of range", ErrNotation, num, s[index])
			}
			tile := MakeTile(color, num-1)
			if onMeld {
				meldStash = append(meldStash, tile)
			} else {
				menzen = append(menzen, tile)
			}
		}
		digitStash = digitStash[:0]
		return nil
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == 'm' || ch == 'p' || ch == 's' || ch == 'z':
			if err := flush(runeToColor[ch], i); err != nil {
				return nil, err
			}
		case ch >= '1' && ch <= '9':
			digitStash = append(digitStash, ch)
		case ch == '[':
			if onMeld {
				return nil, fmt.Errorf("%w: second '[' found at index %d", ErrNotation, i)
			}
			if len(digitStash) > 0 {
				return nil, fmt.Errorf("%w: need 'm' 'p' 's' 'z' but found '[' at index %d", ErrNotation, i)
			}
			onMeld = true
		case ch == ']':
			if !onMeld {
				return nil, fmt.Errorf("%w: unmatched ']' found at index %d", ErrNotation, i)
			}
			if len(digitStash) > 0 {
				return nil, fmt.Errorf("%w: need 'm' 'p' 's' 'z' but found ']' at index %d", ErrNotation, i)
			}
			meld, ok := CheckMeld(meldStash)
			if !ok {
				return nil, fmt.Errorf("%w: not a valid meld on '[]' before index %d", ErrNotation, i)
			}
			fuuro = append(fuuro, meld)
			meldStash = meldStash[:0]
			onMeld = false
		case ch == ' ':
		default:
			return nil, fmt.Errorf("%w: unknown character %q at index %d", ErrNotation, ch, i)
		}
	}
	if onMeld {
		return nil, fmt.Errorf("%w: missing ']'", ErrNotation)
	}
	if len(digitStash) > 0 {
		return nil, fmt.Errorf("%w: trailing digits without a type character", ErrNotation)
	}

	tehai := &Tehai{Menzen: menzen, Fuuro: fuuro}
	sort.Slice(tehai.Menzen, func(i, j int) bool { return tehai.Menzen[i] < tehai.Menzen[j] })
	if err := tehai.Validate(); err != nil {
		return nil, err
	}
	return tehai, nil
}

// Validate enforces the hand-shape invariants: concealed count congruent
// to 1 or 2 mod 3, total tiles within MaxHandTiles, every tile in range,
// and no tile kind exceeding its physical copy count.
func (t *Tehai) Validate() error {
	n := len(t.Menzen)
	if n%3 == 0 {
		return fmt.Errorf("%w: menzen must hold 3*k+1 or 3*k+2 tiles, got %d", ErrHandShape, n)
	}
	if n+3*len(t.Fuuro) > MaxHandTiles {
		return fmt.Errorf("%w: %d menzen tiles with %d fuuro exceeds %d total",
			ErrHandShape, n, len(t.Fuuro), MaxHandTiles)
	}
	counts := make(map[Tile]int)
	for _, tile := range t.Menzen {
		if !tile.IsValid() {
			return fmt.Errorf("%w: invalid tile %#x in menzen", ErrHandShape, int32(tile))
		}
		counts[tile]++
	}
	for _, meld := range t.Fuuro {
		for _, tile := range meld.Tiles() {
			counts[tile]++
		}
	}
	for tile, c := range counts {
		if c > SameTileCount {
			return fmt.Errorf("%w: %d copies of %s", ErrHandShape, c, tile.Name())
		}
	}
	return nil
}

// Clone returns a deep copy; analyzers branch on owned copies only.
func (t *Tehai) Clone() *Tehai {
	c := &Tehai{
		Menzen: make([]Tile, len(t.Menzen)),
		Fuuro:  make([]Meld, len(t.Fuuro)),
	}
	copy(c.Menzen, t.Menzen)
	copy(c.Fuuro, t.Fuuro)
	return c
}

// VisibleCount is how many copies of tile this hand itself exposes,
// concealed tiles and declared melds included.
func (t *Tehai) VisibleCount(tile Tile) int {
	count := 0
	for _, h := range t.Menzen {
		if h == tile {
			count++
		}
	}
	for _, meld := range t.Fuuro {
		for _, m := range meld.Tiles() {
			if m == tile {
				count++
			}
		}
	}
	return count
}

func (t *Tehai) String() string {
	var sb strings.Builder
	sb.WriteString(TilesName(t.Menzen))
	for _, meld := range t.Fuuro {
		sb.WriteByte(' ')
		sb.WriteString(meld.String())
	}
	return sb.String()
}
