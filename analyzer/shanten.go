package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
)

// Hourakei is the completion pattern a decomposition serves.
type Hourakei int

const (
	Mentsute     Hourakei = iota // four groups + one pair
	Chiitoitsu                   // seven distinct pairs
	Kokushimusou                 // one of each yaochuu plus a duplicate
)

func (h Hourakei) String() string {
	switch h {
	case Mentsute:
		return "mentsute"
	case Chiitoitsu:
		return "chiitoitsu"
	case Kokushimusou:
		return "kokushimusou"
	}
	return "unknown"
}

// rejectedShanten is the sentinel for decompositions the standard
// evaluator refuses outright (a tile value counted as two pairs).
const rejectedShanten = 13

// Decomposer is one full partition of the concealed tiles, tagged by
// pattern. Valid carries the pattern-specific tiles: chiitoitsu lone
// tiles that could still pair up, or the collected kokushimusou set.
// A Decomposer is a pure value, never mutated after emission.
type Decomposer struct {
	Hourakei Hourakei
	Mentsu   []mahjong.Meld
	Toitsu   []mahjong.Tile
	Taatsu   []mahjong.Taatsu
	Ukihai   []mahjong.Tile
	Valid    []mahjong.Tile
}

func (d *Decomposer) clone() *Decomposer {
	c := &Decomposer{Hourakei: d.Hourakei}
	if len(d.Mentsu) > 0 {
		c.Mentsu = append(make([]mahjong.Meld, 0, len(d.Mentsu)), d.Mentsu...)
	}
	if len(d.Toitsu) > 0 {
		c.Toitsu = append(make([]mahjong.Tile, 0, len(d.Toitsu)), d.Toitsu...)
	}
	if len(d.Taatsu) > 0 {
		c.Taatsu = append(make([]mahjong.Taatsu, 0, len(d.Taatsu)), d.Taatsu...)
	}
	if len(d.Ukihai) > 0 {
		c.Ukihai = append(make([]mahjong.Tile, 0, len(d.Ukihai)), d.Ukihai...)
	}
	if len(d.Valid) > 0 {
		c.Valid = append(make([]mahjong.Tile, 0, len(d.Valid)), d.Valid...)
	}
	return c
}

// TileCount is the number of concealed tiles this decomposition accounts
// for; it must always equal the menzen size it was built from.
func (d *Decomposer) TileCount() int {
	n := 0
	for _, m := range d.Mentsu {
		n += len(m.Tiles())
	}
	n += 2*len(d.Toitsu) + 2*len(d.Taatsu) + len(d.Ukihai) + len(d.Valid)
	return n
}

// key is the structural identity used for deduplication. Lists are built
// in ascending tile order by every producer, so ordering is canonical.
func (d *Decomposer) key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "h%d", d.Hourakei)
	sb.WriteByte('|')
	for _, m := range d.Mentsu {
		fmt.Fprintf(&sb, "m%d:%d;", m.Type, m.Tile)
	}
	sb.WriteByte('|')
	for _, t := range d.Toitsu {
		fmt.Fprintf(&sb, "%d;", t)
	}
	sb.WriteByte('|')
	for _, t := range d.Taatsu {
		fmt.Fprintf(&sb, "%d-%d;", t.Left, t.Right)
	}
	sb.WriteByte('|')
	for _, t := range d.Ukihai {
		fmt.Fprintf(&sb, "%d;", t)
	}
	sb.WriteByte('|')
	for _, t := range d.Valid {
		fmt.Fprintf(&sb, "%d;", t)
	}
	return sb.String()
}

// ShantenNumber evaluates the distance of this decomposition for a hand
// of haiNumber concealed tiles. -1 means complete.
func (d *Decomposer) ShantenNumber(haiNumber int) int {
	switch d.Hourakei {
	case Mentsute:
		seen := make(map[mahjong.Tile]struct{}, len(d.Toitsu))
		for _, t := range d.Toitsu {
			if _, dup := seen[t]; dup {
				// One tile value must not be counted as two pairs.
				return rejectedShanten
			}
			seen[t] = struct{}{}
		}

		limit := (haiNumber + 1) / 3
		taatsuNum := min(limit-1-len(d.Mentsu), len(d.Taatsu))
		taatsuNum = max(taatsuNum, 0)
		toitsuNum := min(limit-len(d.Mentsu)-taatsuNum, len(d.Toitsu))
		toitsuNum = max(toitsuNum, 0)
		return (haiNumber/3)*2 - 2*len(d.Mentsu) - taatsuNum - toitsuNum
	case Chiitoitsu:
		return 13 - 2*len(d.Toitsu) - min(len(d.Valid), 7-len(d.Toitsu))
	case Kokushimusou:
		return 13 - len(d.Valid)
	}
	return rejectedShanten
}

func (d *Decomposer) String() string {
	var parts []string
	parts = append(parts, d.Hourakei.String())
	if len(d.Mentsu) > 0 {
		var ms []string
		for _, m := range d.Mentsu {
			ms = append(ms, m.String())
		}
		parts = append(parts, "mentsu:"+strings.Join(ms, " "))
	}
	if len(d.Toitsu) > 0 {
		parts = append(parts, "toitsu:"+mahjong.TilesName(d.Toitsu))
	}
	if len(d.Taatsu) > 0 {
		var ts []string
		for _, t := range d.Taatsu {
			ts = append(ts, t.String())
		}
		parts = append(parts, "taatsu:"+strings.Join(ts, " "))
	}
	if len(d.Valid) > 0 {
		parts = append(parts, "valid:"+mahjong.TilesName(d.Valid))
	}
	if len(d.Ukihai) > 0 {
		parts = append(parts, "ukihai:"+mahjong.TilesName(d.Ukihai))
	}
	return strings.Join(parts, " ")
}

// collector keeps every decomposition achieving the running minimum
// distance, deduplicated by structural identity.
type collector struct {
	haiNumber int
	minimum   int
	set       map[string]*Decomposer
}

func newCollector(haiNumber int) *collector {
	return &collector{
		haiNumber: haiNumber,
		minimum:   (haiNumber / 3) * 2,
		set:       make(map[string]*Decomposer),
	}
}

func (c *collector) push(d *Decomposer) {
	n := d.ShantenNumber(c.haiNumber)
	switch {
	case n < c.minimum:
		c.minimum = n
		c.set = map[string]*Decomposer{d.key(): d}
	case n == c.minimum:
		c.set[d.key()] = d
	}
}

func (c *collector) decomposers() []*Decomposer {
	keys := make([]string, 0, len(c.set))
	for k := range c.set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]*Decomposer, 0, len(keys))
	for _, k := range keys {
		res = append(res, c.set[k])
	}
	return res
}

// Calculate runs every applicable pattern evaluator over the hand and
// returns the minimal shanten number together with all decompositions
// achieving it. The concealed size must be 3k+1 or 3k+2; chiitoitsu and
// kokushimusou are considered only for 14 concealed tiles with no fuuro.
func Calculate(tehai *mahjong.Tehai) (int, []*Decomposer, error) {
	if tehai == nil {
		return 0, nil, fmt.Errorf("%w: nil tehai", mahjong.ErrHandShape)
	}
	if err := tehai.Validate(); err != nil {
		return 0, nil, err
	}

	menzen := make([]mahjong.Tile, len(tehai.Menzen))
	copy(menzen, tehai.Menzen)
	sort.Slice(menzen, func(i, j int) bool { return menzen[i] < menzen[j] })

	col := newCollector(len(menzen))
	split(menzen, &Decomposer{Hourakei: Mentsute}, col)

	if len(menzen) == 14 && len(tehai.Fuuro) == 0 {
		col.push(splitChiitoitsu(menzen))
		col.push(splitKokushimusou(menzen))
	}

	if col.minimum < -1 {
		return 0, nil, fmt.Errorf("%w: shanten number %d below floor", ErrInternal, col.minimum)
	}
	if len(col.set) == 0 {
		return 0, nil, fmt.Errorf("%w: no decomposition for %d tiles", ErrInternal, len(menzen))
	}
	return col.minimum, col.decomposers(), nil
}

// split is the exhaustive standard-pattern search. Every recursive branch
// receives owned copies of both the remaining multiset and the partial
// decomposition, so sibling branches never observe tentative state. Each
// branch strictly shrinks the remainder, which bounds the recursion.
func split(menzen []mahjong.Tile, d *Decomposer, col *collector) {
	if len(menzen) <= 1 {
		leaf := d.clone()
		if len(menzen) == 1 {
			leaf.Ukihai = append(leaf.Ukihai, menzen[0])
		}
		col.push(leaf)
		return
	}

	current, next := menzen[0], menzen[1]

	if current == next {
		nd := d.clone()
		nd.Toitsu = append(nd.Toitsu, current)
		split(removeTiles(menzen, current, current), nd, col)

		if len(menzen) > 2 && menzen[2] == current {
			nd := d.clone()
			nd.Mentsu = append(nd.Mentsu, mahjong.NewKoutsu(current))
			split(removeTiles(menzen, current, current, current), nd, col)
		}
	}

	// Quads are never formed here; kantsu only arrive as declared fuuro.
	if current.IsSuit() {
		if plusOne := current.Next(); plusOne != mahjong.TileNull {
			plusTwo := plusOne.Next()
			if containsTile(menzen, plusOne) {
				nd := d.clone()
				nd.Taatsu = append(nd.Taatsu, mahjong.Taatsu{Left: current, Right: plusOne})
				split(removeTiles(menzen, current, plusOne), nd, col)

				if plusTwo != mahjong.TileNull && containsTile(menzen, plusTwo) {
					nd := d.clone()
					nd.Mentsu = append(nd.Mentsu, mahjong.NewShuntsu(current))
					split(removeTiles(menzen, current, plusOne, plusTwo), nd, col)
				}
			} else if plusTwo != mahjong.TileNull && containsTile(menzen, plusTwo) {
				// Kanchan: the middle tile is missing.
				nd := d.clone()
				nd.Taatsu = append(nd.Taatsu, mahjong.Taatsu{Left: current, Right: plusTwo})
				split(removeTiles(menzen, current, plusTwo), nd, col)
			}
		}
	}

	// The floating branch is taken unconditionally: locally wasteful
	// shapes can still be part of the global minimum.
	nd := d.clone()
	nd.Ukihai = append(nd.Ukihai, current)
	split(removeTiles(menzen, current), nd, col)
}

// splitChiitoitsu scans the sorted 14-tile menzen once: the first
// duplicate of a run becomes the pair, further duplicates are useless
// excess, singletons stay valid lone tiles.
func splitChiitoitsu(menzen []mahjong.Tile) *Decomposer {
	d := &Decomposer{Hourakei: Chiitoitsu}
	last := menzen[0]
	lastUsed := false
	for _, cur := range menzen[1:] {
		if cur == last {
			if !lastUsed {
				lastUsed = true
				d.Toitsu = append(d.Toitsu, cur)
			} else {
				d.Ukihai = append(d.Ukihai, cur)
			}
		} else {
			if !lastUsed {
				d.Valid = append(d.Valid, last)
			}
			last = cur
			lastUsed = false
		}
	}
	if !lastUsed {
		d.Valid = append(d.Valid, last)
	}
	return d
}

// splitKokushimusou walks the sorted menzen against the fixed yaochuu set
// in merge fashion. The first copy of each yaochuu counts, one duplicate
// counts as the pair-completing copy, everything else floats.
func splitKokushimusou(menzen []mahjong.Tile) *Decomposer {
	d := &Decomposer{Hourakei: Kokushimusou}
	yaochuu := mahjong.YaochuuTiles()

	toitsuIncluded := false
	yaochuuChanged := true
	yi, mi := 0, 0
	for yi < len(yaochuu) && mi < len(menzen) {
		lhs, rhs := yaochuu[yi], menzen[mi]
		switch {
		case lhs < rhs:
			yi++
			yaochuuChanged = true
		case lhs > rhs:
			d.Ukihai = append(d.Ukihai, rhs)
			mi++
		default:
			if yaochuuChanged {
				d.Valid = append(d.Valid, rhs)
			} else if !toitsuIncluded {
				toitsuIncluded = true
				d.Valid = append(d.Valid, rhs)
			} else {
				d.Ukihai = append(d.Ukihai, rhs)
			}
			yaochuuChanged = false
			mi++
		}
	}
	return d
}

func containsTile(tiles []mahjong.Tile, tile mahjong.Tile) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}

// removeTiles returns a copy of tiles with one occurrence of each given
// tile removed.
func removeTiles(tiles []mahjong.Tile, drop ...mahjong.Tile) []mahjong.Tile {
	res := make([]mahjong.Tile, 0, len(tiles))
	res = append(res, tiles...)
	for _, d := range drop {
		for i, t := range res {
			if t == d {
				res = append(res[:i], res[i+1:]...)
				break
			}
		}
	}
	return res
}
