package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Options carries the optional collaborators of the wait analysis.
type Options struct {
	// Yama, when set, clamps remaining counts to the true unseen pool
	// instead of only "4 minus copies visible in this hand".
	Yama *mahjong.Haiyama
	// Sutehai is the holder's own discard river; any wait tile found in
	// it marks the condition furiten.
	Sutehai []mahjong.Tile
}

// Condition is the wait set reached by discarding Sutehai. For waiting
// posture hands (3k+1 concealed tiles) Sutehai is TileNull: nothing is
// discarded, the hand simply waits.
type Condition struct {
	Sutehai  mahjong.Tile
	Machihai map[mahjong.Tile]int
	Furiten  bool

	shanten   int
	haiNumber int
}

func newCondition(sutehai mahjong.Tile, shanten, haiNumber int) *Condition {
	return &Condition{
		Sutehai:   sutehai,
		Machihai:  make(map[mahjong.Tile]int),
		shanten:   shanten,
		haiNumber: haiNumber,
	}
}

// Nokori is the total number of wait tiles still available.
func (c *Condition) Nokori() int {
	return lo.Sum(lo.Values(c.Machihai))
}

// Tiles returns the wait tiles in ascending order.
func (c *Condition) Tiles() []mahjong.Tile {
	tiles := lo.Keys(c.Machihai)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return tiles
}

func (c *Condition) String() string {
	var sb strings.Builder
	if c.Sutehai != mahjong.TileNull {
		fmt.Fprintf(&sb, "dahai %s -> ", c.Sutehai.Name())
	}
	sb.WriteString("machi")
	for _, tile := range c.Tiles() {
		fmt.Fprintf(&sb, " %s", tile.Name())
	}
	fmt.Fprintf(&sb, " | nokori %d", c.Nokori())
	if c.Furiten {
		sb.WriteString(" furiten")
	}
	return sb.String()
}

// Analyze computes the shanten number of the hand and, unless it is
// already complete, the wait condition for every admissible discard.
// Results are ordered by descending remaining-tile total, ties by
// ascending discard tile.
func Analyze(tehai *mahjong.Tehai, opts *Options) (int, []*Condition, error) {
	if opts == nil {
		opts = &Options{}
	}
	if tehai == nil {
		return 0, nil, fmt.Errorf("%w: nil tehai", mahjong.ErrHandShape)
	}
	if len(tehai.Menzen)%3 == 1 {
		return waitingAnalysis(tehai, opts)
	}

	shanten, decomposers, err := Calculate(tehai)
	if err != nil {
		return 0, nil, err
	}
	if shanten == -1 {
		return shanten, nil, nil
	}

	var conditions []*Condition

	sutehaiSet := make(map[mahjong.Tile]struct{})
	for _, d := range decomposers {
		for _, ukihai := range d.Ukihai {
			sutehaiSet[ukihai] = struct{}{}
		}
		// A chiitoitsu decomposition without floating tiles still has to
		// give something up: any of its lone valid tiles.
		if d.Hourakei == Chiitoitsu && len(d.Ukihai) == 0 {
			for _, tile := range d.Valid {
				sutehaiSet[tile] = struct{}{}
			}
		}
	}

	sutehaiList := lo.Keys(sutehaiSet)
	sort.Slice(sutehaiList, func(i, j int) bool { return sutehaiList[i] < sutehaiList[j] })

	// Conditions are independent of each other; build them in parallel.
	results := make([]*Condition, len(sutehaiList))
	g := new(errgroup.Group)
	for i, sutehai := range sutehaiList {
		g.Go(func() error {
			cond := newCondition(sutehai, shanten, len(tehai.Menzen))
			for _, d := range decomposers {
				if err := cond.handle(d); err != nil {
					return err
				}
			}
			cond.finallyHandle(tehai, opts)
			results[i] = cond
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	for _, cond := range results {
		if cond.Nokori() > 0 {
			conditions = append(conditions, cond)
		}
	}
	sortConditions(conditions)
	return shanten, conditions, nil
}

func sortConditions(conditions []*Condition) {
	sort.Slice(conditions, func(i, j int) bool {
		ln, rn := conditions[i].Nokori(), conditions[j].Nokori()
		if ln == rn {
			return conditions[i].Sutehai < conditions[j].Sutehai
		}
		return ln > rn
	})
}

// waitingAnalysis handles a 3k+1 hand by trying every tile kind against
// the shanten engine. The hand's own distance is one above the best draw,
// and the waits are exactly the kinds achieving that best draw. This is
// how chiitoitsu and kokushimusou stay visible for 13-tile hands even
// though the evaluators themselves only accept 14 concealed tiles.
func waitingAnalysis(tehai *mahjong.Tehai, opts *Options) (int, []*Condition, error) {
	if err := tehai.Validate(); err != nil {
		return 0, nil, err
	}

	best := rejectedShanten
	machi := make(map[mahjong.Tile]struct{})
	trial := tehai.Clone()
	for _, tile := range mahjong.AllTiles() {
		if tehai.VisibleCount(tile) >= mahjong.SameTileCount {
			continue
		}
		trial.Menzen = append(trial.Menzen[:len(tehai.Menzen)], tile)
		sort.Slice(trial.Menzen, func(i, j int) bool { return trial.Menzen[i] < trial.Menzen[j] })
		got, _, err := Calculate(trial)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case got < best:
			best = got
			machi = map[mahjong.Tile]struct{}{tile: {}}
		case got == best:
			machi[tile] = struct{}{}
		}
		copy(trial.Menzen, tehai.Menzen)
		trial.Menzen = trial.Menzen[:len(tehai.Menzen)]
	}
	if len(machi) == 0 {
		return 0, nil, fmt.Errorf("%w: no draw improves %d tiles", ErrInternal, len(tehai.Menzen))
	}

	shanten := best + 1
	cond := newCondition(mahjong.TileNull, shanten, len(tehai.Menzen))
	for tile := range machi {
		cond.Machihai[tile] = mahjong.SameTileCount
	}
	cond.finallyHandle(tehai, opts)
	if cond.Nokori() == 0 {
		return shanten, nil, nil
	}
	return shanten, []*Condition{cond}, nil
}

// handle folds one minimal decomposition into the wait set of this
// condition. Tiles are inserted with the full SameTileCount; visibility
// corrections happen once in finallyHandle.
func (c *Condition) handle(d *Decomposer) error {
	if c.shanten < -1 {
		return fmt.Errorf("%w: shanten number is %d", ErrInternal, c.shanten)
	}
	if c.shanten == -1 {
		return nil
	}

	// Decompositions that would not discard this candidate say nothing
	// about it. Chiitoitsu also gives up lone valid tiles.
	if !containsTile(d.Ukihai, c.Sutehai) {
		if d.Hourakei != Chiitoitsu || !containsTile(d.Valid, c.Sutehai) {
			return nil
		}
	}

	switch d.Hourakei {
	case Mentsute:
		return c.handleMentsute(d)
	case Chiitoitsu:
		c.handleChiitoitsu(d)
	case Kokushimusou:
		c.handleKokushimusou(d)
	}
	return nil
}

func (c *Condition) handleMentsute(d *Decomposer) error {
	limit := (c.haiNumber + 1) / 3

	// Overloaded shapes contribute nothing: their surplus taatsu or
	// toitsu already exceed the number of groups the hand can hold.
	if len(d.Mentsu)+len(d.Taatsu) > limit-1 {
		return nil
	}
	if len(d.Mentsu)+len(d.Taatsu)+len(d.Toitsu) > limit {
		return nil
	}

	for _, taatsu := range d.Taatsu {
		if taatsu.IsKanchan() {
			machi := taatsu.Left.Next()
			if machi == mahjong.TileNull {
				return fmt.Errorf("%w: no tile between %s and %s",
					ErrInternal, taatsu.Left.Name(), taatsu.Right.Name())
			}
			c.insert(machi)
		} else {
			if machi := taatsu.Left.Prev(); machi != mahjong.TileNull {
				c.insert(machi)
			}
			if machi := taatsu.Right.Next(); machi != mahjong.TileNull {
				c.insert(machi)
			}
		}
	}

	// Every pair beyond the structural minimum can still grow into a
	// triplet.
	if len(d.Toitsu) > 1 {
		for _, toitsu := range d.Toitsu {
			c.insert(toitsu)
		}
	}

	// Short of group-equivalents: any other floating tile helps, and if
	// even partial shapes are short, so do its flanking tiles.
	if len(d.Mentsu)+len(d.Taatsu)+len(d.Toitsu) < limit {
		for _, toitsu := range d.Toitsu {
			c.insert(toitsu)
		}
		for _, ukihai := range d.Ukihai {
			if ukihai == c.Sutehai {
				continue
			}
			c.insert(ukihai)
			if len(d.Mentsu)+len(d.Taatsu) < limit-1 && ukihai.IsSuit() {
				if machi := ukihai.Prev(); machi != mahjong.TileNull {
					c.insert(machi)
					if machi2 := machi.Prev(); machi2 != mahjong.TileNull {
						c.insert(machi2)
					}
				}
				if machi := ukihai.Next(); machi != mahjong.TileNull {
					c.insert(machi)
					if machi2 := machi.Next(); machi2 != mahjong.TileNull {
						c.insert(machi2)
					}
				}
			}
		}
	}
	return nil
}

func (c *Condition) handleChiitoitsu(d *Decomposer) {
	if len(d.Toitsu)+len(d.Valid) >= 7 {
		// Enough distinct values: each remaining lone tile waits on its
		// own pair.
		for _, tile := range d.Valid {
			if tile != c.Sutehai {
				c.insert(tile)
			}
		}
		return
	}
	// Still short of distinct values: any kind not already paired helps.
	paired := make(map[mahjong.Tile]struct{}, len(d.Toitsu))
	for _, toitsu := range d.Toitsu {
		paired[toitsu] = struct{}{}
	}
	for _, tile := range mahjong.AllTiles() {
		if _, ok := paired[tile]; !ok {
			c.insert(tile)
		}
	}
}

func (c *Condition) handleKokushimusou(d *Decomposer) {
	pair := false
	for i := 1; i < len(d.Valid); i++ {
		if d.Valid[i] == d.Valid[i-1] {
			pair = true
			break
		}
	}
	if !pair {
		// Without the duplicate, every yaochuu still improves the hand.
		for _, tile := range mahjong.YaochuuTiles() {
			c.insert(tile)
		}
		return
	}
	for _, tile := range mahjong.YaochuuTiles() {
		if !containsTile(d.Valid, tile) {
			c.insert(tile)
		}
	}
}

func (c *Condition) insert(tile mahjong.Tile) {
	c.Machihai[tile] = mahjong.SameTileCount
}

// finallyHandle corrects the optimistic SameTileCount inserts: one copy
// off per tile visible in the hand itself, then a clamp to the wall when
// a haiyama is supplied. Waits with nothing left are dropped.
func (c *Condition) finallyHandle(tehai *mahjong.Tehai, opts *Options) {
	for tile := range c.Machihai {
		count := c.Machihai[tile] - tehai.VisibleCount(tile)
		if opts.Yama != nil {
			count = min(count, opts.Yama.Remaining(tile))
		}
		if count <= 0 {
			delete(c.Machihai, tile)
			continue
		}
		c.Machihai[tile] = count
	}
	for _, discarded := range opts.Sutehai {
		if _, ok := c.Machihai[discarded]; ok {
			c.Furiten = true
			break
		}
	}
}
