package mahjong

import "fmt"

// Haiyama tracks how many copies of each tile kind are still unseen. It is
// the optional visibility collaborator of the wait analyzer: every tile a
// player can see (own hand, discards, other players' melds) is taken out.
type Haiyama struct {
	counts map[Tile]int
}

// NewHaiyama builds a full wall with SameTileCount copies of every kind.
func NewHaiyama() *Haiyama {
	h := &Haiyama{counts: make(map[Tile]int, TileKindCount)}
	h.Initialize()
	return h
}

func (h *Haiyama) Initialize() {
	if h.counts == nil {
		h.counts = make(map[Tile]int, TileKindCount)
	}
	for _, tile := range AllTiles() {
		h.counts[tile] = SameTileCount
	}
}

// Remaining returns the unseen copy count for the given kind, zero for
// anything invalid.
func (h *Haiyama) Remaining(tile Tile) int {
	return h.counts[tile]
}

// RestCount is the total number of unseen tiles.
func (h *Haiyama) RestCount() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Add puts one copy back, bounded at SameTileCount.
func (h *Haiyama) Add(tile Tile) error {
	if !tile.IsValid() {
		return fmt.Errorf("%w: invalid tile %#x", ErrHaiyama, int32(tile))
	}
	if h.counts[tile] >= SameTileCount {
		return fmt.Errorf("%w: already %d %s in haiyama", ErrHaiyama, SameTileCount, tile.Name())
	}
	h.counts[tile]++
	return nil
}

// Discard takes one copy out, bounded at zero.
func (h *Haiyama) Discard(tile Tile) error {
	if !tile.IsValid() {
		return fmt.Errorf("%w: invalid tile %#x", ErrHaiyama, int32(tile))
	}
	if h.counts[tile] <= 0 {
		return fmt.Errorf("%w: no %s left in haiyama", ErrHaiyama, tile.Name())
	}
	h.counts[tile]--
	return nil
}

// ForceAdd puts one copy back without the SameTileCount bound. Rule
// variants with more copies per kind go through here.
func (h *Haiyama) ForceAdd(tile Tile) {
	h.counts[tile]++
}

func (h *Haiyama) String() string {
	out := ""
	for _, tile := range AllTiles() {
		if c := h.counts[tile]; c > 0 {
			if out != "" {
				out += " "
			}
			out += fmt.Sprintf("%s:%d", tile.Name(), c)
		}
	}
	return out
}
