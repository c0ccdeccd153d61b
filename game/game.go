package game

import (
	"fmt"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/analyzer"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
	"github.com/sirupsen/logrus"
)

// Game holds one player's view of a round: the unseen wall, the current
// tehai and the player's own discard river. It wires the pure analyzer to
// the bookkeeping the analyzer itself stays free of.
type Game struct {
	yama    *mahjong.Haiyama
	tehai   *mahjong.Tehai
	sutehai []mahjong.Tile
	log     logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Game{
		yama: mahjong.NewHaiyama(),
		log:  log,
	}
}

// Initialize resets the wall, the tehai and the river.
func (g *Game) Initialize() *Game {
	g.yama.Initialize()
	g.tehai = nil
	g.sutehai = nil
	return g
}

func (g *Game) Tehai() *mahjong.Tehai {
	return g.tehai
}

func (g *Game) Yama() *mahjong.Haiyama {
	return g.yama
}

func (g *Game) Sutehai() []mahjong.Tile {
	return g.sutehai
}

// SetTehai parses the notation, deducts every tile of the new hand from
// the wall and gives back the previous hand's tiles if one was set.
func (g *Game) SetTehai(notation string) error {
	tehai, err := mahjong.ParseTehai(notation)
	if err != nil {
		return err
	}
	if g.tehai != nil {
		g.returnToYama(g.tehai)
	}
	if err := g.takeFromYama(tehai); err != nil {
		// Roll the old hand back out so the wall stays consistent.
		if g.tehai != nil {
			if err2 := g.takeFromYama(g.tehai); err2 != nil {
				g.log.WithError(err2).Error("failed to restore haiyama after rejected tehai")
			}
		}
		return err
	}
	g.tehai = tehai
	return nil
}

// Draw moves one tile from the wall into the concealed hand. Only a
// waiting-posture hand (3k+1 tiles) may draw.
func (g *Game) Draw(tile mahjong.Tile) error {
	if g.tehai == nil {
		return fmt.Errorf("%w: no tehai set", mahjong.ErrHandShape)
	}
	if len(g.tehai.Menzen)%3 != 1 {
		return fmt.Errorf("%w: cannot draw with %d concealed tiles", mahjong.ErrHandShape, len(g.tehai.Menzen))
	}
	next := g.tehai.Clone()
	next.Menzen = insertSorted(next.Menzen, tile)
	if err := next.Validate(); err != nil {
		return err
	}
	if err := g.yama.Discard(tile); err != nil {
		return err
	}
	g.tehai = next
	return nil
}

// Discard moves one tile from the concealed hand onto the river. The tile
// stays visible, so it is not returned to the wall.
func (g *Game) Discard(tile mahjong.Tile) error {
	if g.tehai == nil {
		return fmt.Errorf("%w: no tehai set", mahjong.ErrHandShape)
	}
	if len(g.tehai.Menzen)%3 != 2 {
		return fmt.Errorf("%w: cannot discard with %d concealed tiles", mahjong.ErrHandShape, len(g.tehai.Menzen))
	}
	next := g.tehai.Clone()
	removed := false
	for i, t := range next.Menzen {
		if t == tile {
			next.Menzen = append(next.Menzen[:i], next.Menzen[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return fmt.Errorf("%w: %s is not in the tehai", mahjong.ErrHandShape, tile.Name())
	}
	g.tehai = next
	g.sutehai = append(g.sutehai, tile)
	return nil
}

// See marks a tile visible elsewhere (another player's discard or meld),
// removing it from the unseen pool.
func (g *Game) See(tile mahjong.Tile) error {
	return g.yama.Discard(tile)
}

// Unsee reverts a mistaken See.
func (g *Game) Unsee(tile mahjong.Tile) error {
	return g.yama.Add(tile)
}

// Analyze runs the full shanten + wait analysis against the current hand,
// with the wall and the river as collaborators.
func (g *Game) Analyze() (int, []*analyzer.Condition, error) {
	if g.tehai == nil {
		return 0, nil, fmt.Errorf("%w: no tehai set", mahjong.ErrHandShape)
	}
	return analyzer.Analyze(g.tehai, &analyzer.Options{
		Yama:    g.yama,
		Sutehai: g.sutehai,
	})
}

func (g *Game) takeFromYama(tehai *mahjong.Tehai) error {
	var taken []mahjong.Tile
	take := func(tile mahjong.Tile) error {
		if err := g.yama.Discard(tile); err != nil {
			return err
		}
		taken = append(taken, tile)
		return nil
	}
	for _, tile := range tehai.Menzen {
		if err := take(tile); err != nil {
			for _, t := range taken {
				g.yama.ForceAdd(t)
			}
			return err
		}
	}
	for _, meld := range tehai.Fuuro {
		for _, tile := range meld.Tiles() {
			if err := take(tile); err != nil {
				for _, t := range taken {
					g.yama.ForceAdd(t)
				}
				return err
			}
		}
	}
	return nil
}

func (g *Game) returnToYama(tehai *mahjong.Tehai) {
	for _, tile := range tehai.Menzen {
		g.yama.ForceAdd(tile)
	}
	for _, meld := range tehai.Fuuro {
		for _, tile := range meld.Tiles() {
			g.yama.ForceAdd(tile)
		}
	}
}

func insertSorted(tiles []mahjong.Tile, tile mahjong.Tile) []mahjong.Tile {
	i := 0
	for ; i < len(tiles) && tiles[i] <= tile; i++ {
	}
	tiles = append(tiles, mahjong.TileNull)
	copy(tiles[i+1:], tiles[i:])
	tiles[i] = tile
	return tiles
}
