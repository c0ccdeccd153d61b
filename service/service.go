// Package service exports analysis results as protobuf payloads so a
// game server can embed them in its own message envelopes.
package service

import (
	"github.com/NichtsVonChaos/japanese-mahjong-theory/analyzer"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/utils"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ResultStruct packs a shanten number and its wait conditions into a
// protobuf Struct. Tiles travel as their mpsz names; counts as numbers.
func ResultStruct(shanten int, conditions []*analyzer.Condition) (*structpb.Struct, error) {
	conds := make([]any, 0, len(conditions))
	for _, cond := range conditions {
		machihai := make(map[string]any, len(cond.Machihai))
		for _, tile := range cond.Tiles() {
			machihai[tile.Name()] = cond.Machihai[tile]
		}
		entry := map[string]any{
			"machihai": machihai,
			"nokori":   cond.Nokori(),
			"furiten":  cond.Furiten,
		}
		if cond.Sutehai != mahjong.TileNull {
			entry["sutehai"] = cond.Sutehai.Name()
		}
		conds = append(conds, entry)
	}
	return structpb.NewStruct(map[string]any{
		"shanten":    shanten,
		"conditions": conds,
	})
}

// ResultAny wraps ResultStruct for transports that carry anypb payloads.
func ResultAny(shanten int, conditions []*analyzer.Condition) (*anypb.Any, error) {
	st, err := ResultStruct(shanten, conditions)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(st), nil
}
