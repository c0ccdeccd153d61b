package mahjong

import "errors"

var (
	// ErrNotation reports unparseable hand notation.
	ErrNotation = errors.New("mahjong: bad notation")
	// ErrHandShape reports a structurally invalid hand.
	ErrHandShape = errors.New("mahjong: invalid hand shape")
	// ErrHaiyama reports an over- or under-flowing wall count.
	ErrHaiyama = errors.New("mahjong: haiyama count out of range")
)
