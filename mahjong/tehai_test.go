package mahjong_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
)

func TestParseTehaiEquivalentNotations(t *testing.T) {
	want, err := mahjong.ParseTehai("1m2m3m4m4m5m4p4p4p5p8s[1z1z1z]")
	assert.NoError(t, err)

	for _, notation := range []string{
		"123445m4445p8s[111z]",
		"45p 8s14 4m[11 1z]2 5m44p 3m",
	} {
		got, err := mahjong.ParseTehai(notation)
		assert.NoError(t, err, notation)
		assert.Equal(t, want.Menzen, got.Menzen, notation)
		assert.Equal(t, want.Fuuro, got.Fuuro, notation)
	}
}

func TestParseTehaiSortsMenzen(t *testing.T) {
	tehai, err := mahjong.ParseTehai("9s1m5p7z3m")
	assert.NoError(t, err)
	assert.Equal(t, "1m3m5p9s7z", mahjong.TilesName(tehai.Menzen))
}

func TestParseTehaiErrors(t *testing.T) {
	cases := []struct {
		name     string
		notation string
	}{
		{"unknown character", "123x"},
		{"trailing digits", "123m45"},
		{"unused type character", "m"},
		{"tile out of range", "8z"},
		{"unmatched close", "123m]"},
		{"missing close", "123m[111z"},
		{"nested open", "[[111z]]"},
		{"digits before open", "12[333m]4m"},
		{"invalid meld", "1m[123z]2m"},
		{"honor run meld", "12m[135p]"},
		{"wrong count", "123m"},
		{"too many tiles", "123456789m12345p[111z]"},
		{"five copies", "11111m22p"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mahjong.ParseTehai(tc.notation)
			assert.Error(t, err, tc.notation)
		})
	}
}

func TestTehaiValidateShape(t *testing.T) {
	// 13 and 14 concealed tiles are fine, multiples of three are not.
	for _, notation := range []string{"1112223334445m", "11122233344455m", "55m", "5m"} {
		_, err := mahjong.ParseTehai(notation)
		assert.NoError(t, err, notation)
	}
	for _, notation := range []string{"112233m", "123m456p789s112z[777z]"} {
		_, err := mahjong.ParseTehai(notation)
		assert.ErrorIs(t, err, mahjong.ErrHandShape, notation)
	}
}

func TestTehaiVisibleCount(t *testing.T) {
	tehai, err := mahjong.ParseTehai("1123m55p[111z]")
	assert.NoError(t, err)
	assert.Equal(t, 2, tehai.VisibleCount(mahjong.ParseTile("1m")))
	assert.Equal(t, 3, tehai.VisibleCount(mahjong.ParseTile("1z")))
	assert.Equal(t, 0, tehai.VisibleCount(mahjong.ParseTile("9s")))
}

func TestTehaiCloneIsDeep(t *testing.T) {
	tehai, err := mahjong.ParseTehai("123m456p789s1122z")
	assert.NoError(t, err)
	clone := tehai.Clone()
	clone.Menzen[0] = mahjong.ParseTile("9s")
	assert.Equal(t, mahjong.ParseTile("1m"), tehai.Menzen[0])
}

func TestTehaiString(t *testing.T) {
	tehai, err := mahjong.ParseTehai("45p 8s14 4m[11 1z]2 5m44p 3m")
	assert.NoError(t, err)
	assert.Equal(t, "1m2m3m4m4m5m4p4p4p5p8s [1z1z1z]", tehai.String())
}
