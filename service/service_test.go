package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/analyzer"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/service"
)

func TestResultStruct(t *testing.T) {
	tehai, err := mahjong.ParseTehai("123m456p789s11223z")
	assert.NoError(t, err)
	shanten, conditions, err := analyzer.Analyze(tehai, nil)
	assert.NoError(t, err)

	st, err := service.ResultStruct(shanten, conditions)
	assert.NoError(t, err)

	fields := st.GetFields()
	assert.Equal(t, float64(0), fields["shanten"].GetNumberValue())

	conds := fields["conditions"].GetListValue().GetValues()
	assert.Len(t, conds, 1)
	entry := conds[0].GetStructValue().GetFields()
	assert.Equal(t, "3z", entry["sutehai"].GetStringValue())
	assert.Equal(t, float64(4), entry["nokori"].GetNumberValue())
	assert.False(t, entry["furiten"].GetBoolValue())

	machihai := entry["machihai"].GetStructValue().GetFields()
	assert.Equal(t, float64(2), machihai["1z"].GetNumberValue())
	assert.Equal(t, float64(2), machihai["2z"].GetNumberValue())
}

func TestResultStructCompleteHand(t *testing.T) {
	st, err := service.ResultStruct(-1, nil)
	assert.NoError(t, err)
	assert.Equal(t, float64(-1), st.GetFields()["shanten"].GetNumberValue())
	assert.Empty(t, st.GetFields()["conditions"].GetListValue().GetValues())
}

func TestResultAny(t *testing.T) {
	payload, err := service.ResultAny(0, nil)
	assert.NoError(t, err)
	assert.Contains(t, payload.GetTypeUrl(), "google.protobuf.Struct")
}
