package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoneType_Valid(t *testing.T) {
	for _, st := range []StoneType{StoneNone, StoneCalciumOxalate, StoneCalciumPhosphate, StoneUricAcid, StoneOther} {
		assert.True(t, st.Valid(), string(st))
	}
	assert.False(t, StoneType("granite").Valid())
}

func TestRecommendationFor(t *testing.T) {
	for _, st := range []StoneType{StoneCalciumOxalate, StoneCalciumPhosphate, StoneUricAcid, StoneOther} {
		rec, ok := RecommendationFor(st)
		require.True(t, ok, string(st))
		assert.Equal(t, st, rec.StoneType)
		assert.NotEmpty(t, rec.PrimaryGoal)
		assert.NotEmpty(t, rec.Avoid)
		assert.NotEmpty(t, rec.Increase)
	}

	_, ok := RecommendationFor(StoneNone)
	assert.False(t, ok)
}

func TestRecommendationFor_ReturnsCopy(t *testing.T) {
	rec, _ := RecommendationFor(StoneUricAcid)
	rec.Avoid[0].Item = "Nothing"

	again, _ := RecommendationFor(StoneUricAcid)
	assert.Equal(t, "Red meat", again.Avoid[0].Item)
}
