package models_test

import (
	"testing"

	"github.com/CardSorting/dbternow/models"
)

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{1000, 11},
	}
	for _, tc := range cases {
		if got := models.LevelForPoints(tc.points); got != tc.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tc.points, got, tc.want)
		}
	}
}

func TestValidChallengeType(t *testing.T) {
	for _, valid := range []models.ChallengeType{
		models.ChallengeTypeQuiz,
		models.ChallengeTypeReflection,
		models.ChallengeTypePractice,
		models.ChallengeTypeScenario,
		models.ChallengeTypeMeditation,
	} {
		if !models.ValidChallengeType(valid) {
			t.Errorf("ValidChallengeType(%q) = false, want true", valid)
		}
	}
	if models.ValidChallengeType("JUGGLING") {
		t.Error(`ValidChallengeType("JUGGLING") = true, want false`)
	}
}
