package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censor_MasksWordsAndPreservesLength(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot", "loser"}, '*')
	req.NoError(err)

	censored, changed := moderator.Censor("you absolute idiot")
	req.True(changed)
	req.Equal("you absolute *****", censored)
	req.Len(censored, len("you absolute idiot"))
}

func TestModerator_Censor_DetectsLeetSpeak(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	censored, changed := moderator.Censor("what an 1d10t")
	req.True(changed)
	req.Equal("what an *****", censored)
}

func TestModerator_Censor_CleanTextUntouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	original := "fancy a coffee later?"
	censored, changed := moderator.Censor(original)
	req.False(changed)
	req.Equal(original, censored)
}

func TestModerator_Censor_IgnoresPunctuationNoise(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	censored, changed := moderator.Censor("i.d.i.o.t")
	req.True(changed)
	req.NotContains(censored, "d")
}
