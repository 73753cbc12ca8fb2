package cli

import (
	"testing"

	"github.com/bluffgame/bluff/deck"
	utils "github.com/bluffgame/bluff/internal"
	"github.com/bluffgame/bluff/protocol"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input    string
		expected protocol.Cmd
	}{
		{"1", protocol.Play},
		{"2", protocol.Challenge},
		{"3", protocol.Pass},
		{" 2 ", protocol.Challenge},
		{"q", protocol.Quit},
		{"quit", protocol.Quit},
		{"4", protocol.Unknown},
		{"", protocol.Unknown},
		{"play", protocol.Unknown},
	}

	for _, c := range cases {
		utils.AssertEqual(t, ParseCommand(c.input), c.expected)
	}
}

func TestParseCardIndices(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		indices, err := ParseCardIndices("0 2 4", 5)
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, indices, []int{0, 2, 4})
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name     string
			input    string
			handSize int
		}{
			{"empty", "", 5},
			{"not a number", "0 x", 5},
			{"out of range", "0 5", 5},
			{"negative", "-1", 5},
			{"duplicate", "1 1", 5},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := ParseCardIndices(c.input, c.handSize)
				utils.AssertErrored(t, err)
			})
		}
	})
}

func TestParseChallengeTarget(t *testing.T) {
	targets := []int{0, 2}

	t.Run("accepts a challengeable seat", func(t *testing.T) {
		seat, err := ParseChallengeTarget(" 2 ", targets)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, seat, 2)
	})

	t.Run("rejects the actor's own seat", func(t *testing.T) {
		// seat 1 is the actor: present at the table, never in targets
		_, err := ParseChallengeTarget("1", targets)
		utils.AssertErrored(t, err)
	})

	t.Run("rejects seats without a played area", func(t *testing.T) {
		_, err := ParseChallengeTarget("3", targets)
		utils.AssertErrored(t, err)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseChallengeTarget("two", targets)
		utils.AssertErrored(t, err)
	})
}

func TestParseDeclaredRank(t *testing.T) {
	rank, err := ParseDeclaredRank(" q ")
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, rank, deck.Queen)

	rank, err = ParseDeclaredRank("10")
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, rank, deck.Ten)

	_, err = ParseDeclaredRank("knight")
	utils.AssertErrored(t, err)
}
