package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bluffgame/bluff/deck"
	"github.com/bluffgame/bluff/protocol"
)

// ParseCommand maps a menu choice to a command.
func ParseCommand(input string) protocol.Cmd {
	switch strings.TrimSpace(input) {
	case "1":
		return protocol.Play
	case "2":
		return protocol.Challenge
	case "3":
		return protocol.Pass
	case "q", "quit":
		return protocol.Quit
	}
	return protocol.Unknown
}

// ParseCardIndices parses space-separated hand indices, e.g. "0 2 4".
// Indices must be distinct and within the hand.
func ParseCardIndices(input string, handSize int) ([]int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no card indices given")
	}

	seen := map[int]struct{}{}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a card index", f)
		}
		if idx < 0 || idx >= handSize {
			return nil, fmt.Errorf("card index %d out of range", idx)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("card index %d given twice", idx)
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}

	return indices, nil
}

// ParseChallengeTarget parses a seat number and validates it against the
// challengeable seats: those with a non-empty played area, other than the
// actor. The actor's own seat is never a legal target.
func ParseChallengeTarget(input string, targets []int) (int, error) {
	seat, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%q is not a seat number", input)
	}
	for _, target := range targets {
		if seat == target {
			return seat, nil
		}
	}
	return 0, fmt.Errorf("seat %d cannot be challenged", seat)
}

// ParseDeclaredRank parses a rank symbol such as "Q" or "10".
func ParseDeclaredRank(input string) (deck.Rank, error) {
	return deck.ParseRank(strings.ToUpper(strings.TrimSpace(input)))
}
