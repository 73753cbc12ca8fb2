package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/bluffgame/bluff/game"
)

// renderState prints the shared view of the table: the declared rank, the
// zone sizes and each seat's public card counts.
func renderState(g *game.Game) {
	declared := "none yet"
	if rank, ok := g.DeclaredRank(); ok {
		declared = rank.String()
	}

	pterm.DefaultSection.Println("Table")
	pterm.Info.Printfln("Declared rank: %s", declared)
	pterm.Info.Printfln("Community area: %d cards | Discard area: %d cards",
		len(g.CommunityArea()), len(g.DiscardArea()))

	rows := pterm.TableData{{"", "Seat", "Player", "Hand", "Played"}}
	for seat, p := range g.Players() {
		marker := ""
		if seat == g.CurrentSeat() {
			marker = ">>>"
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(seat),
			p.Name,
			strconv.Itoa(p.HandCount()),
			strconv.Itoa(p.PlayedCount()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

// renderHand formats a hand as indexed card symbols, e.g. "0:Q♥ 1:2♣".
func renderHand(p *game.Player) string {
	cards := make([]string, 0, len(p.Hand))
	for i, c := range p.Hand {
		cards = append(cards, fmt.Sprintf("%d:%s", i, c))
	}
	return strings.Join(cards, " ")
}

// renderScores prints the end-of-game score report over remaining hands.
func renderScores(g *game.Game, winner *game.Player) {
	pterm.DefaultSection.Println("Final scores")
	pterm.Success.Printfln("%s wins!", winner.Name)
	for _, p := range g.Players() {
		pterm.Info.Printfln("%s: %d points left in hand", p.Name, p.Score())
	}
}
