// Command advisor runs the balanced policy against a single described
// table spot and prints the decision it would make, along with the
// factors behind it. Useful for eyeballing strategy changes without an
// engine in the loop.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/balancedbot/internal/bot"
	"github.com/lox/balancedbot/internal/deck"
	"github.com/lox/balancedbot/internal/evaluator"
	"github.com/lox/balancedbot/internal/game"
)

type CLI struct {
	Hole          string   `arg:"" help:"Your two hole cards, e.g. 'As Ah'" required:""`
	Board         string   `short:"b" help:"Community cards, e.g. 'Td 7s 8h' (0, 3, 4 or 5 cards)"`
	Pot           int      `help:"Current pot size" default:"30"`
	CurrentBet    int      `help:"Current bet to match" default:"0"`
	MyBet         int      `help:"Chips already contributed this round" default:"0"`
	BigBlind      int      `help:"Big blind size" default:"20"`
	MinBet        int      `help:"Minimum legal total bet" default:"20"`
	MaxBet        int      `help:"Maximum legal total bet" default:"1000"`
	Actions       []string `help:"Legal actions for this spot" default:"fold,check,call,raise"`
	Late          bool     `help:"Treat the seat as last to act"`
	PreflopRaiser bool     `help:"Assume we were the preflop aggressor (enables continuation bets)"`
	Tuning        string   `help:"HCL strategy tuning file" type:"existingfile"`
	Verbose       bool     `short:"v" help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("advisor"),
		kong.Description("Ask the balanced policy what it would do in a given spot."))

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	hole, err := deck.ParseCards(cli.Hole)
	ctx.FatalIfErrorf(err)
	if len(hole) != 2 {
		ctx.Fatalf("expected exactly 2 hole cards, got %d", len(hole))
	}

	board, err := deck.ParseCards(cli.Board)
	ctx.FatalIfErrorf(err)

	round, err := roundForBoard(board)
	ctx.FatalIfErrorf(err)

	legal := make([]game.Action, 0, len(cli.Actions))
	for _, name := range cli.Actions {
		action, err := game.ParseAction(strings.TrimSpace(name))
		ctx.FatalIfErrorf(err)
		legal = append(legal, action)
	}

	tuning := bot.DefaultTuning()
	if cli.Tuning != "" {
		tuning, err = bot.LoadTuning(cli.Tuning)
		ctx.FatalIfErrorf(err)
	}

	opts := []bot.Option{bot.WithTuning(tuning)}
	if cli.PreflopRaiser {
		opts = append(opts, bot.WithPreflopRaise())
	}
	policy := bot.New("hero", logger, opts...)

	toAct := []string{"hero", "villain-1", "villain-2"}
	if cli.Late {
		toAct = []string{"villain-1", "hero"}
	}

	state := &game.State{
		Round:      round,
		CurrentBet: cli.CurrentBet,
		BigBlind:   cli.BigBlind,
		Pot:        cli.Pot,
		Bets:       map[string]int{"hero": cli.MyBet},
		Community:  board,
		ToAct:      toAct,
	}

	action, amount := policy.GetAction(state, hole, legal, cli.MinBet, cli.MaxBet)

	printSpot(state, hole, board, policy.Name())
	printDecision(action, amount)
}

func roundForBoard(board []deck.Card) (string, error) {
	switch len(board) {
	case 0:
		return game.RoundPreflop, nil
	case 3:
		return game.RoundFlop, nil
	case 4:
		return game.RoundTurn, nil
	case 5:
		return game.RoundRiver, nil
	default:
		return "", fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}
}

func printSpot(state *game.State, hole, board []deck.Card, name string) {
	fmt.Println(headerStyle.Render("Spot"))

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Round:\t%s\n", state.Round)
	fmt.Fprintf(w, "Hole:\t%s\n", cardStyle.Render(cardString(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "Board:\t%s\n", cardStyle.Render(cardString(board)))
	}
	fmt.Fprintf(w, "Pot:\t%d\n", state.Pot)

	toCall := state.AmountOwed(name)
	fmt.Fprintf(w, "To call:\t%d\n", toCall)
	if toCall > 0 {
		fmt.Fprintf(w, "Pot odds:\t%.2f\n", game.PotOdds(state.Pot, toCall))
	}

	allCards := append(append([]deck.Card{}, hole...), board...)
	if state.IsPreflop() {
		fmt.Fprintf(w, "Confidence:\t%.3f\n", bot.PreflopConfidence(hole))
	} else if result, err := evaluator.BestHand(allCards); err == nil {
		fmt.Fprintf(w, "Hand:\t%s\n", result.Type)
		fmt.Fprintf(w, "Strong draw:\t%v\n", bot.HasStrongDraw(allCards))
	}
	w.Flush()
}

func printDecision(action game.Action, amount int) {
	fmt.Println()
	if action == game.Raise {
		fmt.Printf("%s %s\n", headerStyle.Render("Decision:"),
			actionStyle.Render(fmt.Sprintf("%s to %d", action, amount)))
		return
	}
	fmt.Printf("%s %s\n", headerStyle.Render("Decision:"), actionStyle.Render(action.String()))
}

func cardString(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
