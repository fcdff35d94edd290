package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

// Printer renders cards and showdowns to a writer.
type Printer struct {
	w io.Writer

	header   lipgloss.Style
	redCard  lipgloss.Style
	blkCard  lipgloss.Style
	category lipgloss.Style
	winner   lipgloss.Style
	info     lipgloss.Style
}

// NewPrinter creates a printer for w. When color is false all styling is
// rendered as plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		redCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		blkCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		category: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		winner: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders one card, red for hearts and diamonds.
func (p *Printer) Card(c poker.Card) string {
	if c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds {
		return p.redCard.Render(c.String())
	}
	return p.blkCard.Render(c.String())
}

// Cards renders cards separated by spaces.
func (p *Printer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, " ")
}

// Showdown writes the board followed by one row per seat with its best five
// cards, score and category. Winning seats are marked.
func (p *Printer) Showdown(holes [][2]poker.Card, board [5]poker.Card, res *showdown.Result) error {
	if _, err := fmt.Fprintf(p.w, "%s\n%s\n\n", p.header.Render("board"), p.Cards(board[:])); err != nil {
		return err
	}

	winners := make(map[int]bool)
	for _, seat := range res.Winners() {
		winners[seat] = true
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		p.header.Render("seat"),
		p.header.Render("hole"),
		p.header.Render("best five"),
		p.header.Render("score"),
		p.header.Render("hand"),
		p.header.Render(""))

	for seat, hole := range holes {
		five := DisplayOrder(res.BestFive(holes, board, seat))
		mark := ""
		if winners[seat] {
			mark = p.winner.Render("winner")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			seat,
			p.Cards(hole[:]),
			p.Cards(five[:]),
			res.Scores[seat],
			p.category.Render(Label(res.Scores[seat])),
			mark)
	}
	return w.Flush()
}

// Line writes a dim informational line.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintln(p.w, p.info.Render(fmt.Sprintf(format, args...)))
	return err
}
