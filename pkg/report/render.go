// Package report renders and exports the planner's final orders.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/perchworks/restock/pkg/engine"
)

var (
	colorAccent = lipgloss.Color("#00FF99")
	colorHeader = lipgloss.Color("#874BFD")
	colorSub    = lipgloss.Color("#64748B")
	colorDanger = lipgloss.Color("#FF0055")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Foreground(colorSub).Bold(true)
	sizeStyle   = lipgloss.NewStyle().Foreground(colorSub)
	qtyStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	backStyle   = lipgloss.NewStyle().Foreground(colorDanger)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSub).
			Padding(0, 1)
)

// Render formats a run result as a console table: one row per size, one
// quantity column per policy, with current logical inventory alongside.
func Render(res *engine.Result) string {
	var b strings.Builder

	header := fmt.Sprintf("%-5s %9s", "SIZE", "ON-HAND")
	for _, pr := range res.Orders {
		header += fmt.Sprintf(" %10s", strings.ToUpper(pr.Policy))
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, size := range res.Sizes {
		inv := res.Inventory[i]
		onHand := fmt.Sprintf("%9d", inv)
		if inv < 0 {
			onHand = backStyle.Render(onHand)
		}
		row := sizeStyle.Render(fmt.Sprintf("%-5s", size)) + " " + onHand
		for _, pr := range res.Orders {
			row += " " + qtyStyle.Render(fmt.Sprintf("%10d", pr.Order[i]))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	total := fmt.Sprintf("%-5s %9d", "TOTAL", res.Inventory.Sum())
	for _, pr := range res.Orders {
		total += fmt.Sprintf(" %10d", pr.Order.Sum())
	}
	b.WriteString(headerStyle.Render(total))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Replenishment Order"),
		tableStyle.Render(b.String()),
	)
}
