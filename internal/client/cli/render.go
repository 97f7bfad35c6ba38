package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"stockctl/internal/client/models"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headingStyle     = lipgloss.NewStyle().Bold(true)
)

// renderItems draws the full item table. Rendering always replaces whatever
// was shown before; rows are never patched in place.
func renderItems(items []models.Item) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("ID", "NAME", "DESCRIPTION", "QTY", "PRICE", "CATEGORY", "UPDATED")

	for _, item := range items {
		t.Row(
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Description,
			strconv.Itoa(item.Quantity),
			item.Price.StringFixed(2),
			item.Category,
			formatTime(item.LastUpdated),
		)
	}

	return t.Render()
}

// renderHistory draws the ordered change log for one item under a heading
// naming it.
func renderHistory(itemID int64, changes []models.ChangeRecord) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("History for item %d", itemID)))
	b.WriteString("\n")

	if len(changes) == 0 {
		b.WriteString("No recorded changes.")
		return b.String()
	}

	for _, ch := range changes {
		line := fmt.Sprintf("%s  %-10s  %d -> %d",
			formatTime(ch.ChangeDate), ch.ChangeType, ch.OldQuantity, ch.NewQuantity)
		if ch.ChangedBy != "" {
			line += fmt.Sprintf("  (by %s)", ch.ChangedBy)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
