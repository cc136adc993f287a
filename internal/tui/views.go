package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/report"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#666666"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	withinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4"))
	nearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FECA57"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	priorityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0A0A0A")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Padding(0, 1).
			MarginLeft(2)
)

const barWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", monthName(m.month), m.year)))
	b.WriteString("\n\n")

	var body string
	switch m.tab {
	case TabOverview:
		body = m.renderOverview()
	case TabBudgets:
		body = m.renderBudgets()
	case TabDebts:
		body = m.renderDebts()
	case TabGoals:
		body = m.renderGoals()
	}

	if m.collapsed {
		b.WriteString(body)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderSidebar()))
	}

	b.WriteString("\n\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keymap.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keymap.ShortHelp()))
	}
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabOverview; t < tabCount; t++ {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	var b strings.Builder

	total := report.MonthlyTotal(m.snapshot.Expenses, m.month, m.year)
	b.WriteString(labelStyle.Render("Gastos do mês: "))
	b.WriteString(m.money(total))
	b.WriteString("\n\n")

	rows := report.CategoryBreakdown(m.snapshot.Expenses, m.snapshot.Categories, m.month, m.year)
	if len(rows) == 0 {
		b.WriteString(labelStyle.Render("Nenhum gasto registrado neste mês."))
		return b.String()
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-16s %s %5.1f%%  %s\n",
			row.CategoryName,
			bar(row.Percentage, lipgloss.Color(row.Color)),
			row.Percentage,
			m.money(row.Amount)))
	}
	return b.String()
}

func (m Model) renderBudgets() string {
	budgets := report.BudgetsForMonth(m.snapshot.Budgets, m.month, m.year)
	if len(budgets) == 0 {
		return labelStyle.Render("Nenhum orçamento para este mês.")
	}

	var b strings.Builder
	for _, budget := range budgets {
		u := report.BudgetUtilization(budget, m.snapshot.Expenses)
		style := withinStyle
		switch u.Status {
		case report.BudgetNearLimit:
			style = nearStyle
		case report.BudgetOver:
			style = overStyle
		}
		// The bar clamps at 100%; the text shows the true value.
		b.WriteString(fmt.Sprintf("%-16s %s %s\n",
			budget.CategorySnapshot.Name,
			bar(u.Percent, lipgloss.Color("#4ECDC4")),
			style.Render(fmt.Sprintf("%.1f%%  %s de %s", u.Percent, m.money(u.Spent), m.money(budget.Amount)))))
	}
	return b.String()
}

func (m Model) renderDebts() string {
	if len(m.snapshot.Debts) == 0 {
		return labelStyle.Render("Nenhuma dívida registrada.")
	}

	strategy := report.EffectiveStrategy(m.snapshot.Settings, m.snapshot.Debts)
	ordered := report.PrioritizeDebts(m.snapshot.Debts, strategy)
	summary := report.SummarizeDebts(ordered)

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Estratégia: %s  •  Total restante: ", strategyName(strategy))))
	b.WriteString(m.money(summary.TotalRemaining))
	b.WriteString("\n\n")

	for i, d := range ordered {
		p := report.ProjectPayoff(d)
		line := fmt.Sprintf("%-16s %s  %s%% a.a.  ~%d meses  juros est. %s",
			d.Name, m.money(d.RemainingAmount), d.InterestRate, p.Months, m.money(p.EstimatedInterest))
		if i == 0 {
			b.WriteString(priorityStyle.Render("Prioridade"))
			b.WriteString(" ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGoals() string {
	if len(m.snapshot.Goals) == 0 {
		return labelStyle.Render("Nenhuma meta registrada.")
	}

	var b strings.Builder
	for _, g := range m.snapshot.Goals {
		pct := g.Progress() * 100
		status := ""
		if g.Completed {
			status = withinStyle.Render(" ✓ concluída")
		}
		b.WriteString(fmt.Sprintf("%-16s %s %5.1f%%  %s de %s%s\n",
			g.Name,
			bar(pct, lipgloss.Color("#54A0FF")),
			pct,
			m.money(g.CurrentAmount),
			m.money(g.TargetAmount),
			status))
	}
	return b.String()
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	if m.snapshot.User != nil {
		b.WriteString(headerStyle.Render(m.snapshot.User.Name))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Renda: "))
		b.WriteString(m.money(m.snapshot.User.Salary))
		b.WriteString("\n\n")
	}

	total := report.MonthlyTotal(m.snapshot.Expenses, m.month, m.year)
	b.WriteString(labelStyle.Render("Gastos: "))
	b.WriteString(m.money(total))
	b.WriteString("\n")
	if m.snapshot.User != nil {
		b.WriteString(labelStyle.Render("Saldo: "))
		b.WriteString(m.money(m.snapshot.User.Salary.Sub(total)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d despesas • %d metas • %d dívidas",
		len(m.snapshot.Expenses), len(m.snapshot.Goals), len(m.snapshot.Debts))))

	return sidebarStyle.Render(b.String())
}

func (m Model) money(amount decimal.Decimal) string {
	return FormatMoney(amount, m.snapshot.Settings.Currency)
}

// FormatMoney renders an amount with its currency symbol.
func FormatMoney(amount decimal.Decimal, currency string) string {
	symbol := currency + " "
	switch currency {
	case "BRL":
		symbol = "R$ "
	case "USD":
		symbol = "$ "
	case "EUR":
		symbol = "€ "
	}
	return symbol + amount.StringFixed(2)
}

func bar(percent float64, color lipgloss.Color) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * barWidth)
	empty := barWidth - filled
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Render(strings.Repeat("░", empty))
}

func monthName(m time.Month) string {
	names := [...]string{"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"}
	if m < 1 || m > 12 {
		return "?"
	}
	return names[m-1]
}

func strategyName(s model.DebtStrategy) string {
	if s == model.StrategyAvalanche {
		return "Avalanche (maior juros primeiro)"
	}
	return "Bola de Neve (menor saldo primeiro)"
}
