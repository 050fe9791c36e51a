package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mass-rename/regexrename/internal/model"
)

type planItem struct {
	from string
	to   string
}

func (i planItem) FilterValue() string {
	return i.from
}

// Simple delegate for plan list items.
type planDelegate struct{}

func (d planDelegate) Height() int  { return 1 }
func (d planDelegate) Spacing() int { return 0 }
func (d planDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d planDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(planItem)
	if !ok {
		return
	}

	fromStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	arrowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	toStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	if index == l.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		fromStyle = selected
		arrowStyle = selected
		toStyle = selected
	}

	line := fmt.Sprintf("%s %s %s",
		fromStyle.Render(entry.from),
		arrowStyle.Render("->"),
		toStyle.Render(entry.to),
	)
	_, _ = fmt.Fprint(w, line)
}

// planModel shows the rename plan and waits for a confirm or cancel
// keypress.
type planModel struct {
	planList  list.Model
	total     int
	width     int
	height    int
	confirmed bool
}

func newPlanModel(renames []m.Candidate) planModel {
	items := make([]list.Item, 0, len(renames))
	for _, c := range renames {
		items = append(items, planItem{
			from: string(c.FromPath()),
			to:   string(c.ToPath()),
		})
	}

	planList := list.New(items, planDelegate{}, 80, 20)
	planList.SetShowPagination(false)
	planList.SetShowFilter(true)
	planList.SetShowHelp(false)
	planList.SetShowTitle(false)
	planList.SetShowStatusBar(false)
	planList.FilterInput.Placeholder = "Filter by name…"

	return planModel{planList: planList, total: len(renames)}
}

func (pm planModel) Init() tea.Cmd {
	return nil
}

func (pm planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.planList.SetWidth(pm.width)
		pm.planList.SetHeight(max(pm.height-4, 4))

		return pm, nil

	case tea.KeyMsg:
		if pm.planList.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "y", "enter":
			pm.confirmed = true

			return pm, tea.Quit
		case "n", "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.planList, cmd = pm.planList.Update(msg)

	return pm, cmd
}

func (pm planModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return fmt.Sprintf("%s\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Planned renames (%d)", pm.total)),
		pm.planList.View(),
		helpStyle.Render("y/enter apply · n/q cancel · / filter"),
	)
}
