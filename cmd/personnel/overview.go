package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/viant/personnel/directory"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	departmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func cmdOverview(a *app, args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("overview", flag.ContinueOnError)
	fs.SetOutput(errOut)
	interactive := fs.Bool("i", false, "Interactive browser with filter")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	employees, err := a.directory.Employees.Overview(a.context())
	if err != nil {
		return report(errOut, "overview", err)
	}
	if !*interactive {
		printOverview(out, employees)
		return 0
	}
	program := tea.NewProgram(newOverviewModel(employees), tea.WithOutput(out))
	if _, err = program.Run(); err != nil {
		fmt.Fprintf(errOut, "overview: %v\n", err)
		return 1
	}
	return 0
}

func printOverview(out io.Writer, employees []*directory.EmployeeOverview) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tJOB TITLE\tDEPARTMENT")
	for _, employee := range employees {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", employee.ID, employee.FullName(), employee.JobTitle, employee.DepartmentName)
	}
	_ = writer.Flush()
}

type overviewModel struct {
	employees []*directory.EmployeeOverview
	visible   []*directory.EmployeeOverview
	filter    textinput.Model
	selected  int
	detail    bool
}

func newOverviewModel(employees []*directory.EmployeeOverview) *overviewModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name, job title or department"
	filter.Focus()
	ret := &overviewModel{employees: employees, filter: filter}
	ret.applyFilter()
	return ret
}

func (m *overviewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *overviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.detail && msg.String() == "esc" {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			m.detail = len(m.visible) > 0 && !m.detail
			return m, nil
		}
	}
	var cmd tea.Cmd
	previous := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != previous {
		m.applyFilter()
	}
	return m, cmd
}

func (m *overviewModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for _, employee := range m.employees {
		if query == "" || matches(employee, query) {
			m.visible = append(m.visible, employee)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.detail = false
}

func matches(employee *directory.EmployeeOverview, query string) bool {
	candidates := []string{employee.FullName(), employee.JobTitle, employee.DepartmentName}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), query) {
			return true
		}
	}
	return false
}

func (m *overviewModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Employee Overview"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")
	if len(m.visible) == 0 {
		b.WriteString("no employees found\n")
	}
	for i, employee := range m.visible {
		line := fmt.Sprintf("%-28s %-24s %s", employee.FullName(), employee.JobTitle, departmentStyle.Render(employee.DepartmentName))
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.detail && m.selected < len(m.visible) {
		employee := m.visible[m.selected]
		picture := "none"
		if employee.ProfilePictureURL != nil {
			picture = *employee.ProfilePictureURL
		}
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(fmt.Sprintf("ID: %d\nName: %s\nJob Title: %s\nDepartment: %s\nProfile Picture: %s",
			employee.ID, employee.FullName(), employee.JobTitle, employee.DepartmentName, picture)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter details • esc quit"))
	b.WriteString("\n")
	return b.String()
}
