package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	viewerTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	viewerDim    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	viewerBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
	previewWidth = 36
)

type viewerModel struct {
	width  int
	height int

	rows []SummaryRow
	tbl  table.Model
}

func newViewerModel(rows []SummaryRow) viewerModel {
	cols := []table.Column{
		{Title: "Plot_ID", Width: 20},
		{Title: "Area_ha", Width: 10},
		{Title: "Latitude", Width: 11},
		{Title: "Longitude", Width: 11},
		{Title: "Source_File", Width: 24},
	}
	trows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		trows = append(trows, table.Row{
			row.PlotID,
			strconv.FormatFloat(row.AreaHa, 'f', 4, 64),
			strconv.FormatFloat(row.Lat, 'f', 6, 64),
			strconv.FormatFloat(row.Lon, 'f', 6, 64),
			row.SourceFile,
		})
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithFocused(true),
	)
	return viewerModel{rows: rows, tbl: tbl}
}

func (m viewerModel) Init() tea.Cmd { return nil }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetWidth(maxInt(40, m.width-previewWidth-6))
		m.tbl.SetHeight(maxInt(4, m.height-4))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := viewerTitle.Render(" kml2csv ─ polygon summary ")
	preview := viewerBox.Render(m.renderPreview(previewWidth-4, maxInt(4, m.height-8)))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.tbl.View(), " ", preview)
	footer := viewerDim.Render("  ↑↓ select  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m viewerModel) renderPreview(w, h int) string {
	cursor := m.tbl.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return viewerDim.Render("no selection")
	}
	row := m.rows[cursor]

	outlineH := maxInt(4, h-4)
	outline := renderRingOutline(row.Ring, row.Lat, row.Lon, w, outlineH)

	var b strings.Builder
	b.WriteString(strings.Join(outline, "\n"))
	b.WriteString("\n")
	b.WriteString(viewerDim.Render(fmt.Sprintf("vertices  %d", row.Ring.Length())))
	b.WriteString("\n")
	b.WriteString(viewerDim.Render(fmt.Sprintf("perimeter %.0f m", RingPerimeter(row.Ring))))
	b.WriteString("\n")
	b.WriteString(viewerDim.Render(fmt.Sprintf("centroid  %.6f, %.6f", row.Lat, row.Lon)))
	return b.String()
}

// RunViewer - open the interactive results browser
func RunViewer(rows []SummaryRow) error {
	if len(rows) == 0 {
		return errors.New("nothing to display")
	}
	_, err := tea.NewProgram(newViewerModel(rows), tea.WithAltScreen()).Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
