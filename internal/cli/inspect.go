package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
	"github.com/matzehuels/barchart/pkg/io"
	"github.com/matzehuels/barchart/pkg/pipeline"
)

var (
	inspectHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	inspectCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	inspectCellStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	inspectDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectKeyMap defines the inspector key bindings.
type inspectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var inspectKeys = inspectKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first bar")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last bar")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k inspectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

func (k inspectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Help, k.Quit}}
}

// InspectModel is the bubbletea model that browses bar geometry.
type InspectModel struct {
	Layout chart.Layout
	Bars   []chart.Bar
	Cursor int
	Height int
	Offset int

	help help.Model
}

// NewInspectModel creates an inspector for c.
func NewInspectModel(c *chart.Chart) InspectModel {
	return InspectModel{
		Layout: c.Layout(),
		Bars:   c.Bars(),
		Height: 15,
		help:   help.New(),
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, inspectKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, inspectKeys.Up):
			m.move(-1)
		case key.Matches(msg, inspectKeys.Down):
			m.move(1)
		case key.Matches(msg, inspectKeys.Top):
			m.move(-len(m.Bars))
		case key.Matches(msg, inspectKeys.Bottom):
			m.move(len(m.Bars))
		case key.Matches(msg, inspectKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 3)
		m.help.Width = msg.Width
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the bars, and scrolls the
// window to keep it visible.
func (m *InspectModel) move(delta int) {
	if len(m.Bars) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Bars)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Bar Geometry"))
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render(layoutSummary(m.Layout)))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Bars))
	b.WriteString(barTable(m.Bars[m.Offset:end], m.Cursor-m.Offset).Render())
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Bars))))
	b.WriteString("\n")
	b.WriteString(m.help.View(inspectKeys))

	return b.String()
}

func layoutSummary(l chart.Layout) string {
	return fmt.Sprintf("canvas %gx%g · axis %gx%g · upper bound %g · tick step %.4g",
		l.CanvasWidth, l.CanvasHeight,
		l.HorizontalAxisWidth, l.VerticalAxisHeight,
		l.VerticalUpperBound, l.VerticalLabelFrequency)
}

// barTable renders bars as a table; cursor is the highlighted row, or -1.
func barTable(bars []chart.Bar, cursor int) *table.Table {
	rows := make([][]string, len(bars))
	for i, bar := range bars {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{
			marker,
			fmt.Sprint(bar.Index),
			bar.Label,
			fmt.Sprintf("%g", bar.Value),
			fmt.Sprintf("%.2f", bar.Rect.Origin.X),
			fmt.Sprintf("%.2f", bar.Rect.Size.Width),
			fmt.Sprintf("%.2f", bar.Rect.Size.Height),
			fmt.Sprintf("%.2f–%.2f", bar.SlotLeft, bar.SlotRight),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(inspectDimStyle).
		Headers("", "#", "Label", "Value", "X", "Width", "Height", "Slot").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return inspectHeaderStyle
			case row == cursor:
				return inspectCursorStyle
			default:
				return inspectCellStyle
			}
		})
}

type inspectOpts struct {
	chartFlags
	plain  bool
	export string // write the loaded dataset as JSON
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <data>",
		Short: "Browse the computed bar geometry",
		Long: `Compute the chart layout for a dataset and browse every bar's position,
size and slot interactively. Use --plain to print the table once.`,
		Example: `  barchart inspect sales.csv
  barchart inspect sales.xlsx --sheet Q3 --plain --export q3.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the table without the interactive view")
	cmd.Flags().StringVar(&opts.export, "export", "", "write the dataset to a JSON file")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, path string, opts *inspectOpts) error {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	data, err := opts.loadDataset(cmd, path)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	ch, err := runner.Build(cmd.Context(), pipeline.Options{Config: cfg, Data: data})
	if err != nil {
		return err
	}

	if opts.export != "" {
		if samePath(opts.export, path) {
			return errors.New(errors.ErrCodeInvalidPath, "--export %s would overwrite the input", opts.export)
		}
		if err := io.ExportJSON(opts.export, ch.Data()); err != nil {
			return err
		}
		printSuccess("Exported %d values", len(data))
		printFile(opts.export)
	}

	if opts.plain {
		fmt.Fprintln(c.out(), StyleTitle.Render("Bar Geometry"))
		fmt.Fprintln(c.out(), inspectDimStyle.Render(layoutSummary(ch.Layout())))
		fmt.Fprintln(c.out(), barTable(ch.Bars(), -1).Render())
		return nil
	}

	p := tea.NewProgram(NewInspectModel(ch),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen())
	_, err = p.Run()
	return err
}
