package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/gametext/internal/paginate"
)

// defaultBoxWidth is the dialogue box width used before the first
// WindowSizeMsg arrives.
const defaultBoxWidth = 60

// minBoxWidth keeps the box readable on very narrow terminals.
const minBoxWidth = 20

// dialogueLines is how many text lines a page is sized for when the page
// bound tracks the terminal width.
const dialogueLines = 3

// boxPadding accounts for the dialogue box border and padding columns.
const boxPadding = 8

// Dialogue box styles.
//
//nolint:gochecknoglobals // Compile-time style definitions, never mutated.
var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// BoundForWidth converts a terminal width into a page bound: the columns
// left inside the box chrome, times the dialogue line count. Narrow
// terminals clamp to the minimum box width so the bound never collapses to
// a value that would disable pagination.
func BoundForWidth(width int) int {
	inner := width - boxPadding
	if inner < minBoxWidth-boxPadding {
		inner = minBoxWidth - boxPadding
	}
	return inner * dialogueLines
}

// PagerModel displays a sequence of pages one at a time, dialogue-box style.
type PagerModel struct {
	// title is shown above the page content (typically the asset name).
	title string

	// pages is the paginated text, one entry per page.
	pages []string

	// text is the raw unpaginated text, kept for re-pagination on resize.
	// Only set for sized pagers.
	text string

	// sized re-derives the page bound from the terminal width on resize.
	sized bool

	// paginator tracks the current page and renders the dot indicator.
	paginator paginator.Model

	// width is the current terminal width in columns.
	width int

	// quitting suppresses the final render after dismissal.
	quitting bool
}

// NewPager creates a pager over a fixed, pre-paginated page list. An empty
// page list renders as a single empty page so the box still appears.
func NewPager(title string, pages []string) PagerModel {
	if len(pages) == 0 {
		pages = []string{""}
	}

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render("●")
	p.InactiveDot = lipgloss.NewStyle().Faint(true).Render("○")
	p.SetTotalPages(len(pages))

	return PagerModel{
		title:     title,
		pages:     pages,
		paginator: p,
		width:     defaultBoxWidth,
	}
}

// NewSizedPager creates a pager whose page bound tracks the terminal: text
// is re-paginated from the current width whenever the window resizes, so
// pages always fit the dialogue box on screen.
func NewSizedPager(title, text string, width int) PagerModel {
	m := NewPager(title, paginate.Pages(text, BoundForWidth(width)))
	m.text = text
	m.sized = true
	m.width = width
	return m
}

// Page returns the current zero-based page index.
func (m PagerModel) Page() int {
	return m.paginator.Page
}

// PageCount returns the number of pages currently shown.
func (m PagerModel) PageCount() int {
	return len(m.pages)
}

// Init implements tea.Model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "enter":
			// Advancing past the last page dismisses the dialogue.
			if m.paginator.OnLastPage() {
				m.quitting = true
				return m, tea.Quit
			}
			m.paginator.NextPage()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.sized {
			m.repaginate()
		}
		return m, nil
	}

	// Arrow and h/l navigation is handled by the paginator.
	var cmd tea.Cmd
	m.paginator, cmd = m.paginator.Update(msg)
	return m, cmd
}

// repaginate rebuilds the page list from the current width, keeping the
// reader on the same page index where possible.
func (m *PagerModel) repaginate() {
	m.pages = paginate.Pages(m.text, BoundForWidth(m.width))
	m.paginator.SetTotalPages(len(m.pages))
	if m.paginator.Page >= len(m.pages) {
		m.paginator.Page = len(m.pages) - 1
	}
}

// View implements tea.Model.
func (m PagerModel) View() string {
	if m.quitting {
		return ""
	}

	boxWidth := m.width - 4
	if boxWidth > defaultBoxWidth {
		boxWidth = defaultBoxWidth
	}
	if boxWidth < minBoxWidth {
		boxWidth = minBoxWidth
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.pages[m.paginator.Page])
	b.WriteString("\n\n")
	b.WriteString(m.paginator.View())

	box := boxStyle.Width(boxWidth).Render(b.String())
	help := helpStyle.Render("space/enter: next • ←/→: navigate • q: quit")

	return box + "\n" + help + "\n"
}
