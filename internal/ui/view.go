package ui

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"unicode"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

type applyMsg struct {
	fn func(*Root)
}

type boardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Next  key.Binding
	Erase key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Next, k.Erase, k.Help, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Enter, k.Next}, {k.Erase, k.Help, k.Quit}}
}

const sidePanelWidth = 44

type Root struct {
	theme        Theme
	ascii        bool
	debug        bool
	ctrl         Controller
	styleVariant string

	mu      sync.Mutex
	program *tea.Program
	running bool

	queue         chan func()
	dispatchStart sync.Once

	layout LayoutMode
	cols   int
	rows   int

	board       BoardState
	cursor      int
	helpOpen    bool
	statusFlash string

	// Screen position of the first grid row, refreshed on every render and
	// used for mouse hit testing.
	gridX, gridY, gridW int

	help     help.Model
	keymap   boardKeyMap
	timerBar progress.Model
	doneBar  progress.Model
	markdown map[int]*glamour.TermRenderer
	logger   *clog.Logger

	lastInputEvent string
}

type Options struct {
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
	// Logger receives panics and layout debugging. Defaults to stderr.
	Logger *clog.Logger
}

func New(opts Options) *Root {
	logger := opts.Logger
	if logger == nil {
		logger = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "secretword-ui", Level: clog.WarnLevel})
	}
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	styleVariant := normalizeStyleVariant(opts.StyleVariant)
	theme := ThemeForVariant(styleVariant)

	timerBar := progress.New(
		progress.WithWidth(20),
		progress.WithColors(lipgloss.Color("#FF6F91"), lipgloss.Color("#F2B872"), lipgloss.Color("#79E6A6")),
		progress.WithScaled(true),
		progress.WithoutPercentage(),
	)
	doneBar := progress.New(
		progress.WithWidth(20),
		progress.WithColors(lipgloss.Color("#C3A6E8"), lipgloss.Color("#9CD3A8")),
		progress.WithScaled(true),
		progress.WithoutPercentage(),
	)

	r := &Root{
		theme:        theme,
		ascii:        opts.ASCIIOnly,
		debug:        opts.Debug,
		styleVariant: styleVariant,
		queue:        make(chan func(), 256),
		layout:       LayoutWide,
		cols:         120,
		rows:         30,
		help:         h,
		timerBar:     timerBar,
		doneBar:      doneBar,
		markdown:     map[int]*glamour.TermRenderer{},
		logger:       logger,
	}
	r.keymap = boardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select/Check")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next row")),
		Erase: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "Erase")),
		Help:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("Ctrl+Q", "Quit")),
	}
	if r.ascii {
		r.keymap.Up.SetHelp("Up", "Up")
		r.keymap.Down.SetHelp("Down", "Down")
		r.keymap.Erase.SetHelp("Bksp", "Erase")
	}
	return r
}

func (r *Root) Init() tea.Cmd {
	return nil
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		prev := r.layout
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		if r.layout != prev {
			r.logger.Debug("layout.changed", "from", prev.String(), "to", r.layout.String(), "cols", r.cols, "rows", r.rows)
		}
		return r, nil
	case applyMsg:
		if msg.fn != nil {
			msg.fn(r)
		}
		return r, nil
	case tea.PasteMsg:
		return r.handlePaste(msg)
	case tea.MouseClickMsg:
		return r.handleMouseClick(msg)
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			msg := "UI recovered from a rendering panic. Check logs."
			view = tea.NewView(r.theme.Fail.Width(width).Render(trimForWidth(msg, max(1, width-1))))
		}
	}()

	if r.cols < 1 {
		r.cols = 120
	}
	if r.rows < 1 {
		r.rows = 30
	}

	base := r.renderBoard()
	if r.helpOpen {
		base = composeOverlay(base, r.renderHelp(), r.cols, r.rows)
	}
	v := tea.NewView(base)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

func (r *Root) SetBoard(b BoardState) {
	b.Rows = append([]RowView(nil), b.Rows...)
	r.apply(func(m *Root) {
		prevActive := m.board.ActiveID
		m.board = b
		if b.ActiveID != 0 && b.ActiveID != prevActive {
			if i := b.rowIndex(b.ActiveID); i >= 0 {
				m.cursor = i
			}
		}
		if m.cursor >= len(b.Rows) {
			m.cursor = max(0, len(b.Rows)-1)
		}
	})
}

func (r *Root) FlashStatus(msg string) {
	r.apply(func(m *Root) {
		m.statusFlash = msg
	})
}

func (r *Root) apply(fn func(*Root)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	p := r.program
	running := r.running
	if !running || p == nil {
		fn(r)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(applyMsg{fn: fn})
}

// dispatchController hands fn to a single worker goroutine. Calls run in the
// order the events arrived and never on the event loop, since the controller
// pushes state back through apply.
func (r *Root) dispatchController(fn func(Controller)) {
	if fn == nil || r.ctrl == nil {
		return
	}
	ctrl := r.ctrl
	r.dispatchStart.Do(func() { go r.dispatchLoop() })
	r.queue <- func() { fn(ctrl) }
}

func (r *Root) dispatchLoop() {
	for fn := range r.queue {
		fn()
	}
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q", msg.Code, msg.Mod, msg.Text))

	if key.Matches(msg, r.keymap.Quit) {
		r.dispatchController(func(c Controller) { c.OnQuit() })
		return r, nil
	}
	if key.Matches(msg, r.keymap.Help) {
		r.helpOpen = !r.helpOpen
		return r, nil
	}
	if r.helpOpen {
		if msg.Code == tea.KeyEsc || msg.Code == tea.KeyEnter {
			r.helpOpen = false
		}
		return r, nil
	}

	switch {
	case key.Matches(msg, r.keymap.Up):
		r.moveCursor(-1)
		return r, nil
	case key.Matches(msg, r.keymap.Down):
		r.moveCursor(1)
		return r, nil
	case key.Matches(msg, r.keymap.Next):
		r.selectNextOpenRow()
		return r, nil
	case key.Matches(msg, r.keymap.Enter):
		r.activateCursor()
		return r, nil
	case key.Matches(msg, r.keymap.Erase):
		if r.board.ActiveID != 0 {
			r.dispatchController(func(c Controller) { c.OnBackspace() })
		}
		return r, nil
	}

	if msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return r, nil
	}
	if text := lettersOnly(msg.Text); text != "" && r.board.ActiveID != 0 {
		r.dispatchController(func(c Controller) { c.OnType(text) })
	}
	return r, nil
}

func (r *Root) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("paste:%d", len(msg.Content)))
	if r.helpOpen || r.board.ActiveID == 0 {
		return r, nil
	}
	text := lettersOnly(msg.Content)
	if text == "" {
		return r, nil
	}
	r.dispatchController(func(c Controller) { c.OnType(text) })
	return r, nil
}

func (r *Root) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	r.recordInputEvent(fmt.Sprintf("mouse_click:%d,%d button:%v", mouse.X, mouse.Y, mouse.Button))

	if mouse.Button != tea.MouseLeft {
		return r, nil
	}
	if r.helpOpen {
		r.helpOpen = false
		return r, nil
	}
	i, ok := r.rowAt(mouse.X, mouse.Y)
	if !ok {
		return r, nil
	}
	r.cursor = i
	row := r.board.Rows[i]
	if row.Selectable() {
		id := row.ID
		r.dispatchController(func(c Controller) { c.OnSelectRow(id) })
	}
	return r, nil
}

func (r *Root) rowAt(x, y int) (int, bool) {
	if r.layout == LayoutTooSmall || r.gridW <= 0 {
		return 0, false
	}
	i := y - r.gridY
	if i < 0 || i >= len(r.board.Rows) {
		return 0, false
	}
	if x < r.gridX || x >= r.gridX+r.gridW {
		return 0, false
	}
	return i, true
}

func (r *Root) moveCursor(delta int) {
	if len(r.board.Rows) == 0 {
		return
	}
	r.cursor = wrapIndex(r.cursor+delta, len(r.board.Rows))
}

func (r *Root) activateCursor() {
	if r.cursor < 0 || r.cursor >= len(r.board.Rows) {
		return
	}
	row := r.board.Rows[r.cursor]
	switch {
	case row.ID == r.board.ActiveID:
		r.dispatchController(func(c Controller) { c.OnSubmit() })
	case row.Selectable():
		id := row.ID
		r.dispatchController(func(c Controller) { c.OnSelectRow(id) })
	default:
		r.statusFlash = fmt.Sprintf("Row %d is %s", row.ID, row.Status)
	}
}

// selectNextOpenRow moves to the next unselected row after the cursor and
// opens it.
func (r *Root) selectNextOpenRow() {
	n := len(r.board.Rows)
	for step := 1; step <= n; step++ {
		i := wrapIndex(r.cursor+step, n)
		row := r.board.Rows[i]
		if row.Status != RowUnselected {
			continue
		}
		r.cursor = i
		id := row.ID
		r.dispatchController(func(c Controller) { c.OnSelectRow(id) })
		return
	}
}

func (r *Root) renderBoard() string {
	w, h := r.cols, r.rows
	mode := DetermineLayoutMode(w, h)
	r.layout = mode

	if mode == LayoutTooSmall {
		r.gridW = 0
		msg := []string{
			"Terminal too small",
			fmt.Sprintf("Current: %dx%d", w, h),
			"Minimum: 100x24 (or 60x30 stacked)",
			"Resize the terminal to continue.",
		}
		panel := r.drawPanel("Resize Required", msg, min(60, w), min(8, h))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
	}

	header := r.headerText()
	status := r.statusText()
	headerH := lipgloss.Height(header)
	bodyH := max(3, h-headerH-1)

	gridLines := r.gridLines()
	gridW := 0
	for _, line := range gridLines {
		gridW = max(gridW, ansi.StringWidth(line))
	}
	boardW := gridW + 4
	boardH := len(gridLines) + 2

	var body string
	if mode == LayoutWide {
		boardW = min(boardW, max(20, w-sidePanelWidth))
		sideW := max(sidePanelWidth, w-boardW)
		board := r.drawPanel("Board", gridLines, boardW, bodyH)
		side := r.drawPanel(r.sideTitle(), r.sideLines(sideW-4), sideW, bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, board, side)
	} else {
		boardW = w
		board := r.drawPanel("Board", gridLines, boardW, boardH)
		side := r.drawPanel(r.sideTitle(), r.sideLines(w-4), w, max(3, bodyH-boardH))
		body = lipgloss.JoinVertical(lipgloss.Left, board, side)
	}
	r.gridX, r.gridY, r.gridW = 2, headerH+1, boardW-4

	return header + "\n" + body + "\n" + status
}

func (r *Root) headerText() string {
	width := max(1, r.cols)
	title := firstNonEmptyStr(r.board.Title, "secretword")
	if r.debug {
		title = fmt.Sprintf("%s | %dx%d %v", title, r.cols, r.rows, r.layout)
	}
	out := r.theme.Header.Width(width).Render(trimForWidth(title, width-2))
	if sub := strings.TrimSpace(r.board.Subtitle); sub != "" {
		out += "\n" + r.theme.Subtitle.Width(width).Render(trimForWidth(sub, width-2))
	}
	return out
}

func (r *Root) statusText() string {
	r.help.SetWidth(max(1, r.cols-2))
	keys := r.help.View(r.keymap)
	if keys == "" {
		keys = "↑/↓ Move  Enter Select/Check  Tab Next row  F1 Help  Ctrl+Q Quit"
	}
	if r.statusFlash != "" {
		keys += " | " + r.statusFlash
	}
	keys = trimForWidth(keys, max(1, r.cols-1))
	return r.theme.Status.Width(max(1, r.cols)).Render(keys)
}

func (r *Root) gridLines() []string {
	lines := make([]string, 0, len(r.board.Rows))
	for i, row := range r.board.Rows {
		lines = append(lines, r.gridLine(row, i == r.cursor))
	}
	return lines
}

func (r *Root) gridLine(row RowView, cursor bool) string {
	style := r.rowStyle(row.Status)
	marker := "  "
	if cursor {
		marker = "▸ "
		if r.ascii {
			marker = "> "
		}
	}
	label := fmt.Sprintf("%2d", row.ID)
	if cursor {
		label = r.theme.Cursor.Render(label)
	} else {
		label = style.Render(label)
	}

	var b strings.Builder
	b.WriteString(marker + label + " ")
	revealed := []rune(row.Revealed)
	for col := 0; col < r.board.TotalColumns; col++ {
		glyph := " "
		if off := col - row.Start; off >= 0 && off < row.Length {
			glyph = r.blankGlyph(row.Status)
			if off < len(revealed) {
				glyph = string(revealed[off])
			}
		}
		st := style
		if col == r.board.CenterColumn {
			st = st.Inherit(r.theme.CellCenter)
		}
		b.WriteString(st.Render(glyph + " "))
	}
	return b.String()
}

func (r *Root) blankGlyph(status RowStatus) string {
	if r.ascii {
		if status == RowLocked {
			return "x"
		}
		return "_"
	}
	if status == RowLocked {
		return "▒"
	}
	return "·"
}

func (r *Root) rowStyle(status RowStatus) lipgloss.Style {
	switch status {
	case RowSolved:
		return r.theme.Pass
	case RowLocked:
		return r.theme.Fail
	case RowActive:
		return r.theme.Accent
	default:
		return r.theme.Cell
	}
}

func (r *Root) sideTitle() string {
	switch {
	case r.board.Complete:
		return "Reward"
	case r.board.ActiveID != 0:
		return "Question"
	default:
		return "Welcome"
	}
}

func (r *Root) sideLines(width int) []string {
	width = max(10, width)
	var lines []string
	add := func(s string) { lines = append(lines, wrapText(s, width)...) }
	blank := func() { lines = append(lines, "") }

	switch {
	case r.board.Complete:
		add(r.board.Reward.Headline)
		blank()
		lines = append(lines, r.keywordLine())
		blank()
		add(r.board.Reward.Footer)
	case r.board.ActiveID != 0:
		lines = append(lines, r.theme.PanelTitle.Render(trimForWidth(r.board.QuestionLabel, width)))
		add(r.board.Question)
		blank()
		lines = append(lines, r.countdownLine(width))
		blank()
		lines = append(lines, r.inputLine(width))
	default:
		lines = append(lines, r.renderMarkdown(r.board.Welcome, width)...)
		blank()
		add(r.board.Instruction)
		blank()
		lines = append(lines, r.theme.Info.Render(trimForWidth(r.board.Prompt, width)))
	}

	if fb := r.feedbackLine(width); fb != "" {
		blank()
		lines = append(lines, fb)
	}
	blank()
	lines = append(lines, trimForWidth(r.board.Progress, width))
	lines = append(lines, r.progressBar(width))
	return lines
}

func (r *Root) countdownLine(width int) string {
	ratio := 0.0
	if r.board.Duration > 0 {
		ratio = float64(r.board.Remaining) / float64(r.board.Duration)
	}
	icon := "⏱"
	if r.ascii {
		icon = "T-"
	}
	label := fmt.Sprintf(" %s %2ds", icon, r.board.Remaining)
	bar := r.timerBar
	bar.SetWidth(max(8, width-ansi.StringWidth(label)))
	style := r.theme.Pending
	if r.board.Remaining <= 5 {
		style = r.theme.Fail
	}
	return bar.ViewAs(ratio) + style.Render(label)
}

func (r *Root) inputLine(width int) string {
	prompt := r.theme.Accent.Render("> ")
	if r.board.Pending == "" {
		return prompt + r.theme.Muted.Render(trimForWidth(r.board.Placeholder, width-2))
	}
	caret := "█"
	if r.ascii {
		caret = "_"
	}
	return prompt + trimForWidth(r.board.Pending+caret, width-2)
}

func (r *Root) feedbackLine(width int) string {
	text := trimForWidth(r.board.Feedback, width)
	switch r.board.FeedbackKind {
	case FeedbackCorrect:
		return r.theme.Pass.Render(text)
	case FeedbackWrong, FeedbackTimeout:
		return r.theme.Fail.Render(text)
	case FeedbackEmpty:
		return r.theme.Pending.Render(text)
	}
	return ""
}

func (r *Root) keywordLine() string {
	parts := make([]string, 0, len(r.board.Reward.Keyword))
	for _, ch := range r.board.Reward.Keyword {
		parts = append(parts, string(ch))
	}
	return r.theme.Keyword.Render(strings.Join(parts, " "))
}

func (r *Root) progressBar(width int) string {
	ratio := 0.0
	if r.board.Total > 0 {
		ratio = float64(r.board.Solved) / float64(r.board.Total)
	}
	bar := r.doneBar
	bar.SetWidth(max(8, width))
	return bar.ViewAs(ratio)
}

func (r *Root) renderMarkdown(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if r.ascii {
		return wrapText(text, width)
	}
	renderer, ok := r.markdown[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderer = nil
		}
		r.markdown[width] = renderer
	}
	if renderer == nil {
		return wrapText(text, width)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return wrapText(text, width)
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func (r *Root) renderHelp() string {
	width := min(64, max(30, r.cols-8))
	body := strings.Join(r.renderMarkdown(helpMarkdown, width-6), "\n")
	return r.theme.Overlay.Width(width).Render(r.theme.OverlayTitle.Render("Help") + "\n\n" + body)
}

const helpMarkdown = `Pick a numbered row to open its question. The countdown starts right away.

* **↑/↓** move, **Enter** opens the row under the cursor
* Type the answer, **Enter** checks it, **Backspace** erases
* **Tab** jumps to the next open row
* A wrong answer keeps the row open; running out of time locks it
* Solve every row to reveal the keyword in the highlighted column

Press **F1** or **Esc** to close.`

func (r *Root) drawPanel(title string, lines []string, width, height int) string {
	width = max(4, width)
	height = max(3, height)
	innerW := width - 2
	innerH := height - 2

	h := "─"
	v := "│"
	tl := "┌"
	tr := "┐"
	bl := "└"
	br := "┘"
	if r.ascii {
		h = "-"
		v = "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}

	top := tl + strings.Repeat(h, innerW) + tr
	if title != "" && innerW > 2 {
		t := " " + title + " "
		runes := []rune(top)
		start := 1
		for i, ch := range []rune(t) {
			pos := start + i
			if pos >= len(runes)-1 {
				break
			}
			runes[pos] = ch
		}
		top = string(runes)
	}

	out := make([]string, 0, height)
	out = append(out, r.theme.PanelBorder.Render(top))
	for row := 0; row < innerH; row++ {
		line := ""
		if row < len(lines) {
			line = " " + lines[row]
		}
		line = padANSI(line, innerW)
		out = append(out, r.theme.PanelBorder.Render(v)+r.theme.PanelBody.Render(line)+r.theme.PanelBorder.Render(v))
	}
	out = append(out, r.theme.PanelBorder.Render(bl+strings.Repeat(h, innerW)+br))
	return strings.Join(out, "\n")
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if unicode.IsLetter(ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func firstNonEmptyStr(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func wrapText(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(max(1, width)).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

// padANSI pads or cuts a styled line to exactly width cells.
func padANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func composeOverlay(base, overlay string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	base = ansi.Strip(base)
	overlay = ansi.Strip(overlay)
	baseLines := strings.Split(base, "\n")
	if len(baseLines) < rows {
		pad := make([]string, rows-len(baseLines))
		baseLines = append(baseLines, pad...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padANSI(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(overlay, "\n"), "\n")
	ow := 1
	for _, line := range overlayLines {
		ow = max(ow, ansi.StringWidth(line))
	}
	ow = min(ow, cols)
	oh := min(len(overlayLines), rows)
	startRow := (rows - oh) / 2
	startCol := max(0, (cols-ow)/2)

	for i := 0; i < oh; i++ {
		row := startRow + i
		left := ansi.Truncate(baseLines[row], startCol, "")
		mid := padANSI(overlayLines[i], ow)
		right := ansi.TruncateLeft(baseLines[row], startCol+ow, "")
		baseLines[row] = left + mid + right
	}
	return strings.Join(baseLines[:rows], "\n")
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(ansi.Strip(s), "\n", " ")
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(s, width, "…")
}

func normalizeStyleVariant(v string) string {
	switch strings.TrimSpace(v) {
	case "pastel_bakery", "retro_terminal", "modern_arcade":
		return strings.TrimSpace(v)
	default:
		return "pastel_bakery"
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	if r.statusFlash == "" {
		r.statusFlash = "Recovered UI panic"
	}
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"message_type", msgType,
		"layout", r.layout,
		"cols", r.cols,
		"rows", r.rows,
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*Root)(nil)
var _ View = (*Root)(nil)
