package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawFrame renders one snapshot into the screen buffer, scaling the
// virtual playfield down to the current terminal size.
func drawFrame(s *core.Screen, snap game.Snapshot, field config.FieldConfig) {
	s.Clear()

	sx := float64(s.Width()) / field.Width
	sy := float64(s.Height()) / field.Height

	for _, o := range snap.Objects {
		r := core.NewRect(
			int(o.X*sx),
			int(o.Y*sy),
			core.Max(1, int(o.Size*sx)),
			core.Max(1, int(o.Size*sy)),
		)
		s.DrawRect(r, '▓', core.ColorBrightRed)
	}

	p := core.NewRect(
		int(snap.Player.X*sx),
		int(snap.Player.Y*sy),
		core.Max(1, int(snap.Player.Width*sx)),
		core.Max(1, int(snap.Player.Height*sy)),
	)
	s.DrawRect(p, '█', core.ColorBrightCyan)

	switch snap.State {
	case game.StateReady:
		drawOverlay(s, core.ColorBrightYellow,
			"S K Y F A L L",
			"",
			"dodge the falling squares",
			"",
			"enter  start",
			"q      quit",
		)
	case game.StatePaused:
		drawOverlay(s, core.ColorBrightBlue,
			"PAUSED",
			"",
			"double-press both arrows",
			"or esc to resume",
		)
	case game.StateGameOver:
		drawOverlay(s, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("score %d", snap.Score),
			"",
			"r  play again",
			"q  quit",
		)
	}
}

// drawOverlay draws a centered bordered panel over the playfield.
func drawOverlay(s *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 6
	h := len(lines) + 4

	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		s.DrawTextCenteredColored(box.Y+2+i, l, c)
	}
}

// statusLine builds the single info row below the playfield.
func statusLine(snap game.Snapshot, highScore int, bar progress.Model, armed bool) string {
	var b strings.Builder
	b.WriteString(scoreStyle.Render(fmt.Sprintf(" score %d", snap.Score)))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  best %d  ", highScore)))
	if armed {
		b.WriteString(bar.ViewAs(snap.ComboProgress / game.ComboProgressMax))
		b.WriteString(" ")
	}
	b.WriteString(hintStyle.Render(stateHint(snap.State)))
	return b.String()
}

func stateHint(st game.State) string {
	switch st {
	case game.StateReady:
		return "enter to start"
	case game.StateActive:
		return "double-press both arrows to pause"
	case game.StatePaused:
		return "esc to resume"
	case game.StateGameOver:
		return "r to restart"
	}
	return ""
}
