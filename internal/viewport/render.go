package viewport

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/squelette/internal/anatomy"
	"github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/ui/theme"
)

const (
	markerRune  = '●'
	pendingRune = '◉'
	boneRune    = '·'
)

// Marker is the per-anchor overlay supplied by the quiz screen.
type Marker struct {
	Token   quiz.Token
	Pending bool
	// Caption is drawn to the right of the marker when there is room.
	Caption string
}

// TokenColor maps a quiz token to its marker color.
func TokenColor(t quiz.Token) color.Color {
	switch t {
	case quiz.TokenCorrect:
		return theme.Success
	case quiz.TokenIncorrect:
		return theme.Error
	case quiz.TokenAssigned:
		return theme.Assigned
	case quiz.TokenHovered:
		return theme.Hover
	default:
		return theme.Neutral
	}
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBone
	cellMarker
	cellCaption
)

type cell struct {
	r     rune
	kind  cellKind
	color color.Color
}

// Render draws the model backdrop and the anchor markers into a
// width x height block. Markers do not depend on the model, so a nil or
// failed model still yields a usable viewport.
func Render(model *Model, anchors []anatomy.Anchor, markers map[string]Marker, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}

	pts := Project(anchors, width, height)

	if model != nil && model.Source == SourcePlaceholder {
		for _, b := range model.Bones {
			from, ok1 := pts[b.From]
			to, ok2 := pts[b.To]
			if !ok1 || !ok2 {
				continue
			}
			for _, p := range line(from, to) {
				grid[p.Row][p.Col] = cell{r: boneRune, kind: cellBone, color: theme.Bone}
			}
		}
	}

	for _, a := range anchors {
		p, ok := pts[a.ID]
		if !ok {
			continue
		}
		m := markers[a.ID]
		r := markerRune
		if m.Pending {
			r = pendingRune
		}
		grid[p.Row][p.Col] = cell{r: r, kind: cellMarker, color: TokenColor(m.Token)}
	}

	// Captions go after all markers so they never hide one.
	for _, a := range anchors {
		p, ok := pts[a.ID]
		m := markers[a.ID]
		if !ok || m.Caption == "" {
			continue
		}
		col := p.Col + 2
		for _, r := range m.Caption {
			if col >= width || grid[p.Row][col].kind == cellMarker {
				break
			}
			grid[p.Row][col] = cell{r: r, kind: cellCaption, color: TokenColor(m.Token)}
			col++
		}
	}

	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of cells sharing a color in one pass.
func renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	var runColor color.Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == nil {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
		}
		run.Reset()
	}

	for _, c := range row {
		if c.color != runColor {
			flush()
			runColor = c.color
		}
		run.WriteRune(c.r)
	}
	flush()
	return b.String()
}

// Status returns a one-line description of the model for the status bar.
func Status(m *Model) string {
	switch {
	case m == nil:
		return "Chargement du modèle…"
	case m.Source == SourceRemote:
		return "Modèle 3D chargé"
	case m.Source == SourcePlaceholder && m.FallbackReason != "":
		return "Modèle indisponible, squelette simplifié"
	case m.Source == SourcePlaceholder:
		return "Squelette simplifié"
	default:
		return "Aucun modèle"
	}
}
