package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/squelette/internal/ui/theme"
)

// MascotVariant selects which skull art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No attempt yet
	MascotCelebrating                      // Last score in the top tier
	MascotSad                              // Last score below 40
)

const mascotIdle = ` .───. 
( ◉ ◉ )
 │ ▽ │ 
 ╰┬┬┬╯ `

const mascotCelebrating = ` .───. 
( ★ ★ )
 │ ▽ │ 
 ╰┬┬┬╯ 
  \o/  `

const mascotSad = ` .───. 
( ╥ ╥ )
 │ ▽ │ 
 ╰┬┬┬╯ `

// MascotFor picks the variant for the last score, or idle when there is
// none.
func MascotFor(score int, played bool) MascotVariant {
	switch {
	case !played:
		return MascotIdle
	case score >= 90:
		return MascotCelebrating
	case score < 40:
		return MascotSad
	default:
		return MascotIdle
	}
}

// RenderMascot returns the styled art for the variant.
func RenderMascot(v MascotVariant) string {
	switch v {
	case MascotCelebrating:
		return lipgloss.NewStyle().Foreground(theme.Hover).Bold(true).Render(mascotCelebrating)
	case MascotSad:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(mascotSad)
	default:
		return lipgloss.NewStyle().Foreground(theme.Bone).Render(mascotIdle)
	}
}
