package styleadapt

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adapt resolves c against the terminal's detected color profile (env-var
// based: $COLORTERM/$TERM/$NO_COLOR, the same checks termenv itself makes)
// and returns the bare SGR parameter sequence, without the surrounding
// "\x1b[" and "m". Callers append it to the SGR writer's own accumulated
// parameters rather than emitting a second, redundant escape.
func Adapt(c lipgloss.Color, background bool) string {
	profile := termenv.EnvColorProfile()
	return profile.Color(string(c)).Sequence(background)
}
