package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ███╗   ██╗ █████╗ ███████╗██╗   ██╗███████╗██████╗  █████╗
 ████╗ ████║██╔══██╗████╗  ██║██╔══██╗██╔════╝██║   ██║██╔════╝██╔══██╗██╔══██╗
 ██╔████╔██║███████║██╔██╗ ██║███████║███████╗██║   ██║█████╗  ██║  ██║███████║
 ██║╚██╔╝██║██╔══██║██║╚██╗██║██╔══██║╚════██║╚██╗ ██╔╝██╔══╝  ██║  ██║██╔══██║
 ██║ ╚═╝ ██║██║  ██║██║ ╚████║██║  ██║███████║ ╚████╔╝ ███████╗██████╔╝██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝  ╚═══╝  ╚══════╝╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "M A N A S V E D A"

// RenderBanner returns the MANASVEDA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 84 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 84 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
