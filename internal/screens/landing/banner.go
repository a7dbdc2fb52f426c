package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

const bannerArt = `
███████╗ ██████╗  ██████╗ ██████╗ ██╗   ██╗███████╗██████╗ ███████╗███████╗
██╔════╝██╔═══██╗██╔═══██╗██╔══██╗██║   ██║██╔════╝██╔══██╗██╔════╝██╔════╝
█████╗  ██║   ██║██║   ██║██║  ██║██║   ██║█████╗  ██████╔╝███████╗█████╗
██╔══╝  ██║   ██║██║   ██║██║  ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗╚════██║██╔══╝
██║     ╚██████╔╝╚██████╔╝██████╔╝ ╚████╔╝ ███████╗██║  ██║███████║███████╗
╚═╝      ╚═════╝  ╚═════╝ ╚═════╝   ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "F O O D V E R S E"

// bannerWidth is the column count of bannerArt.
const bannerWidth = 75

// RenderBanner returns the FOODVERSE banner in the primary colour, or a
// compact fallback when width cannot fit the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
