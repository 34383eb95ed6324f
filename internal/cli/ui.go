package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

// headerRow is the row index lipgloss tables pass to StyleFunc for the header
const headerRow = -1
