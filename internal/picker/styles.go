package picker

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(carouselWidth).
			Align(lipgloss.Center)

	valueStyle = lipgloss.NewStyle().
			Width(carouselWidth).
			Align(lipgloss.Center)

	focusedValueStyle = valueStyle.
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205"))

	dimStyle = valueStyle.
			Foreground(lipgloss.Color("240"))

	radioStyle = lipgloss.NewStyle().
			PaddingRight(2)

	focusedRadioStyle = radioStyle.
				Foreground(lipgloss.Color("205"))

	groupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// carouselWidth is the rendered width of one carousel column.
const carouselWidth = 6
