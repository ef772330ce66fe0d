package ui

import "charm.land/lipgloss/v2"

type Theme struct {
	Header       lipgloss.Style
	Subtitle     lipgloss.Style
	Status       lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelBorder  lipgloss.Style
	PanelBody    lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Accent       lipgloss.Style
	Pass         lipgloss.Style
	Fail         lipgloss.Style
	Pending      lipgloss.Style
	Muted        lipgloss.Style
	Info         lipgloss.Style

	// Grid cells. CellCenter marks the keyword column and is layered on top
	// of the row style.
	Cell       lipgloss.Style
	CellCenter lipgloss.Style
	Cursor     lipgloss.Style
	Keyword    lipgloss.Style
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "modern_arcade":
		return modernArcadeTheme()
	case "retro_terminal":
		return retroTerminalTheme()
	default:
		return pastelBakeryTheme()
	}
}

func pastelBakeryTheme() Theme {
	cream := lipgloss.Color("#FFF8EE")
	cocoa := lipgloss.Color("#5B3A29")
	strawberry := lipgloss.Color("#F48FB1")
	pistachio := lipgloss.Color("#9CD3A8")
	caramel := lipgloss.Color("#F2B872")
	lavender := lipgloss.Color("#C3A6E8")
	frosting := lipgloss.Color("#FCE4EC")
	plum := lipgloss.Color("#3A2433")

	return Theme{
		Header:      lipgloss.NewStyle().Background(strawberry).Foreground(plum).Bold(true).Padding(0, 1),
		Subtitle:    lipgloss.NewStyle().Foreground(lavender).Italic(true).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(frosting).Foreground(cocoa).Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Foreground(strawberry).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(caramel),
		PanelBody:   lipgloss.NewStyle().Foreground(cream),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(strawberry).
			Background(plum).
			Foreground(cream).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(strawberry).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(lavender).Bold(true),
		Pass:         lipgloss.NewStyle().Foreground(pistachio).Bold(true),
		Fail:         lipgloss.NewStyle().Foreground(strawberry).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(caramel),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("#B8A49A")),
		Info:         lipgloss.NewStyle().Foreground(lavender),
		Cell:         lipgloss.NewStyle().Foreground(cream),
		CellCenter:   lipgloss.NewStyle().Background(lipgloss.Color("#6D3B5A")).Bold(true),
		Cursor:       lipgloss.NewStyle().Foreground(plum).Background(caramel).Bold(true),
		Keyword:      lipgloss.NewStyle().Foreground(plum).Background(pistachio).Bold(true).Padding(0, 1),
	}
}

func modernArcadeTheme() Theme {
	amber := lipgloss.Color("#FFC857")
	mint := lipgloss.Color("#67F0A8")
	brick := lipgloss.Color("#FF6F91")
	ink := lipgloss.Color("#0E1420")
	slate := lipgloss.Color("#1B2740")
	powder := lipgloss.Color("#EAF2FF")
	blue := lipgloss.Color("#5EEBFF")
	border := lipgloss.Color("#4B5F8A")

	return Theme{
		Header: lipgloss.NewStyle().
			Background(ink).
			Foreground(powder).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CAAC6")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(slate).
			Foreground(powder).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		PanelBorder: lipgloss.NewStyle().
			Foreground(border),
		PanelBody: lipgloss.NewStyle().
			Foreground(powder),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Background(ink).
			Foreground(powder).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Accent:     lipgloss.NewStyle().Foreground(blue).Bold(true),
		Pass:       lipgloss.NewStyle().Foreground(mint).Bold(true),
		Fail:       lipgloss.NewStyle().Foreground(brick).Bold(true),
		Pending:    lipgloss.NewStyle().Foreground(amber),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9CAAC6")),
		Info:       lipgloss.NewStyle().Foreground(blue),
		Cell:       lipgloss.NewStyle().Foreground(powder),
		CellCenter: lipgloss.NewStyle().Background(slate).Bold(true),
		Cursor:     lipgloss.NewStyle().Foreground(ink).Background(blue).Bold(true),
		Keyword:    lipgloss.NewStyle().Foreground(ink).Background(mint).Bold(true).Padding(0, 1),
	}
}

func retroTerminalTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	forest := lipgloss.Color("#12301A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Header:      lipgloss.NewStyle().Background(deep).Foreground(glow).Padding(0, 1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(forest).Foreground(glow).Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Foreground(amber).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(forest),
		PanelBody:   lipgloss.NewStyle().Foreground(glow),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(amber).
			Background(deep).
			Foreground(glow).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(amber).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(lime).Bold(true),
		Pass:         lipgloss.NewStyle().Foreground(lime).Bold(true),
		Fail:         lipgloss.NewStyle().Foreground(red).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(amber),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		Info:         lipgloss.NewStyle().Foreground(lime),
		Cell:         lipgloss.NewStyle().Foreground(glow),
		CellCenter:   lipgloss.NewStyle().Background(forest).Bold(true),
		Cursor:       lipgloss.NewStyle().Foreground(deep).Background(amber).Bold(true),
		Keyword:      lipgloss.NewStyle().Foreground(deep).Background(lime).Bold(true).Padding(0, 1),
	}
}
