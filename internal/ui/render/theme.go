package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	LabelFg     tcell.Color
	FieldBg     tcell.Color
	FieldFg     tcell.Color
	HintFg      tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	InactiveBg  tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	ErrorFg     tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	ProgressFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		LabelFg:     tcell.ColorDefault,
		FieldBg:     tcell.Color236,
		FieldFg:     tcell.Color252,
		HintFg:      tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		InactiveBg:  tcell.Color238,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		ErrorFg:     tcell.ColorRed,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		ProgressFg:  tcell.Color33,
	}
}
