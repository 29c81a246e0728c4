package models

// Theme is the colour scheme of the user interface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Validate() error {
	if t != ThemeLight && t != ThemeDark {
		return ErrInvalidTheme
	}
	return nil
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
