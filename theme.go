package mdview

// ThemeKey is the storage key holding the theme preference.
const ThemeKey = "deca-theme"

// ThemeAttr is the root element attribute the stylesheet reads the theme from.
const ThemeAttr = "data-theme"

// Theme is the light/dark display preference.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is applied when no preference has been persisted.
const DefaultTheme = ThemeLight

// ParseTheme returns the theme named by s.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", Errorf(EINVALID, "unknown theme %q", s)
}

// Opposite returns the other theme. Anything that is not dark toggles to dark.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
