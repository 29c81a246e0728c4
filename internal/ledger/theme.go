package ledger

import (
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/rs/zerolog/log"
)

// The theme is stored as the plain string, not JSON encoded.
func (l *Ledger) loadTheme() error {
	data, ok, err := l.store.Get(KeyTheme)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	theme := models.Theme(data)
	if err := theme.Validate(); err != nil {
		log.Warn().Str("theme", string(data)).Msg("Ignoring unknown theme")
		return nil
	}

	l.theme = theme
	return nil
}

func (l *Ledger) saveTheme(theme models.Theme) error {
	if err := l.store.Set(KeyTheme, []byte(theme)); err != nil {
		return l.persistenceFailed("save theme", err)
	}

	l.theme = theme
	return nil
}

// Theme returns the colour scheme of the user interface.
func (l *Ledger) Theme() models.Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.theme
}

// SetTheme sets the colour scheme of the user interface.
func (l *Ledger) SetTheme(theme models.Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.saveTheme(theme)
}

// ToggleTheme switches between the light and the dark theme and returns
// the new one.
func (l *Ledger) ToggleTheme() (models.Theme, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.theme.Toggle()
	if err := l.saveTheme(next); err != nil {
		return l.theme, err
	}

	return next, nil
}
