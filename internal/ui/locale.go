package ui

import "strings"

// Strings is the user-facing copy for one locale.
type Strings struct {
	Title        string
	Subtitle     string
	PanelTitle   string
	StatusLabel  string
	VersionLabel string
	Loading      string
	Failure      string
	HelpTitle    string
	HelpHint     string
	QuitHint     string
	CloseHint    string
}

var catalog = map[string]Strings{
	"hu": {
		Title:        "Finance App",
		Subtitle:     "Személyes pénzügyi elemző alkalmazás",
		PanelTitle:   "Kapcsolat",
		StatusLabel:  "API Státusz",
		VersionLabel: "API verzió",
		Loading:      "loading...",
		Failure:      "error - API nem elérhető",
		HelpTitle:    "Súgó",
		HelpHint:     "Súgó",
		QuitHint:     "Kilépés",
		CloseHint:    "esc: bezárás",
	},
	"en": {
		Title:        "Finance App",
		Subtitle:     "Personal finance analysis app",
		PanelTitle:   "Connection",
		StatusLabel:  "API Status",
		VersionLabel: "API version",
		Loading:      "loading...",
		Failure:      "error - API unavailable",
		HelpTitle:    "Help",
		HelpHint:     "Help",
		QuitHint:     "Quit",
		CloseHint:    "esc: close",
	},
}

// DefaultLocale is Hungarian, the language of the web frontend.
const DefaultLocale = "hu"

// StringsFor returns the copy for locale, falling back to DefaultLocale.
func StringsFor(locale string) Strings {
	if s, ok := catalog[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return s
	}
	return catalog[DefaultLocale]
}
