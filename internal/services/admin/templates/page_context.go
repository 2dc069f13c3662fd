package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// Languages feeds the language switcher in the header.
	Languages []LanguageOption
}

func (p PageContext) documentLang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}
