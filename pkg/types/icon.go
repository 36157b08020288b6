package types

import "strings"

// Icon is an entry of the fixed icon catalogue. Token is what gets stored on
// a Device; Glyph is used for terminal rendering.
type Icon struct {
	Token string
	Title string
	Alias string
	Glyph string
}

// Icon tokens
const (
	IconIphone     = "Iphone.png"
	IconIphoneNew  = "IphoneNew.png"
	IconAirpods    = "Airpods.png"
	IconAirpodsMax = "AirpodsMax.png"
	IconAirpodsPro = "AirpodsPro.png"

	DefaultIcon = IconIphone
)

var icons = []Icon{
	{Token: IconIphone, Title: "iPhone", Alias: "iphone", Glyph: "📱"},
	{Token: IconIphoneNew, Title: "iPhone (New)", Alias: "iphone-new", Glyph: "📱"},
	{Token: IconAirpods, Title: "AirPods", Alias: "airpods", Glyph: "🎧"},
	{Token: IconAirpodsMax, Title: "AirPods Max", Alias: "airpods-max", Glyph: "🎧"},
	{Token: IconAirpodsPro, Title: "AirPods Pro", Alias: "airpods-pro", Glyph: "🎧"},
}

// Icons returns the catalogue in display order
func Icons() []Icon {
	out := make([]Icon, len(icons))
	copy(out, icons)
	return out
}

// LookupIcon resolves a token exactly, or a token/alias/title case-insensitively
func LookupIcon(s string) (Icon, bool) {
	s = strings.TrimSpace(s)
	for _, icon := range icons {
		if icon.Token == s {
			return icon, true
		}
	}
	for _, icon := range icons {
		if strings.EqualFold(icon.Token, s) || strings.EqualFold(icon.Alias, s) || strings.EqualFold(icon.Title, s) {
			return icon, true
		}
	}
	return Icon{}, false
}

// IconFor returns the catalogue entry for a stored token. Unknown tokens
// (written by a newer version) get a generic entry instead of failing.
func IconFor(token string) Icon {
	if icon, ok := LookupIcon(token); ok {
		return icon
	}
	return Icon{Token: token, Title: token, Glyph: "•"}
}
