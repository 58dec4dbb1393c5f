// Package weathercode describes the WMO weather interpretation codes returned
// in the forecast weather_code field.
package weathercode

import "sort"

type Description struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var descriptions = map[int]Description{
	0:  {Code: 0, Description: "Céu limpo", Icon: "☀️"},
	1:  {Code: 1, Description: "Principalmente limpo", Icon: "🌤️"},
	2:  {Code: 2, Description: "Parcialmente nublado", Icon: "⛅"},
	3:  {Code: 3, Description: "Nublado", Icon: "☁️"},
	45: {Code: 45, Description: "Neblina", Icon: "🌫️"},
	48: {Code: 48, Description: "Neblina com geada", Icon: "🌫️"},
	51: {Code: 51, Description: "Garoa leve", Icon: "🌦️"},
	53: {Code: 53, Description: "Garoa moderada", Icon: "🌦️"},
	55: {Code: 55, Description: "Garoa intensa", Icon: "🌧️"},
	61: {Code: 61, Description: "Chuva leve", Icon: "🌧️"},
	63: {Code: 63, Description: "Chuva moderada", Icon: "🌧️"},
	65: {Code: 65, Description: "Chuva forte", Icon: "⛈️"},
	71: {Code: 71, Description: "Neve leve", Icon: "🌨️"},
	73: {Code: 73, Description: "Neve moderada", Icon: "❄️"},
	75: {Code: 75, Description: "Neve forte", Icon: "❄️"},
	77: {Code: 77, Description: "Granizo", Icon: "🧊"},
	80: {Code: 80, Description: "Pancadas de chuva leve", Icon: "🌦️"},
	81: {Code: 81, Description: "Pancadas de chuva moderada", Icon: "⛈️"},
	82: {Code: 82, Description: "Pancadas de chuva forte", Icon: "⛈️"},
	85: {Code: 85, Description: "Pancadas de neve leve", Icon: "🌨️"},
	86: {Code: 86, Description: "Pancadas de neve forte", Icon: "❄️"},
	95: {Code: 95, Description: "Tempestade", Icon: "⛈️"},
	96: {Code: 96, Description: "Tempestade com granizo leve", Icon: "⛈️"},
	99: {Code: 99, Description: "Tempestade com granizo forte", Icon: "⛈️"},
}

// Lookup returns the description for code and whether the code is known.
func Lookup(code int) (Description, bool) {
	d, ok := descriptions[code]
	return d, ok
}

// All returns every known code ordered by code.
func All() []Description {
	all := make([]Description, 0, len(descriptions))
	for _, d := range descriptions {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return all
}
