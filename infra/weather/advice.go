package weather

// rainCodes are the WMO codes treated as rain for advice purposes.
var rainCodes = map[int]bool{
	61: true, 63: true, 65: true,
	80: true, 81: true, 82: true,
}

// Advice turns an observation into a one-line packing suggestion.
// Rain beats heat beats cold.
func Advice(cur Current) string {
	switch {
	case rainCodes[cur.Code]:
		return "It's rainy — carry an umbrella or raincoat."
	case cur.Temperature > 30:
		return "It's warm — carry sunscreen, sunglasses, and a water bottle."
	case cur.Temperature < 15:
		return "It's cool — carry a light jacket."
	default:
		return "Weather looks pleasant — enjoy your trip!"
	}
}
