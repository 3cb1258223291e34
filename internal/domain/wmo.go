package domain

// WMODescriptionKey returns the i18n lookup key for a WMO weather code
// description. Unknown codes map to "wmo_unknown".
func WMODescriptionKey(code int) string {
	switch code {
	case 0:
		return "wmo_clear_sky"
	case 1:
		return "wmo_mainly_clear"
	case 2:
		return "wmo_partly_cloudy"
	case 3:
		return "wmo_overcast"
	case 45:
		return "wmo_fog"
	case 48:
		return "wmo_rime_fog"
	case 51:
		return "wmo_light_drizzle"
	case 53:
		return "wmo_moderate_drizzle"
	case 55:
		return "wmo_dense_drizzle"
	case 56:
		return "wmo_light_freezing_drizzle"
	case 57:
		return "wmo_dense_freezing_drizzle"
	case 61:
		return "wmo_slight_rain"
	case 63:
		return "wmo_moderate_rain"
	case 65:
		return "wmo_heavy_rain"
	case 66:
		return "wmo_light_freezing_rain"
	case 67:
		return "wmo_heavy_freezing_rain"
	case 71:
		return "wmo_slight_snowfall"
	case 73:
		return "wmo_moderate_snowfall"
	case 75:
		return "wmo_heavy_snowfall"
	case 77:
		return "wmo_snow_grains"
	case 80:
		return "wmo_slight_rain_showers"
	case 81:
		return "wmo_moderate_rain_showers"
	case 82:
		return "wmo_violent_rain_showers"
	case 85:
		return "wmo_slight_snow_showers"
	case 86:
		return "wmo_heavy_snow_showers"
	case 95:
		return "wmo_thunderstorm"
	case 96:
		return "wmo_thunderstorm_slight_hail"
	case 99:
		return "wmo_thunderstorm_heavy_hail"
	default:
		return "wmo_unknown"
	}
}

// WMOEmoji returns the weather emoji for a WMO code, with night variants for
// the clear-to-partly-cloudy range. Unknown codes map to a globe.
func WMOEmoji(code int, isNight bool) string {
	switch code {
	case 0:
		if isNight {
			return "\U0001F311" // new moon
		}
		return "☀️" // sun
	case 1:
		if isNight {
			return "\U0001F314"
		}
		return "\U0001F324️"
	case 2:
		if isNight {
			return "\U0001F313"
		}
		return "⛅"
	case 3:
		return "☁️"
	case 45, 48:
		return "\U0001F32B️"
	case 51, 53, 55:
		return "\U0001F326️"
	case 56, 57:
		return "\U0001F328️"
	case 61, 63, 65:
		return "\U0001F327️"
	case 66, 67:
		return "\U0001F328️"
	case 71, 73, 75, 77:
		return "❄️"
	case 80, 81, 82:
		return "\U0001F326️"
	case 85, 86:
		return "\U0001F328️"
	case 95, 96, 99:
		return "⛈️"
	default:
		return "\U0001F310"
	}
}
