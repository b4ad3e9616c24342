// Package weather fetches current conditions from the Open-Meteo API and
// folds its numeric weather codes into four coarse categories.
package weather

// Category is one of the four coarse buckets the recommendation feature
// understands.
type Category string

const (
	Clear  Category = "Clear"
	Clouds Category = "Clouds"
	Rain   Category = "Rain"
	Snow   Category = "Snow"
)

// CategoryFromCode maps a WMO weather code to a Category. Showers (80-82)
// count as rain even though they sit above the snow threshold; anything
// unrecognized falls back to Clear.
func CategoryFromCode(code int) Category {
	switch code {
	case 0:
		return Clear
	case 1, 2, 3, 45, 48:
		return Clouds
	case 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82:
		return Rain
	}
	if code >= 71 {
		return Snow
	}
	return Clear
}
