package weather_test

import (
	"testing"

	"github.com/atasoy/shelfmate/internal/weather"
)

func TestCategoryFromCode(t *testing.T) {
	tests := []struct {
		code int
		want weather.Category
	}{
		{0, weather.Clear},
		{1, weather.Clouds},
		{2, weather.Clouds},
		{3, weather.Clouds},
		{45, weather.Clouds},
		{48, weather.Clouds},
		{51, weather.Rain},
		{61, weather.Rain},
		{67, weather.Rain},
		{80, weather.Rain}, // showers beat the >=71 snow rule
		{82, weather.Rain},
		{71, weather.Snow},
		{77, weather.Snow},
		{85, weather.Snow},
		{95, weather.Snow},
		{10, weather.Clear}, // unassigned code
		{-7, weather.Clear}, // nonsense
		{100, weather.Snow},
	}
	for _, tt := range tests {
		if got := weather.CategoryFromCode(tt.code); got != tt.want {
			t.Errorf("CategoryFromCode(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
