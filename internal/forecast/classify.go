package forecast

import (
	"strings"

	"golang.org/x/text/cases"
)

// conditionRules is checked in order and the first keyword found wins.
// "sunny" is deliberately checked after "cloud" and "rain", so a text such as
// "Partly cloudy and sunny" classifies as CLOUDY.
var conditionRules = []struct {
	keyword string
	icon    IconCategory
}{
	{"clear", IconClearDay},
	{"cloud", IconCloudy},
	{"rain", IconRain},
	{"sunny", IconClearDay},
	{"storm", IconPartlyCloudyDay},
	{"fog", IconFoggy},
}

// ClassifyCondition maps a condition text to an icon category using a
// case-insensitive substring match. Unknown conditions map to CLEAR_DAY.
func ClassifyCondition(text string) IconCategory {
	// A Caser is stateful, so one is created per call.
	folded := cases.Fold().String(text)
	for _, rule := range conditionRules {
		if strings.Contains(folded, rule.keyword) {
			return rule.icon
		}
	}
	return IconClearDay
}

// ClassifyUV buckets a UV index into its severity label and display color.
// Each tier includes its lower bound and excludes its upper bound.
func ClassifyUV(uv float64) UVClassification {
	switch {
	case uv < 3:
		return UVClassification{Label: "Low", Color: "green"}
	case uv < 6:
		return UVClassification{Label: "Moderate", Color: "yellow"}
	case uv < 8:
		return UVClassification{Label: "High", Color: "orange"}
	case uv < 11:
		return UVClassification{Label: "Very High", Color: "red"}
	default:
		return UVClassification{Label: "Extreme", Color: "purple"}
	}
}
