package sentiment

import "fmt"

const (
	LABEL_NEGATIVE = "LABEL_0"
	LABEL_NEUTRAL  = "LABEL_1"
	LABEL_POSITIVE = "LABEL_2"
)

// LabelMap translates the cardiffnlp/twitter-roberta-base-sentiment class
// codes into display strings.
var LabelMap = map[string]string{
	LABEL_NEGATIVE: "Negative 😞",
	LABEL_NEUTRAL:  "Neutral 😐",
	LABEL_POSITIVE: "Positive 😊",
}

// DisplayLabel falls back to the raw code for labels the map does not know.
func DisplayLabel(code string) string {
	if display, ok := LabelMap[code]; ok {
		return display
	}
	return code
}

func FormatConfidence(score float64) string {
	return fmt.Sprintf("Confidence: %.2f%%", score*100)
}
