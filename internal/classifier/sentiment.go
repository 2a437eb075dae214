package classifier

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// словарь VADER загружается один раз, анализатор только читает его
var analyzer = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// Sentiment вычисляет компаунд-оценку тональности VADER в диапазоне [-1, 1]
func Sentiment(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return analyzer().PolarityScores(text).Compound
}
