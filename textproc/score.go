package textproc

import (
	"strings"
	"unicode/utf8"

	"embedsvc/types"
)

// Sentiment labels emitted by the classifier collaborator.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

var structureIndicators = []string{".", "!", "?", ":", ";", ","}

// Score combines text statistics and sentiment output into an
// article-worthiness confidence in [0, 1]. The heuristic starts at 0.5 and
// applies additive adjustments for length, word count, sentiment, and
// punctuation density. Band thresholds are hand-tuned and kept as-is for
// compatibility with historical scores.
//
// An empty or malformed sentiment result contributes nothing; the score
// never fails.
func Score(originalText string, sentiment []types.LabelScore) float64 {
	base := 0.0

	// Longer text is more likely to be an article.
	textLength := utf8.RuneCountInString(strings.TrimSpace(originalText))
	switch {
	case textLength > 1000:
		base += 0.3
	case textLength > 500:
		base += 0.2
	case textLength > 200:
		base += 0.1
	case textLength < 50:
		base -= 0.2
	}

	wordCount := len(strings.Fields(originalText))
	switch {
	case wordCount > 200:
		base += 0.2
	case wordCount > 100:
		base += 0.1
	case wordCount < 20:
		base -= 0.1
	}

	// Well-written content tends to read neutral to positive; strongly
	// negative text drags the score down.
	for _, ls := range sentiment {
		switch ls.Label {
		case LabelPositive:
			base += (ls.Score - 0.5) * 0.3
		case LabelNegative:
			if ls.Score > 0.8 {
				base -= 0.1
			}
		}
	}

	structureCount := 0
	for _, indicator := range structureIndicators {
		structureCount += strings.Count(originalText, indicator)
	}
	switch {
	case structureCount > 10:
		base += 0.1
	case structureCount > 5:
		base += 0.05
	}

	return clamp(base + 0.5)
}

// IsArticle is the verdict for a confidence score. Strictly greater than
// 0.5: a text sitting exactly on the base score is not an article.
func IsArticle(score float64) bool {
	return score > 0.5
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
