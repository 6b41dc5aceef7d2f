package sentiment

import (
	"math"
	"strings"

	"tickerpulse/internal/domain"
)

const (
	// negationFactor flips and dampens a valence preceded by a negation.
	negationFactor = -0.74
	// boosterIncrement is the magnitude a degree modifier adds or removes.
	boosterIncrement = 0.293
	// exclamationBoost is added per trailing "!", capped at maxExclamations.
	exclamationBoost = 0.292
	maxExclamations  = 4
	// normalizationAlpha shapes the compound score into [-1, 1].
	normalizationAlpha = 15.0
	// lookbackWindow is how many preceding tokens are checked for
	// negations and boosters.
	lookbackWindow = 3
)

var negations = map[string]struct{}{
	"no": {}, "not": {}, "never": {}, "none": {}, "nobody": {}, "nothing": {},
	"neither": {}, "nor": {}, "cannot": {}, "cant": {}, "dont": {},
	"doesnt": {}, "didnt": {}, "isnt": {}, "wasnt": {}, "werent": {},
	"wont": {}, "wouldnt": {}, "shouldnt": {}, "couldnt": {}, "aint": {},
	"without": {}, "rarely": {}, "seldom": {},
}

var boosters = map[string]float64{
	"absolutely":    boosterIncrement,
	"amazingly":     boosterIncrement,
	"completely":    boosterIncrement,
	"considerably":  boosterIncrement,
	"extremely":     boosterIncrement,
	"greatly":       boosterIncrement,
	"highly":        boosterIncrement,
	"hugely":        boosterIncrement,
	"incredibly":    boosterIncrement,
	"massively":     boosterIncrement,
	"really":        boosterIncrement,
	"remarkably":    boosterIncrement,
	"significantly": boosterIncrement,
	"so":            boosterIncrement,
	"substantially": boosterIncrement,
	"totally":       boosterIncrement,
	"very":          boosterIncrement,

	"almost":     -boosterIncrement,
	"barely":     -boosterIncrement,
	"hardly":     -boosterIncrement,
	"kinda":      -boosterIncrement,
	"marginally": -boosterIncrement,
	"slightly":   -boosterIncrement,
	"somewhat":   -boosterIncrement,
}

// Analyzer scores raw text against an immutable lexicon. Safe for concurrent
// use once constructed.
type Analyzer struct {
	lexicon Lexicon
}

func NewAnalyzer(lexicon Lexicon) *Analyzer {
	if lexicon == nil {
		lexicon = NewLexicon()
	}
	return &Analyzer{lexicon: lexicon}
}

// Score computes a compound valence in [-1, 1] plus positive/negative/neutral
// proportions and the derived label. Pure and total: empty or whitespace-only
// text yields an all-zero neutral score.
func (a *Analyzer) Score(text string) domain.SentimentScore {
	if strings.TrimSpace(text) == "" {
		return domain.SentimentScore{Label: domain.LabelNeutral}
	}

	tokens := strings.Fields(text)
	cleaned := make([]string, len(tokens))
	for i, token := range tokens {
		cleaned[i] = normalizeToken(token)
	}

	valences := make([]float64, 0, len(tokens))
	for i, token := range cleaned {
		valence, ok := a.lexicon[token]
		if !ok {
			// Modifier words contribute through neighbors only.
			valences = append(valences, 0)
			continue
		}
		valences = append(valences, a.modifiedValence(cleaned, i, valence))
	}

	var sum float64
	for _, v := range valences {
		sum += v
	}

	if emphasis := exclamationEmphasis(text); emphasis > 0 {
		if sum > 0 {
			sum += emphasis
		} else if sum < 0 {
			sum -= emphasis
		}
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	compound = clamp(compound, -1, 1)
	compound = round(compound, 4)

	positive, negative, neutral := proportions(valences)

	return domain.SentimentScore{
		Compound: compound,
		Positive: round(positive, 3),
		Negative: round(negative, 3),
		Neutral:  round(neutral, 3),
		Label:    domain.LabelForCompound(compound),
	}
}

// modifiedValence applies boosters and negations found in the preceding
// lookback window. Boosters further from the scored word decay.
func (a *Analyzer) modifiedValence(tokens []string, index int, valence float64) float64 {
	decay := []float64{1.0, 0.95, 0.9}
	for back := 1; back <= lookbackWindow; back++ {
		j := index - back
		if j < 0 {
			break
		}
		token := tokens[j]
		if boost, ok := boosters[token]; ok {
			step := boost * decay[back-1]
			if valence > 0 {
				valence += step
			} else if valence < 0 {
				valence -= step
			}
			continue
		}
		if _, ok := negations[token]; ok {
			valence *= negationFactor
		}
	}
	return valence
}

func proportions(valences []float64) (positive, negative, neutral float64) {
	var posSum, negSum, neuCount float64
	for _, v := range valences {
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += -v + 1
		default:
			neuCount++
		}
	}
	total := posSum + negSum + neuCount
	if total == 0 {
		return 0, 0, 0
	}
	return posSum / total, negSum / total, neuCount / total
}

func normalizeToken(token string) string {
	token = strings.ToLower(token)
	token = strings.TrimFunc(token, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})
	// "isn't" style contractions collapse onto the negation table.
	token = strings.ReplaceAll(token, "'", "")
	return token
}

func exclamationEmphasis(text string) float64 {
	count := strings.Count(text, "!")
	if count > maxExclamations {
		count = maxExclamations
	}
	return float64(count) * exclamationBoost
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
