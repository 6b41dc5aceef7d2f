package sentiment

// Lexicon maps lowercase terms to valence weights. Built once at
// construction; never mutated afterwards.
type Lexicon map[string]float64

// baseLexicon carries general-purpose valence terms. Weights follow the
// usual rule-based convention of roughly -4..4.
var baseLexicon = Lexicon{
	"abandon":      -1.9,
	"abuse":        -3.2,
	"accomplish":   1.8,
	"achieve":      1.7,
	"admire":       2.2,
	"afraid":       -2.2,
	"aggressive":   -0.6,
	"amazing":      2.8,
	"angry":        -2.3,
	"anxious":      -1.9,
	"awesome":      3.1,
	"awful":        -2.0,
	"bad":          -2.5,
	"beautiful":    2.9,
	"benefit":      1.7,
	"best":         3.2,
	"better":       1.9,
	"bless":        1.8,
	"bold":         1.2,
	"boom":         1.4,
	"boost":        1.7,
	"breakthrough": 2.3,
	"brilliant":    2.8,
	"broken":       -1.8,
	"calm":         1.3,
	"celebrate":    2.7,
	"champion":     2.4,
	"chaos":        -2.6,
	"cheap":        -0.4,
	"collapse":     -2.7,
	"concern":      -1.2,
	"confident":    2.2,
	"crash":        -2.6,
	"crisis":       -3.1,
	"cut":          -1.1,
	"damage":       -2.2,
	"danger":       -2.4,
	"dead":         -3.3,
	"decline":      -1.6,
	"defeat":       -2.0,
	"delight":      2.9,
	"destroy":      -2.8,
	"disappoint":   -2.2,
	"disaster":     -3.1,
	"doubt":        -1.5,
	"drop":         -1.1,
	"dump":         -1.8,
	"easy":         1.3,
	"elite":        1.6,
	"enthusiastic": 2.3,
	"excellent":    2.7,
	"excited":      2.2,
	"fail":         -2.5,
	"failure":      -2.5,
	"fake":         -2.1,
	"fantastic":    2.6,
	"fear":         -2.2,
	"fine":         0.8,
	"fraud":        -3.2,
	"free":         1.1,
	"fun":          2.3,
	"gain":         1.6,
	"glad":         2.0,
	"good":         1.9,
	"great":        3.1,
	"happy":        2.7,
	"hate":         -2.7,
	"hope":         1.9,
	"horrible":     -2.5,
	"hurt":         -2.4,
	"improve":      1.9,
	"incredible":   2.6,
	"innovative":   1.9,
	"inspire":      2.3,
	"interesting":  1.7,
	"kill":         -3.4,
	"lawsuit":      -1.8,
	"lose":         -2.1,
	"love":         3.2,
	"low":          -0.9,
	"lucky":        2.4,
	"mess":         -1.9,
	"nice":         1.8,
	"opportunity":  1.8,
	"optimistic":   2.0,
	"pain":         -2.3,
	"panic":        -2.6,
	"perfect":      2.7,
	"pessimistic":  -1.9,
	"plunge":       -1.8,
	"poor":         -2.1,
	"positive":     2.1,
	"pressure":     -1.2,
	"problem":      -1.7,
	"promise":      1.3,
	"prosper":      2.2,
	"proud":        2.1,
	"rally":        1.2,
	"reject":       -1.8,
	"risk":         -1.1,
	"sad":          -2.1,
	"scandal":      -2.7,
	"scared":       -2.2,
	"slump":        -1.9,
	"smart":        1.8,
	"solid":        1.5,
	"soar":         2.0,
	"strong":       2.3,
	"stellar":      2.4,
	"struggle":     -1.8,
	"stupid":       -2.4,
	"succeed":      2.2,
	"success":      2.7,
	"super":        2.9,
	"surge":        1.8,
	"terrible":     -2.1,
	"threat":       -2.1,
	"top":          2.0,
	"tough":        -1.3,
	"trouble":      -2.0,
	"trust":        2.1,
	"ugly":         -2.3,
	"uncertain":    -1.4,
	"warn":         -1.5,
	"weak":         -1.9,
	"welcome":      2.0,
	"win":          2.8,
	"wonderful":    2.7,
	"worry":        -1.9,
	"worse":        -2.1,
	"worst":        -3.1,
	"wrong":        -2.1,
}

// financeLexicon tunes the scorer for market language. Applied on top of the
// base table, overwrite-on-conflict.
var financeLexicon = Lexicon{
	"bullish":    2.5,
	"outperform": 2.0,
	"buy":        2.0,
	"upgrade":    2.0,
	"beat":       1.5,
	"exceeded":   1.5,
	"profit":     1.5,
	"growth":     1.5,
	"upside":     1.5,
	"dividend":   1.0,
	"uptrend":    1.5,
	"rally":      1.5,

	"bearish":      -2.5,
	"underperform": -2.0,
	"sell":         -2.0,
	"downgrade":    -2.0,
	"miss":         -1.5,
	"below":        -1.0,
	"loss":         -2.0,
	"debt":         -1.0,
	"downside":     -1.5,
	"crash":        -3.0,
	"downtrend":    -1.5,
	"bankruptcy":   -3.0,
	"recession":    -2.5,
	"inflation":    -1.0,
	"volatility":   -0.5,
}

// NewLexicon merges the finance overlay into the base term table. The result
// is treated as read-only by every analyzer sharing it.
func NewLexicon() Lexicon {
	merged := make(Lexicon, len(baseLexicon)+len(financeLexicon))
	for term, valence := range baseLexicon {
		merged[term] = valence
	}
	for term, valence := range financeLexicon {
		merged[term] = valence
	}
	return merged
}
