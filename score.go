package artex

// Recommendation advises which parsing strategy the structured-data
// quality score supports.
type Recommendation string

const (
	RecommendUseStructured  Recommendation = "use-structured"
	RecommendHybrid         Recommendation = "hybrid"
	RecommendUseTraditional Recommendation = "use-traditional"
)

// StructuredScore grades a structured-data extraction in isolation.
type StructuredScore struct {
	Score          int
	Recommendation Recommendation
}

// ContentTier awards Points when content is longer than MinLength bytes.
// Tiers are consulted in order and the first match wins, so they must be
// listed with descending MinLength.
type ContentTier struct {
	MinLength int `yaml:"minLength"`
	Points    int `yaml:"points"`
}

// ScoringWeights collects every tunable heuristic constant used by the
// structured-data scorer, the confidence scorer, and the accessibility
// classifier. Keeping them in one place makes the heuristics testable in
// isolation and loadable from a config file.
type ScoringWeights struct {
	// Structured-data quality score.
	Body        int `yaml:"body"`
	Headline    int `yaml:"headline"`
	Author      int `yaml:"author"`
	Date        int `yaml:"date"`
	Description int `yaml:"description"`
	Image       int `yaml:"image"`
	Publisher   int `yaml:"publisher"`

	// NoBodyCap caps the structured score when articleBody is absent.
	// A record without full text cannot stand alone, so the cap sits
	// below UseStructuredThreshold.
	NoBodyCap              int `yaml:"noBodyCap"`
	UseStructuredThreshold int `yaml:"useStructuredThreshold"`
	HybridThreshold        int `yaml:"hybridThreshold"`

	// Confidence score.
	//
	// ContentTiers award points for content length, first match wins;
	// ContentBase applies when content is shorter than every tier.
	ContentTiers []ContentTier `yaml:"contentTiers"`
	ContentBase  int           `yaml:"contentBase"`

	ConfidenceTitle        int `yaml:"confidenceTitle"`
	ConfidenceAuthor       int `yaml:"confidenceAuthor"`
	ConfidenceDate         int `yaml:"confidenceDate"`
	ConfidenceExcerpt      int `yaml:"confidenceExcerpt"`
	ConfidenceImage        int `yaml:"confidenceImage"`
	ConfidenceKeywords     int `yaml:"confidenceKeywords"`
	ConfidencePublisher    int `yaml:"confidencePublisher"`
	FullContentBonus       int `yaml:"fullContentBonus"`
	PartialContentPenalty  int `yaml:"partialContentPenalty"`
	PartialContentFloor    int `yaml:"partialContentFloor"`
	ShortFullPenalty       int `yaml:"shortFullPenalty"`
	ShortFullFloor         int `yaml:"shortFullFloor"`
	ShortFullThreshold     int `yaml:"shortFullThreshold"`
	PaywallConfidenceFloor int `yaml:"paywallConfidenceFloor"`

	// Accessibility classification.
	PaywallLengthThreshold int `yaml:"paywallLengthThreshold"`
	NoContentThreshold     int `yaml:"noContentThreshold"`
}

// DefaultWeights returns the tuned default heuristic constants.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Body:        40,
		Headline:    20,
		Author:      15,
		Date:        10,
		Description: 5,
		Image:       5,
		Publisher:   5,

		NoBodyCap:              60,
		UseStructuredThreshold: 70,
		HybridThreshold:        40,

		ContentTiers: []ContentTier{
			{MinLength: 1000, Points: 40},
			{MinLength: 500, Points: 30},
			{MinLength: 200, Points: 20},
			{MinLength: 50, Points: 10},
		},
		ContentBase: 5,

		ConfidenceTitle:        20,
		ConfidenceAuthor:       10,
		ConfidenceDate:         10,
		ConfidenceExcerpt:      5,
		ConfidenceImage:        5,
		ConfidenceKeywords:     5,
		ConfidencePublisher:    5,
		FullContentBonus:       10,
		PartialContentPenalty:  15,
		PartialContentFloor:    20,
		ShortFullPenalty:       20,
		ShortFullFloor:         30,
		ShortFullThreshold:     300,
		PaywallConfidenceFloor: 65,

		PaywallLengthThreshold: 200,
		NoContentThreshold:     50,
	}
}

// ScoreStructured grades a structured-data record on a 0-100 scale and
// recommends a parsing strategy. A full article body weighs most heavily;
// without one the score is capped below the use-structured threshold
// regardless of how rich the remaining metadata is.
func ScoreStructured(a *StructuredArticle, w ScoringWeights) StructuredScore {
	score := 0
	if a != nil {
		if a.HasBody() {
			score += w.Body
		}
		if a.Headline != "" {
			score += w.Headline
		}
		if len(a.Authors) > 0 {
			score += w.Author
		}
		if !a.DatePublished.IsZero() {
			score += w.Date
		}
		if a.Description != "" {
			score += w.Description
		}
		if len(a.Images) > 0 {
			score += w.Image
		}
		if a.Publisher != "" {
			score += w.Publisher
		}
		if !a.HasBody() && score > w.NoBodyCap {
			score = w.NoBodyCap
		}
	}
	score = clamp(score)

	rec := RecommendUseTraditional
	switch {
	case score >= w.UseStructuredThreshold:
		rec = RecommendUseStructured
	case score >= w.HybridThreshold:
		rec = RecommendHybrid
	}

	return StructuredScore{Score: score, Recommendation: rec}
}

// ConfidenceFor computes the overall 0-100 trust score for a merged result.
// It is a deterministic additive heuristic over field presence and content
// length, with penalties for content that claims to be full but is
// suspiciously short, and a floor for paywall stubs that still carry rich
// metadata (a well-identified article is usable even without full text).
func ConfidenceFor(r *Result, w ScoringWeights) int {
	score := 0

	if r.Title != "" {
		score += w.ConfidenceTitle
	}

	n := len(r.Content)
	score += contentPoints(n, w)

	if r.Author != "" {
		score += w.ConfidenceAuthor
	}
	if r.DatePublished != nil {
		score += w.ConfidenceDate
	}
	if r.Excerpt != "" {
		score += w.ConfidenceExcerpt
	}
	if r.LeadImageURL != "" {
		score += w.ConfidenceImage
	}

	if r.HasFullContent {
		score += w.FullContentBonus
	} else {
		score = floorSub(score, w.PartialContentPenalty, w.PartialContentFloor)
	}

	if len(r.Meta.Keywords) > 0 {
		score += w.ConfidenceKeywords
	}
	if r.Meta.Publisher != "" {
		score += w.ConfidencePublisher
	}

	// A result claiming full content at under ShortFullThreshold chars is
	// suspect: either the extraction truncated or the flag is mislabeled.
	if r.HasFullContent && n < w.ShortFullThreshold {
		score = floorSub(score, w.ShortFullPenalty, w.ShortFullFloor)
	}

	score = clamp(score)

	hasMeta := r.Title != "" && r.Author != "" && r.DatePublished != nil
	if paywallSuspected(r.Content, hasMeta, w) && hasMeta && score < w.PaywallConfidenceFloor {
		score = w.PaywallConfidenceFloor
	}

	return score
}

// contentPoints awards the first matching content-length tier.
func contentPoints(n int, w ScoringWeights) int {
	for _, tier := range w.ContentTiers {
		if n > tier.MinLength {
			return tier.Points
		}
	}
	return w.ContentBase
}

func floorSub(score, penalty, floor int) int {
	score -= penalty
	if score < floor {
		return floor
	}
	return score
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
