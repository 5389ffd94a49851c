// Package matching scores campaigns against a creator's Brand-Fit profile.
package matching

// Default weights for scoring components. Category alignment dominates;
// the remaining components split the rest.
const (
	categoryWeight        = 40.0
	contentStyleWeight    = 30.0
	cameraComfortWeight   = 15.0
	collaborationWeight   = 10.0
	creativeControlWeight = 5.0
)

// Score thresholds
const (
	// MatchedThreshold is the minimum score for a campaign to appear in the
	// default "matched" view.
	MatchedThreshold = 40
	// TopMatchThreshold is the minimum score for a campaign to be flagged a
	// top match.
	TopMatchThreshold = 70
)

// SynonymTable maps a canonical category to the aliases that should count
// as the same category during overlap matching. Comparison is
// case-insensitive on both sides.
type SynonymTable map[string][]string

// Config controls engine behavior. The zero value scores with default
// weights and no synonym expansion.
type Config struct {
	Synonyms SynonymTable
}

// DefaultSynonyms returns the category aliases the marketplace ships with.
// Callers wanting a different mapping replace the table wholesale rather
// than editing the engine.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"fitness":    {"health & wellness", "health and wellness", "wellness"},
		"beauty":     {"skincare", "cosmetics"},
		"food":       {"food & drink", "food and drink", "cooking"},
		"technology": {"tech", "gadgets"},
		"travel":     {"lifestyle travel"},
		"fashion":    {"apparel", "style"},
	}
}

// DefaultConfig returns the engine configuration used in production.
func DefaultConfig() Config {
	return Config{Synonyms: DefaultSynonyms()}
}
