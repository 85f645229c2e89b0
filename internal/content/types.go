package content

// Category identifies a question topic area. The set is fixed; stats
// bookkeeping relies on every category being known up front.
type Category string

const (
	CategoryProbability   Category = "probability"
	CategoryStatistics    Category = "statistics"
	CategoryStochastic    Category = "stochastic-calculus"
	CategoryOptions       Category = "options-pricing"
	CategoryBrainTeasers  Category = "brain-teasers"
	CategoryLinearAlgebra Category = "linear-algebra"

	// CategoryAll is the sentinel for mixed-category quiz sessions.
	// It is never a valid question category.
	CategoryAll Category = "all"
)

// AllCategories returns the fixed category set in display order.
func AllCategories() []Category {
	return []Category{
		CategoryProbability,
		CategoryStatistics,
		CategoryStochastic,
		CategoryOptions,
		CategoryBrainTeasers,
		CategoryLinearAlgebra,
	}
}

// Valid reports whether c is a concrete category (not the "all" sentinel).
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Difficulty is a question difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns the three difficulty bands in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a single multiple-choice question from the catalog.
// Questions are immutable once loaded.
type Question struct {
	ID           string     `json:"id"`
	Category     Category   `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Choices      []string   `json:"choices"`
	CorrectIndex int        `json:"correct_index"`
	Explanation  string     `json:"explanation"`
	Tags         []string   `json:"tags"`
	DurationSec  int        `json:"duration_sec,omitempty"`
}

// CategoryInfo is display metadata for a category.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

// GuideSection is one section of a topic guide.
type GuideSection struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	KeyFormulas []string `json:"key_formulas,omitempty"`
	Tips        []string `json:"tips,omitempty"`
}

// TopicGuide is a study guide for one category.
type TopicGuide struct {
	Category Category       `json:"category"`
	Title    string         `json:"title"`
	Overview string         `json:"overview"`
	Sections []GuideSection `json:"sections"`
}
