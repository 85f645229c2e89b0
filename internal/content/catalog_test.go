package content

import "testing"

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Questions()) == 0 {
		t.Fatal("expected questions in catalog")
	}
	if len(c.Categories()) != len(AllCategories()) {
		t.Errorf("got %d categories, want %d", len(c.Categories()), len(AllCategories()))
	}
	if len(c.Guides()) == 0 {
		t.Error("expected at least one topic guide")
	}
}

func TestLoad_EveryCategoryHasQuestions(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, cat := range AllCategories() {
		if len(c.ByCategory(cat)) == 0 {
			t.Errorf("category %s has no questions", cat)
		}
	}
}

func TestLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	q, ok := c.Lookup("prob-1")
	if !ok {
		t.Fatal("expected prob-1 in catalog")
	}
	if q.Category != CategoryProbability {
		t.Errorf("Category = %s, want probability", q.Category)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		t.Errorf("correct index %d out of range", q.CorrectIndex)
	}

	if _, ok := c.Lookup("no-such-question"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestKnownTag(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !c.KnownTag("expectation") {
		t.Error("expected \"expectation\" to be a known tag")
	}
	if c.KnownTag("made-up-tag") {
		t.Error("did not expect unknown tag to be known")
	}
}

func TestLoad_RejectsBadCatalog(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing questions", `{"version":1,"categories":[{"id":"probability","name":"P"}]}`},
		{"bad difficulty", `{"version":1,"categories":[{"id":"probability","name":"P"}],"questions":[{"id":"q1","category":"probability","difficulty":"extreme","body":"b","choices":["a","b"],"correct_index":0}]}`},
		{"unknown category", `{"version":1,"categories":[{"id":"x","name":"X"}],"questions":[{"id":"q1","category":"x","difficulty":"easy","body":"b","choices":["a","b"],"correct_index":0}]}`},
		{"correct index out of range", `{"version":1,"categories":[{"id":"probability","name":"P"}],"questions":[{"id":"q1","category":"probability","difficulty":"easy","body":"b","choices":["a","b"],"correct_index":5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := load([]byte(tc.raw), nil); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryProbability.Valid() {
		t.Error("probability should be valid")
	}
	if CategoryAll.Valid() {
		t.Error("the all sentinel must not be a valid category")
	}
	if Category("poetry").Valid() {
		t.Error("unknown category should not be valid")
	}
}
