package tagexpr

import (
	"reflect"
	"testing"
)

func TestAnalyze_Empty(t *testing.T) {
	got := Analyze("")

	if !got.Supported {
		t.Error("expected empty expression to be supported")
	}
	if len(got.Tags) != 0 || len(got.ExcludeTags) != 0 {
		t.Errorf("expected empty tag sets, got %v / %v", got.Tags, got.ExcludeTags)
	}
	if got.Mode != ModeAny {
		t.Errorf("expected mode any, got %s", got.Mode)
	}
}

func TestAnalyze_AndCombinator(t *testing.T) {
	got := Analyze("@smoke and @ui")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if !reflect.DeepEqual(got.Tags, []string{"smoke", "ui"}) {
		t.Errorf("expected tags [smoke ui], got %v", got.Tags)
	}
	if len(got.ExcludeTags) != 0 {
		t.Errorf("expected no exclusions, got %v", got.ExcludeTags)
	}
	if got.Mode != ModeAll {
		t.Errorf("expected mode all, got %s", got.Mode)
	}
}

func TestAnalyze_OrCombinator(t *testing.T) {
	got := Analyze("@smoke or @ui")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if !reflect.DeepEqual(got.Tags, []string{"smoke", "ui"}) {
		t.Errorf("expected tags [smoke ui], got %v", got.Tags)
	}
	if got.Mode != ModeAny {
		t.Errorf("expected mode any, got %s", got.Mode)
	}
}

func TestAnalyze_ParenthesesUnsupported(t *testing.T) {
	got := Analyze("(@smoke) and @ui")

	if got.Supported {
		t.Error("expected parenthesized expression to be unsupported")
	}
}

func TestAnalyze_MixedCombinatorsUnsupported(t *testing.T) {
	got := Analyze("@smoke and @ui or @api")

	if got.Supported {
		t.Error("expected mixed combinators to be unsupported")
	}
}

func TestAnalyze_Exclusion(t *testing.T) {
	got := Analyze("@smoke and not @flaky")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if !reflect.DeepEqual(got.Tags, []string{"smoke"}) {
		t.Errorf("expected tags [smoke], got %v", got.Tags)
	}
	if !reflect.DeepEqual(got.ExcludeTags, []string{"flaky"}) {
		t.Errorf("expected exclusions [flaky], got %v", got.ExcludeTags)
	}
	if got.Mode != ModeAll {
		t.Errorf("expected mode all, got %s", got.Mode)
	}
}

func TestAnalyze_ExclusionOnly(t *testing.T) {
	got := Analyze("not @flaky")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if len(got.Tags) != 0 {
		t.Errorf("expected no positive tags, got %v", got.Tags)
	}
	if !reflect.DeepEqual(got.ExcludeTags, []string{"flaky"}) {
		t.Errorf("expected exclusions [flaky], got %v", got.ExcludeTags)
	}
}

func TestAnalyze_NoTagsUnsupported(t *testing.T) {
	got := Analyze("smoke and ui")

	if got.Supported {
		t.Error("expected expression without @tokens to be unsupported")
	}
	if got.Mode != ModeAll {
		t.Errorf("expected best-effort mode all, got %s", got.Mode)
	}
}

// "and" inside a word must not be read as the combinator; matching is on
// word boundaries, not substrings.
func TestAnalyze_SubstringAndNotMisdetected(t *testing.T) {
	got := Analyze("@bandana or @android")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if got.Mode != ModeAny {
		t.Errorf("expected mode any, got %s", got.Mode)
	}
	if !reflect.DeepEqual(got.Tags, []string{"bandana", "android"}) {
		t.Errorf("expected tags [bandana android], got %v", got.Tags)
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	got := Analyze("@Smoke AND @UI")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if !reflect.DeepEqual(got.Tags, []string{"smoke", "ui"}) {
		t.Errorf("expected lower-cased tags, got %v", got.Tags)
	}
	if got.Mode != ModeAll {
		t.Errorf("expected mode all, got %s", got.Mode)
	}
}

func TestAnalyze_DuplicateTagsDeduplicated(t *testing.T) {
	got := Analyze("@smoke or @smoke")

	if !reflect.DeepEqual(got.Tags, []string{"smoke"}) {
		t.Errorf("expected deduplicated tags, got %v", got.Tags)
	}
}

func TestAnalyze_HyphenAndUnderscoreTokens(t *testing.T) {
	got := Analyze("@slow-io and @db_write")

	if !got.Supported {
		t.Fatal("expected supported expression")
	}
	if !reflect.DeepEqual(got.Tags, []string{"slow-io", "db_write"}) {
		t.Errorf("expected full token capture, got %v", got.Tags)
	}
}
