package i18n

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Lang
	}{
		{"EN", EN},
		{"TR", TR},
		{"", TR},
		{"de", TR},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	t.Parallel()
	if got := T(EN, "btn_tasks"); got != "📋 My Tasks" {
		t.Errorf("T(EN, btn_tasks) = %q", got)
	}
	if got := T(TR, "btn_tasks"); got != "📋 Görevlerim" {
		t.Errorf("T(TR, btn_tasks) = %q", got)
	}
	// Unknown language falls back to TR.
	if got := T(Lang("DE"), "btn_tasks"); got != "📋 Görevlerim" {
		t.Errorf("T(DE, btn_tasks) = %q", got)
	}
	// Unknown key degrades to the key itself.
	if got := T(TR, "no_such_key"); got != "no_such_key" {
		t.Errorf("T(TR, no_such_key) = %q", got)
	}
}

// Both catalogs must answer every key the handlers reference, so an EN user
// never sees a TR fallback mid-conversation.
func TestCatalogsSymmetric(t *testing.T) {
	t.Parallel()
	for key := range texts[TR] {
		if _, ok := texts[EN][key]; !ok {
			t.Errorf("EN catalog is missing %q", key)
		}
	}
	for key := range texts[EN] {
		if _, ok := texts[TR][key]; !ok {
			t.Errorf("TR catalog is missing %q", key)
		}
	}
}
