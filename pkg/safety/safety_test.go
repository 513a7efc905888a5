package safety

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestClassifyMissingEntryIsUnknown(t *testing.T) {
	table := map[string]Classification{"ar": NoFlags()}
	if got := Classify("as", table); got.Kind != Unknown {
		t.Fatalf("missing entry must classify Unknown, got %v", got)
	}
	if got := Classify("ar", table); got.Kind != SafeNoFlags {
		t.Fatalf("expected SafeNoFlags, got %v", got)
	}
}

func TestParseAndString(t *testing.T) {
	cases := []struct {
		text string
		want Classification
	}{
		{"unknown", Classification{}},
		{"safe", NoFlags()},
		{"flags:gcc_flags", NamedFlags("gcc_flags")},
	}
	for _, tc := range cases {
		got, err := Parse(tc.text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.text, got, tc.want)
		}
		if got.String() != tc.text {
			t.Errorf("String() = %q, want %q", got.String(), tc.text)
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, text := range []string{"", "safe-ish", "flags:"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q) must fail", text)
		}
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var table map[string]Classification
	doc := "gcc: flags:gcc_flags\nar: safe\ngo: unknown\n"
	if err := yaml.Unmarshal([]byte(doc), &table); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if table["gcc"] != NamedFlags("gcc_flags") {
		t.Fatalf("expected named flags for gcc, got %v", table["gcc"])
	}
	if table["ar"] != NoFlags() {
		t.Fatalf("expected safe for ar, got %v", table["ar"])
	}
	if table["go"].Kind != Unknown {
		t.Fatalf("expected unknown for go, got %v", table["go"])
	}
}
