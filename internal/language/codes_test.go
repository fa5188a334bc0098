package language

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{"canonical code", "ru", "ru", true},
		{"canonical code upper", "RU", "ru", true},
		{"three letter code", "eng", "en", true},
		{"full name", "german", "de", true},
		{"full name mixed case", "GeRmAn", "de", true},
		{"cyrillic alias", "немецкий", "de", true},
		{"cyrillic short alias", "англ", "en", true},
		{"armenian alias", "հայերեն", "hy", true},
		{"armenian short alias", "ռուս", "ru", true},
		{"surrounding whitespace", "  de  ", "de", true},
		{"punctuation stripped", "de.", "de", true},
		{"unknown token", "french", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{"punctuation only", "!!!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.token)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalizeYoFolding(t *testing.T) {
	// "ё" and "е" spellings must resolve to the same alias
	got, ok := Normalize("нём")
	if !ok || got != "de" {
		t.Errorf("Normalize(\"нём\") = %q, %v; want \"de\", true", got, ok)
	}
}

func TestNormalizePair(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantSrc string
		wantDst string
		ok      bool
	}{
		{"hyphen", "ru-en", "ru", "en", true},
		{"underscore", "ru_en", "ru", "en", true},
		{"arrow", "ru→en", "ru", "en", true},
		{"space", "ru en", "ru", "en", true},
		{"spaces around hyphen", "de - hy", "de", "hy", true},
		{"aliases", "deutsch-english", "de", "en", true},
		{"cyrillic aliases", "нем-англ", "de", "en", true},
		{"order preserved", "en-ru", "en", "ru", true},
		{"same language", "ru-ru", "", "", false},
		{"same language via alias", "ru-русский", "", "", false},
		{"unknown source", "xx-en", "", "", false},
		{"unknown target", "en-xx", "", "", false},
		{"single token", "en", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst, ok := NormalizePair(tt.raw)
			if ok != tt.ok {
				t.Fatalf("NormalizePair(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if src != tt.wantSrc || dst != tt.wantDst {
				t.Errorf("NormalizePair(%q) = (%q, %q), want (%q, %q)",
					tt.raw, src, dst, tt.wantSrc, tt.wantDst)
			}
		})
	}
}

func TestCanonicalPair(t *testing.T) {
	ab, ok := CanonicalPair("en", "de")
	if !ok {
		t.Fatal("CanonicalPair(en, de) not ok")
	}
	ba, ok := CanonicalPair("de", "en")
	if !ok {
		t.Fatal("CanonicalPair(de, en) not ok")
	}
	if ab != ba {
		t.Errorf("CanonicalPair is not commutative: %v != %v", ab, ba)
	}
	if ab.A != "de" || ab.B != "en" {
		t.Errorf("CanonicalPair(en, de) = %v, want {de en}", ab)
	}

	if _, ok := CanonicalPair("en", "en"); ok {
		t.Error("CanonicalPair(en, en) should not be ok")
	}
	if _, ok := CanonicalPair("en", "xx"); ok {
		t.Error("CanonicalPair(en, xx) should not be ok")
	}
}

func TestPairHelpers(t *testing.T) {
	pair, _ := CanonicalPair("hy", "ru")

	if !pair.Contains("ru") || !pair.Contains("hy") {
		t.Error("pair should contain both of its languages")
	}
	if pair.Contains("en") {
		t.Error("pair should not contain en")
	}
	if got := pair.Other("ru"); got != "hy" {
		t.Errorf("Other(ru) = %q, want hy", got)
	}
	if got := pair.Other("hy"); got != "ru" {
		t.Errorf("Other(hy) = %q, want ru", got)
	}
	if got := pair.String(); got != "hy-ru" {
		t.Errorf("String() = %q, want hy-ru", got)
	}
}

func TestSupportedAndOthers(t *testing.T) {
	want := []string{"ru", "en", "de", "hy"}
	if got := Supported(); !reflect.DeepEqual(got, want) {
		t.Errorf("Supported() = %v, want %v", got, want)
	}

	// Returned slice must be a copy
	mutated := Supported()
	mutated[0] = "xx"
	if got := Supported(); !reflect.DeepEqual(got, want) {
		t.Error("Supported() result was mutated through a previous call")
	}

	if got := Others("de"); !reflect.DeepEqual(got, []string{"ru", "en", "hy"}) {
		t.Errorf("Others(de) = %v, want [ru en hy]", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label("hy"); got != "Հայերեն" {
		t.Errorf("Label(hy) = %q", got)
	}
	// Unknown codes fall back to the code itself
	if got := Label("xx"); got != "xx" {
		t.Errorf("Label(xx) = %q, want xx", got)
	}
}
