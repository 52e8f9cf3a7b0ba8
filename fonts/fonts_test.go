package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Title, Mono} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestBadFontData(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected an error for invalid font data")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
