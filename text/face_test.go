package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads a test font for testing.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

// TestFaceMetrics tests Face.Metrics.
func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12.0},
		{"size 16", 16.0},
		{"size 24", 24.0},
		{"size 48", 48.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := source.Face(tt.size).Metrics()

			if metrics.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", metrics.Ascent)
			}
			if metrics.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", metrics.Descent)
			}
			if metrics.LineGap < 0 {
				t.Errorf("LineGap should be non-negative, got %f", metrics.LineGap)
			}

			expectedLineHeight := metrics.Ascent + metrics.Descent + metrics.LineGap
			if metrics.LineHeight() != expectedLineHeight {
				t.Errorf("LineHeight() = %f, want %f", metrics.LineHeight(), expectedLineHeight)
			}

			// Metrics scale with size.
			metrics12 := source.Face(12.0).Metrics()
			ratio := metrics.Ascent / metrics12.Ascent
			want := tt.size / 12
			if ratio < want*0.9 || ratio > want*1.1 {
				t.Errorf("Metrics scaling incorrect: ratio = %f, want ~%f", ratio, want)
			}
		})
	}
}

// TestFaceAdvance tests Face.Advance.
func TestFaceAdvance(t *testing.T) {
	face := loadTestFont(t).Face(16.0)

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"single char", "A"},
		{"word", "Hello"},
		{"sentence", "The quick brown fox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance := face.Advance(tt.text)

			if tt.text == "" {
				if advance != 0 {
					t.Errorf("Advance() = %f, want 0 for empty string", advance)
				}
				return
			}
			if advance <= 0 {
				t.Errorf("Advance() = %f, want positive value for %q", advance, tt.text)
			}

			var sum float64
			for _, r := range tt.text {
				_, adv, _ := face.Glyph(r)
				sum += adv
			}
			if diff := advance - sum; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Advance(%q) = %f, sum of glyph advances = %f", tt.text, advance, sum)
			}
		})
	}
}

// TestFaceHasGlyph tests Face.HasGlyph.
func TestFaceHasGlyph(t *testing.T) {
	face := loadTestFont(t).Face(16.0)

	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ASCII letter", 'A', true},
		{"ASCII digit", '5', true},
		{"space", ' ', true},
		{"period", '.', true},
		{"private use", '\uE000', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := face.HasGlyph(tt.r); got != tt.want {
				t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

// TestFaceGlyph tests the ink boxes reported by Face.Glyph.
func TestFaceGlyph(t *testing.T) {
	face := loadTestFont(t).Face(20.0)

	gid, adv, ink := face.Glyph('x')
	if gid == 0 || adv <= 0 {
		t.Fatalf("Glyph('x') = %d, %f", gid, adv)
	}
	// 'x' sits on the baseline, so its ink is above it (negative Y).
	if ink.MaxY > 0.5 || ink.MinY >= 0 {
		t.Errorf("ink box of 'x' = %+v", ink)
	}

	_, _, descender := face.Glyph('p')
	if descender.MaxY <= 0 {
		t.Errorf("ink box of 'p' does not reach below the baseline: %+v", descender)
	}

	_, _, space := face.Glyph(' ')
	if !space.Empty() && space.Area() != 0 {
		t.Errorf("space has ink: %+v", space)
	}
}

// TestFaceOptions tests face configuration.
func TestFaceOptions(t *testing.T) {
	source := loadTestFont(t)

	if h := source.Face(12).Hinting(); h != HintingNone {
		t.Errorf("default Hinting() = %v, want None", h)
	}
	face := source.Face(12, WithHinting(HintingFull))
	if face.Hinting() != HintingFull {
		t.Errorf("Hinting() = %v, want Full", face.Hinting())
	}
	if face.Source() != source || face.Size() != 12 {
		t.Error("face does not report its source and size")
	}
}
