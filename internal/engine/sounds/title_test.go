package sounds

import "testing"

func TestValidSoundURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.tiktok.com/music/Levitating-6928004115846429697", true},
		{"tiktok.com/music/some-sound-123", true},
		{"https://www.tiktok.com/@user/video/123", false},
		{"https://www.tiktok.com/music/nosuffix", false},
		{"https://example.com/music/some-sound-1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidSoundURL(tt.url); got != tt.want {
			t.Errorf("ValidSoundURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.tiktok.com/music/Levitating-6928004115846429697", "Levitating"},
		{"https://www.tiktok.com/music/original-sound-7012345678901234567", "Original Sound"},
		{"https://www.tiktok.com/music/lo-fi-beats-123?lang=en", "Lo Fi Beats"},
		{"https://www.tiktok.com/music/Caf%C3%A9-Nights-42", "Café Nights"},
		{"https://www.tiktok.com/music/-1", "Unknown Sound"},
		{"https://www.tiktok.com/@user/video/123", "Unknown Sound"},
	}
	for _, tt := range tests {
		if got := DeriveTitle(tt.url); got != tt.want {
			t.Errorf("DeriveTitle(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
