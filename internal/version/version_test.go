package version

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{" v0.4.0 ", "v0.4.0"},
		{"dev", ""},
		{"", ""},
		{"v1.2.3-rc.1", ""},
		{"v1.2.3+meta", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsRelease(t *testing.T) {
	saved := Version
	defer func() { Version = saved }()

	Version = "dev"
	if IsRelease() {
		t.Fatal("dev build reported as release")
	}
	Version = "v1.0.0"
	if !IsRelease() {
		t.Fatal("v1.0.0 not reported as release")
	}
}
