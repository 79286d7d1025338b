package format

import "testing"

func TestNormalizeFeatureName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"login-form", "login-form", false},
		{"My Feature", "my-feature", false},
		{"  padded  name ", "padded-name", false},
		{"UPPER", "upper", false},
		{"v1.2_fix", "v1.2_fix", false},
		{"", "", true},
		{"   ", "", true},
		{"bad/slash", "", true},
		{"emoji🔥", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeFeatureName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeFeatureName(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeFeatureName(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeFeatureName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveFeatureName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		branch string
		prefix string
		want   string
	}{
		{"feature/login", "feature/", "login"},
		{"hotfix/crash", "feature/", "hotfix/crash"},
		{"main", "", "main"},
		{"feature/", "feature/", ""},
	}

	for _, tt := range tests {
		if got := DeriveFeatureName(tt.branch, tt.prefix); got != tt.want {
			t.Errorf("DeriveFeatureName(%q, %q) = %q, want %q", tt.branch, tt.prefix, got, tt.want)
		}
	}
}
