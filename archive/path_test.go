package archive

import (
	"strings"
	"testing"
)

func TestNormalizeSlash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already normalized",
			in:   "src/a.txt",
			want: "src/a.txt",
		},
		{
			name: "backslash separators",
			in:   `src\sub\a.txt`,
			want: "src/sub/a.txt",
		},
		{
			name: "leading slash stripped",
			in:   "/src/a.txt",
			want: "src/a.txt",
		},
		{
			name: "dot and dotdot segments dropped",
			in:   "src/../a.txt/./b",
			want: "src/a.txt/b",
		},
		{
			name: "drive letter prefix stripped",
			in:   `C:\Users\a.txt`,
			want: "Users/a.txt",
		},
		{
			name: "double slashes collapsed",
			in:   "src//a.txt",
			want: "src/a.txt",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only dotdot",
			in:   "../..",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSlash(tt.in); got != tt.want {
				t.Errorf("NormalizeSlash(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapPath(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		policy NamingPolicy
		root   string
		custom string
		want   string
	}{
		{
			name:   "only content passes through",
			rel:    "src/a.txt",
			policy: NamingOnlyContent,
			root:   "proj",
			want:   "src/a.txt",
		},
		{
			name:   "only content strips leading slash",
			rel:    "/src/a.txt",
			policy: NamingOnlyContent,
			root:   "proj",
			want:   "src/a.txt",
		},
		{
			name:   "with folder nests under root name",
			rel:    "src/a.txt",
			policy: NamingWithFolder,
			root:   "proj",
			want:   "proj/src/a.txt",
		},
		{
			name:   "with folder and empty relative path yields root name",
			rel:    "",
			policy: NamingWithFolder,
			root:   "proj",
			want:   "proj",
		},
		{
			name:   "custom name",
			rel:    "a.txt",
			policy: NamingCustom,
			root:   "proj",
			custom: "bundle",
			want:   "bundle/a.txt",
		},
		{
			name:   "custom name falls back to root name",
			rel:    "a.txt",
			policy: NamingCustom,
			root:   "proj",
			custom: "",
			want:   "proj/a.txt",
		},
		{
			name:   "dotdot segments never survive",
			rel:    "../../etc/passwd",
			policy: NamingOnlyContent,
			root:   "proj",
			want:   "etc/passwd",
		},
		{
			name:   "drive letter never survives",
			rel:    `C:\evil.txt`,
			policy: NamingWithFolder,
			root:   "proj",
			want:   "proj/evil.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPath(tt.rel, tt.policy, tt.root, tt.custom)
			if got != tt.want {
				t.Errorf("MapPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
			if strings.HasPrefix(got, "/") {
				t.Errorf("MapPath(%q) = %q has a leading slash", tt.rel, got)
			}
			if strings.Contains(got, "..") {
				t.Errorf("MapPath(%q) = %q contains a dotdot segment", tt.rel, got)
			}
			// Mapping is pure: the same inputs always yield the same output.
			if again := MapPath(tt.rel, tt.policy, tt.root, tt.custom); again != got {
				t.Errorf("MapPath not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestSafeParent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nested path", in: "/a/b/c", want: "/a/b"},
		{name: "single component", in: "c", want: "c"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeParent(tt.in); got != tt.want {
				t.Errorf("SafeParent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
