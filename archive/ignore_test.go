package archive

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandRule(t *testing.T) {
	tests := []struct {
		name string
		rule string
		want []string
	}{
		{
			name: "trailing slash only",
			rule: "build/",
			want: []string{"build/", "build"},
		},
		{
			name: "no slashes",
			rule: "build",
			want: []string{"build", "build/"},
		},
		{
			name: "leading slash only",
			rule: "/build",
			want: []string{"/build", "build", "build/"},
		},
		{
			name: "both slashes",
			rule: "/build/",
			want: []string{"/build/", "build", "build/", "/build"},
		},
		{
			name: "negated rule keeps prefix on variants",
			rule: "!keep/",
			want: []string{"!keep/", "!keep"},
		},
		{
			name: "bare slash produces nothing",
			rule: "/",
			want: nil,
		},
		{
			name: "bare negation produces nothing",
			rule: "!",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandRule(tt.rule)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandRule(%q) = %v, want %v", tt.rule, got, tt.want)
			}
		})
	}
}

func TestParseRules_Matching(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		path     string
		want     bool
	}{
		{
			name:     "dir rule matches bare directory path",
			contents: "build/\n",
			path:     "build",
			want:     true,
		},
		{
			name:     "dir rule matches directory contents",
			contents: "build/\n",
			path:     "build/out/a.o",
			want:     true,
		},
		{
			name:     "bare rule matches directory contents",
			contents: "dist\n",
			path:     "dist/bundle.js",
			want:     true,
		},
		{
			name:     "anchored dir rule matches contents",
			contents: "/node_modules/\n",
			path:     "node_modules/left-pad/index.js",
			want:     true,
		},
		{
			name:     "anchored rule matches bare path",
			contents: "/build\n",
			path:     "build",
			want:     true,
		},
		{
			name:     "unrelated path not matched",
			contents: "build/\n",
			path:     "src/build.go",
			want:     false,
		},
		{
			name:     "comment lines skipped",
			contents: "# build\n",
			path:     "build",
			want:     false,
		},
		{
			name:     "inline comment stripped",
			contents: "dist # generated output\n",
			path:     "dist/bundle.js",
			want:     true,
		},
		{
			name:     "line that is only an inline comment skipped",
			contents: "   # nothing here\n",
			path:     "nothing",
			want:     false,
		},
		{
			name:     "negation wins when it comes last",
			contents: "dist\n!dist/keep.txt\n",
			path:     "dist/keep.txt",
			want:     false,
		},
		{
			name:     "negated sibling still excluded",
			contents: "dist\n!dist/keep.txt\n",
			path:     "dist/other.txt",
			want:     true,
		},
		{
			name:     "glob pattern",
			contents: "*.log\n",
			path:     "logs/app.log",
			want:     true,
		},
		{
			name:     "blank contents match nothing",
			contents: "\n\n",
			path:     "anything",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := ParseRules(tt.contents)
			if got := rs.Matches(tt.path); got != tt.want {
				t.Errorf("ParseRules(%q).Matches(%q) = %v, want %v", tt.contents, tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadRuleFile_MissingFailsOpen(t *testing.T) {
	rs := LoadRuleFile(filepath.Join(t.TempDir(), "no-such-file"), nil)
	if rs == nil {
		t.Fatal("LoadRuleFile returned nil")
	}
	if rs.Matches("anything") {
		t.Error("missing rule file should exclude nothing")
	}
	if len(rs.Patterns()) != 0 {
		t.Errorf("missing rule file should carry no patterns, got %v", rs.Patterns())
	}
}

func TestNilRuleSetMatchesNothing(t *testing.T) {
	var rs *RuleSet
	if rs.Matches("build") {
		t.Error("nil RuleSet should match nothing")
	}
}
