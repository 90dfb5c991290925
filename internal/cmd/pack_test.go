package cmd

import (
	"testing"

	"github.com/treepack/treepack/archive"
)

func TestParseGitMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    archive.GitMode
		wantErr bool
	}{
		{
			name: "exclude-git",
			in:   "exclude-git",
			want: archive.GitModeExclude,
		},
		{
			name: "respect-gitignore",
			in:   "respect-gitignore",
			want: archive.GitModeRespect,
		},
		{
			name: "include-all",
			in:   "include-all",
			want: archive.GitModeIncludeAll,
		},
		{
			name:    "unknown mode",
			in:      "yolo",
			wantErr: true,
		},
		{
			name:    "empty mode",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGitMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseGitMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseGitMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNaming(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    archive.NamingPolicy
		wantErr bool
	}{
		{
			name: "content",
			in:   "content",
			want: archive.NamingOnlyContent,
		},
		{
			name: "folder",
			in:   "folder",
			want: archive.NamingWithFolder,
		},
		{
			name: "custom",
			in:   "custom",
			want: archive.NamingCustom,
		},
		{
			name:    "unknown policy",
			in:      "flat",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNaming(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNaming(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseNaming(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind archive.OutputKind
		wantPath string
	}{
		{
			name:     "current keyword",
			in:       "current",
			wantKind: archive.OutputCurrentDir,
		},
		{
			name:     "parent keyword",
			in:       "parent",
			wantKind: archive.OutputParentDir,
		},
		{
			name:     "explicit path",
			in:       "/backups/mine.zip",
			wantKind: archive.OutputCustomPath,
			wantPath: "/backups/mine.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOutput(tt.in)
			if got.Kind != tt.wantKind {
				t.Errorf("parseOutput(%q).Kind = %v, want %v", tt.in, got.Kind, tt.wantKind)
			}
			if got.Path != tt.wantPath {
				t.Errorf("parseOutput(%q).Path = %q, want %q", tt.in, got.Path, tt.wantPath)
			}
		})
	}
}
