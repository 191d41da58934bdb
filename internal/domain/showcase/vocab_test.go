package showcase

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "All", want: CategoryAll},
		{in: "developer tools", want: CategoryDeveloperTools},
		{in: " AI ", want: CategoryAI},
		{in: "Gaming", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseCategory(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParseKindAndPlatform(t *testing.T) {
	if k, err := ParseKind("IDEA"); err != nil || k != KindIdea {
		t.Fatalf("ParseKind(IDEA) = %q, %v", k, err)
	}
	if _, err := ParseKind("tool"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(tool) error = %v", err)
	}
	if p, err := ParsePlatform("web app"); err != nil || p != PlatformWeb {
		t.Fatalf("ParsePlatform(web app) = %q, %v", p, err)
	}
	if _, err := ParsePlatform("Android"); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("ParsePlatform(Android) error = %v", err)
	}
}

func TestNextCategory(t *testing.T) {
	if got := NextCategory(CategoryAll, 1); got != CategoryAI {
		t.Fatalf("NextCategory(All, 1) = %q", got)
	}
	if got := NextCategory(CategoryAll, -1); got != CategoryDeveloperTools {
		t.Fatalf("NextCategory(All, -1) = %q", got)
	}
	if got := NextCategory(CategoryDeveloperTools, 1); got != CategoryAll {
		t.Fatalf("NextCategory(Developer Tools, 1) = %q", got)
	}
}

func TestKindHelpers(t *testing.T) {
	if KindApp.Plural() != "apps" || KindIdea.Plural() != "ideas" {
		t.Fatal("unexpected plural labels")
	}
	if KindApp.Other() != KindIdea || KindIdea.Other() != KindApp {
		t.Fatal("Other should flip the partition")
	}
}
