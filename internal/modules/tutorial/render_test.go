package tutorial

import (
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

func TestRenderSectionsEmpty(t *testing.T) {
	for _, specs := range [][]types.SectionSpec{nil, {}} {
		got := RenderSections("Go", specs)
		if got == nil {
			t.Fatalf("expected empty non-nil slice")
		}
		if len(got) != 0 {
			t.Fatalf("expected no sections, got %d", len(got))
		}
	}
}

func TestStandardContentLayout(t *testing.T) {
	spec := types.SectionSpec{
		Title:       "Loops",
		Description: "Repeat work.",
		Syntax:      "for i := range n {}",
		Usage:       "Iterate collections.",
		Code:        "for i := range 3 { fmt.Println(i) }",
	}
	want := "# Loops\n\nRepeat work.\n\n## Syntax\nfor i := range n {}\n\n## Example\nfor i := range 3 { fmt.Println(i) }\n\n## Usage\nIterate collections."
	if got := StandardContent(spec); got != want {
		t.Fatalf("StandardContent mismatch:\n got=%q\nwant=%q", got, want)
	}
}

func TestIntroContentUsesOnlyDescription(t *testing.T) {
	a := types.SectionSpec{Title: "A", Description: "Shared description.", Syntax: "x", Usage: "y", Code: "z"}
	b := types.SectionSpec{Title: "B", Description: "Shared description.", Syntax: "1", Usage: "2", Code: "3"}
	if IntroContent("Rust", a) != IntroContent("Rust", b) {
		t.Fatalf("intro content should depend only on the description")
	}

	got := IntroContent("Rust", a)
	for _, want := range []string{
		"# Welcome to Rust",
		"## What is Rust?\nShared description.",
		"## Why Learn Rust?",
		"## How This Tutorial Works",
		"## Learning Outcomes",
		"## Getting Ready",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("intro content missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSectionsTemplatesByPosition(t *testing.T) {
	specs := []types.SectionSpec{
		{Title: "Intro", Description: "What it is."},
		{Title: "Second", Description: "More."},
		{Title: "Third", Description: "Even more."},
	}
	got := RenderSections("Elixir", specs)
	if !strings.Contains(got[0].Content, "Welcome to Elixir") {
		t.Fatalf("first section should use the intro template: %q", got[0].Content)
	}
	for i := 1; i < len(got); i++ {
		if strings.Contains(got[i].Content, "Welcome to Elixir") {
			t.Fatalf("section %d should not use the intro template", i)
		}
		if !strings.HasPrefix(got[i].Content, "# "+specs[i].Title) {
			t.Fatalf("section %d should start with its title: %q", i, got[i].Content)
		}
	}
}

func drawSpec(t *rapid.T, label string) types.SectionSpec {
	text := rapid.StringMatching(`[a-z0-9 .]{0,24}`)
	return types.SectionSpec{
		Title:       text.Draw(t, label+".title"),
		Description: text.Draw(t, label+".description"),
		Syntax:      text.Draw(t, label+".syntax"),
		Usage:       text.Draw(t, label+".usage"),
		Code:        text.Draw(t, label+".code"),
	}
}

func TestRenderSectionsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Z][a-z]{1,10}`).Draw(t, "name")
		n := rapid.IntRange(0, 20).Draw(t, "n")
		specs := make([]types.SectionSpec, n)
		for i := range specs {
			specs[i] = drawSpec(t, "spec"+strconv.Itoa(i))
		}

		got := RenderSections(name, specs)
		if len(got) != n {
			t.Fatalf("len=%d want %d", len(got), n)
		}
		welcome := "Welcome to " + name
		for i, s := range got {
			if s.ID != strconv.Itoa(i+1) {
				t.Fatalf("section %d has id %q", i, s.ID)
			}
			if s.Title != specs[i].Title || s.Syntax != specs[i].Syntax || s.Usage != specs[i].Usage || s.CodeExample != specs[i].Code {
				t.Fatalf("section %d fields not copied verbatim: %+v vs %+v", i, s, specs[i])
			}
			if i == 0 {
				if !strings.Contains(s.Content, welcome) {
					t.Fatalf("intro section lacks %q", welcome)
				}
				continue
			}
			if strings.Contains(s.Content, welcome) {
				t.Fatalf("section %d contains intro heading", i)
			}
			if !strings.HasPrefix(s.Content, "# "+specs[i].Title) {
				t.Fatalf("section %d does not start with its title", i)
			}
		}
	})
}
