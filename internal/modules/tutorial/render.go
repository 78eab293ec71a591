package tutorial

import (
	"strconv"
	"strings"

	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

// RenderSections turns raw lesson specs into tutorial sections with dense 1-based ids.
// The first section gets the intro page, every later one the standard lesson layout.
func RenderSections(displayName string, specs []types.SectionSpec) []types.TutorialSection {
	out := make([]types.TutorialSection, 0, len(specs))
	for i, spec := range specs {
		out = append(out, RenderSection(displayName, i, spec))
	}
	return out
}

// RenderSection renders the lesson found at zero-based position index.
func RenderSection(displayName string, index int, spec types.SectionSpec) types.TutorialSection {
	content := StandardContent(spec)
	if index == 0 {
		content = IntroContent(displayName, spec)
	}
	return types.TutorialSection{
		ID:          strconv.Itoa(index + 1),
		Title:       spec.Title,
		Content:     content,
		Syntax:      spec.Syntax,
		Usage:       spec.Usage,
		CodeExample: spec.Code,
	}
}

// IntroContent is the orientation page. Only the description comes from the lesson record.
func IntroContent(displayName string, spec types.SectionSpec) string {
	var b strings.Builder
	b.WriteString("# Welcome to " + displayName + "\n\n")

	b.WriteString("## What is " + displayName + "?\n")
	b.WriteString(spec.Description + "\n\n")

	b.WriteString("## Why Learn " + displayName + "?\n")
	b.WriteString("- It is widely used in real-world projects and teams\n")
	b.WriteString("- The concepts transfer to other languages and tools you will meet later\n")
	b.WriteString("- A solid foundation makes advanced topics far easier to pick up\n")
	b.WriteString("- Hands-on skills open doors to new projects and career opportunities\n\n")

	b.WriteString("## How This Tutorial Works\n")
	b.WriteString("- Lessons build on each other, from the basics to advanced topics\n")
	b.WriteString("- Every lesson explains the syntax, shows an example and describes when to use it\n")
	b.WriteString("- Try each code example yourself and change it to see what happens\n")
	b.WriteString("- The final lesson ties everything together in a mini project\n\n")

	b.WriteString("## Learning Outcomes\n")
	b.WriteString("- Understand the core concepts and terminology\n")
	b.WriteString("- Read and write idiomatic code with confidence\n")
	b.WriteString("- Apply best practices to structure your work\n")
	b.WriteString("- Build a complete mini project from scratch\n\n")

	b.WriteString("## Getting Ready\n")
	b.WriteString("- Set up a code editor you are comfortable with\n")
	b.WriteString("- Keep a scratch file or playground open to run the examples\n")
	b.WriteString("- Take your time: practice matters more than speed\n")
	b.WriteString("- Move on to the next lesson when you are ready to begin")
	return b.String()
}

// StandardContent renders every field of a regular lesson with no added boilerplate.
func StandardContent(spec types.SectionSpec) string {
	return "# " + spec.Title + "\n\n" +
		spec.Description + "\n\n" +
		"## Syntax\n" + spec.Syntax + "\n\n" +
		"## Example\n" + spec.Code + "\n\n" +
		"## Usage\n" + spec.Usage
}
