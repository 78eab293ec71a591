package catalog

import "github.com/yungbote/neurobridge-tutorials/internal/types"

// fallback lessons served for every provider when the catalog files cannot be loaded
var fallbackLessons = []types.SectionSpec{
	{
		Title:       "{name} Introduction",
		Description: "{name} is a technology used to build software. This tutorial walks through its core ideas step by step.",
		Syntax:      "Every program is made of small building blocks that are combined into larger ones.",
		Usage:       "Start here to get an overview before diving into the details.",
		Code:        "// Your first example\nprint('Hello, World!')",
	},
	{
		Title:       "{name} Fundamentals",
		Description: "Learn the basic concepts: values, names, and the rules that connect them.",
		Syntax:      "name = value",
		Usage:       "Use the fundamentals in every program you write.",
		Code:        "message = 'Learning step by step'\nprint(message)",
	},
	{
		Title:       "{name} Mini Project",
		Description: "Put everything together in a small project that solves a real problem.",
		Syntax:      "Plan -> Build -> Test -> Improve",
		Usage:       "Use the mini project to practise what you have learned.",
		Code:        "tasks = []\ntasks.append('learn the basics')\nprint(tasks)",
	},
}

// Fallback builds a catalog that serves the fallback lessons for every provider.
func Fallback() *Catalog {
	providers := make(map[types.ProviderKey][]types.SectionSpec, len(types.AllProviderKeys()))
	for _, key := range types.AllProviderKeys() {
		providers[key] = fallbackLessons
	}
	return &Catalog{providers: providers}
}
