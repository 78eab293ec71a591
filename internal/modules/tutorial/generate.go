package tutorial

import (
	"sync"

	"github.com/yungbote/neurobridge-tutorials/internal/modules/tutorial/catalog"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

// Generator composes classification, provider resolution and rendering.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	source SpecSource
}

func New(source SpecSource) *Generator {
	if source == nil {
		source = catalog.Default(nil)
	}
	return &Generator{source: source}
}

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

// Default returns the generator backed by the embedded catalog.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGenerator = New(catalog.Default(nil))
	})
	return defaultGenerator
}

// GenerateComprehensiveTutorial builds a tutorial from the embedded catalog.
func GenerateComprehensiveTutorial(languageID, languageName, icon, description string) types.Tutorial {
	return Default().Generate(languageID, languageName, icon, description)
}

// Generate builds the tutorial for languageID. An empty description is replaced by a default one.
func (g *Generator) Generate(languageID, languageName, icon, description string) types.Tutorial {
	tut, _ := g.GenerateClassified(languageID, languageName, icon, description)
	return tut
}

// Classification is the category and provider a language identifier resolved to.
type Classification struct {
	Category types.Category
	Provider types.ProviderKey
}

// Resolve classifies languageID and picks its provider.
func Resolve(languageID string) Classification {
	category := Classify(languageID)
	return Classification{Category: category, Provider: ProviderFor(languageID, category)}
}

// GenerateClassified is Generate that also reports how languageID was classified.
func (g *Generator) GenerateClassified(languageID, languageName, icon, description string) (types.Tutorial, Classification) {
	cls := Resolve(languageID)
	specs := g.source.Lessons(cls.Provider, languageName)
	return types.Tutorial{
		Title:       TutorialTitle(languageName),
		Description: TutorialDescription(languageName, description),
		Icon:        icon,
		Sections:    RenderSections(languageName, specs),
	}, cls
}

func TutorialTitle(languageName string) string {
	return "Master " + languageName
}

// TutorialDescription keeps any non-empty description as given, whitespace included.
func TutorialDescription(languageName, description string) string {
	if description == "" {
		return "Complete " + languageName + " tutorial from basics to a mini project"
	}
	return description
}
