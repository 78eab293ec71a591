package types

// Category is the content family a language identifier is classified into.
type Category string

const (
	CategoryStyling    Category = "styling"
	CategoryMarkup     Category = "markup"
	CategoryFramework  Category = "framework"
	CategoryScripting  Category = "scripting"
	CategoryBackend    Category = "backend"
	CategoryDatabase   Category = "database"
	CategoryML         Category = "ml"
	CategoryDevOps     Category = "devops"
	CategoryBlockchain Category = "blockchain"
	CategoryGame       Category = "game"
	CategorySecurity   Category = "security"
	CategoryMobile     Category = "mobile"
	CategoryGeneral    Category = "general"
)

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryStyling,
		CategoryMarkup,
		CategoryFramework,
		CategoryScripting,
		CategoryBackend,
		CategoryDatabase,
		CategoryML,
		CategoryDevOps,
		CategoryBlockchain,
		CategoryGame,
		CategorySecurity,
		CategoryMobile,
		CategoryGeneral,
	}
}

func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// SectionSpec is one raw lesson record as stored in the catalog.
type SectionSpec struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Syntax      string `yaml:"syntax" json:"syntax"`
	Usage       string `yaml:"usage" json:"usage"`
	Code        string `yaml:"code" json:"code"`
}

// TutorialSection is a rendered lesson. ID is the 1-based position in the tutorial.
type TutorialSection struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Content     string `yaml:"content" json:"content"`
	Syntax      string `yaml:"syntax" json:"syntax"`
	Usage       string `yaml:"usage" json:"usage"`
	CodeExample string `yaml:"codeExample" json:"codeExample"`
}

type Tutorial struct {
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description" json:"description"`
	Icon        string            `yaml:"icon" json:"icon"`
	Sections    []TutorialSection `yaml:"sections" json:"sections"`
}
