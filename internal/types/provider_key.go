package types

// ProviderKey names one lesson list in the catalog.
type ProviderKey string

const (
	ProviderStyling ProviderKey = "styling"
	ProviderMarkup  ProviderKey = "markup"

	ProviderFrameworkNext    ProviderKey = "framework-next"
	ProviderFrameworkVue     ProviderKey = "framework-vue"
	ProviderFrameworkReact   ProviderKey = "framework-react"
	ProviderFrameworkAngular ProviderKey = "framework-angular"
	ProviderFramework        ProviderKey = "framework"

	ProviderScriptingPython ProviderKey = "scripting-python"
	ProviderScripting       ProviderKey = "scripting"

	ProviderBackendNode ProviderKey = "backend-node"
	ProviderBackendJava ProviderKey = "backend-java"
	ProviderBackendGo   ProviderKey = "backend-go"
	ProviderBackendRust ProviderKey = "backend-rust"
	ProviderBackendPHP  ProviderKey = "backend-php"
	ProviderBackendRuby ProviderKey = "backend-ruby"
	ProviderBackend     ProviderKey = "backend"

	ProviderMobileReactNative ProviderKey = "mobile-react-native"
	ProviderMobileFlutter     ProviderKey = "mobile-flutter"
	ProviderMobileSwift       ProviderKey = "mobile-swift"
	ProviderMobileKotlin      ProviderKey = "mobile-kotlin"

	ProviderDatabase   ProviderKey = "database"
	ProviderML         ProviderKey = "ml"
	ProviderDevOps     ProviderKey = "devops"
	ProviderBlockchain ProviderKey = "blockchain"
	ProviderGame       ProviderKey = "game"
	ProviderSecurity   ProviderKey = "security"
	ProviderGeneral    ProviderKey = "general"
)

var providerCategories = map[ProviderKey]Category{
	ProviderStyling:           CategoryStyling,
	ProviderMarkup:            CategoryMarkup,
	ProviderFrameworkNext:     CategoryFramework,
	ProviderFrameworkVue:      CategoryFramework,
	ProviderFrameworkReact:    CategoryFramework,
	ProviderFrameworkAngular:  CategoryFramework,
	ProviderFramework:         CategoryFramework,
	ProviderScriptingPython:   CategoryScripting,
	ProviderScripting:         CategoryScripting,
	ProviderBackendNode:       CategoryBackend,
	ProviderBackendJava:       CategoryBackend,
	ProviderBackendGo:         CategoryBackend,
	ProviderBackendRust:       CategoryBackend,
	ProviderBackendPHP:        CategoryBackend,
	ProviderBackendRuby:       CategoryBackend,
	ProviderBackend:           CategoryBackend,
	ProviderMobileReactNative: CategoryMobile,
	ProviderMobileFlutter:     CategoryMobile,
	ProviderMobileSwift:       CategoryMobile,
	ProviderMobileKotlin:      CategoryMobile,
	ProviderDatabase:          CategoryDatabase,
	ProviderML:                CategoryML,
	ProviderDevOps:            CategoryDevOps,
	ProviderBlockchain:        CategoryBlockchain,
	ProviderGame:              CategoryGame,
	ProviderSecurity:          CategorySecurity,
	ProviderGeneral:           CategoryGeneral,
}

// AllProviderKeys returns every provider key grouped by category in canonical order.
func AllProviderKeys() []ProviderKey {
	return []ProviderKey{
		ProviderStyling,
		ProviderMarkup,
		ProviderFrameworkNext,
		ProviderFrameworkVue,
		ProviderFrameworkReact,
		ProviderFrameworkAngular,
		ProviderFramework,
		ProviderScriptingPython,
		ProviderScripting,
		ProviderBackendNode,
		ProviderBackendJava,
		ProviderBackendGo,
		ProviderBackendRust,
		ProviderBackendPHP,
		ProviderBackendRuby,
		ProviderBackend,
		ProviderDatabase,
		ProviderML,
		ProviderDevOps,
		ProviderBlockchain,
		ProviderGame,
		ProviderSecurity,
		ProviderMobileReactNative,
		ProviderMobileFlutter,
		ProviderMobileSwift,
		ProviderMobileKotlin,
		ProviderGeneral,
	}
}

// Category returns the category that owns the provider, or general for unknown keys.
func (k ProviderKey) Category() Category {
	if c, ok := providerCategories[k]; ok {
		return c
	}
	return CategoryGeneral
}

func (k ProviderKey) Valid() bool {
	_, ok := providerCategories[k]
	return ok
}

func (k ProviderKey) String() string { return string(k) }
