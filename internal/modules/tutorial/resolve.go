package tutorial

import (
	"strings"

	"github.com/yungbote/neurobridge-tutorials/internal/normalization"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

// SpecSource supplies the ordered lesson list of a provider with the display name filled in.
type SpecSource interface {
	Lessons(key types.ProviderKey, displayName string) []types.SectionSpec
}

// SpecSourceFunc adapts a plain function to SpecSource.
type SpecSourceFunc func(key types.ProviderKey, displayName string) []types.SectionSpec

func (f SpecSourceFunc) Lessons(key types.ProviderKey, displayName string) []types.SectionSpec {
	return f(key, displayName)
}

type variantRule struct {
	provider types.ProviderKey
	contains []string
	excludes []string
}

func (r variantRule) match(id string) bool {
	for _, ex := range r.excludes {
		if strings.Contains(id, ex) {
			return false
		}
	}
	for _, c := range r.contains {
		if strings.Contains(id, c) {
			return true
		}
	}
	return false
}

type subDispatch struct {
	variants []variantRule
	fallback types.ProviderKey
}

var singleProvider = map[types.Category]types.ProviderKey{
	types.CategoryStyling:    types.ProviderStyling,
	types.CategoryMarkup:     types.ProviderMarkup,
	types.CategoryDatabase:   types.ProviderDatabase,
	types.CategoryML:         types.ProviderML,
	types.CategoryDevOps:     types.ProviderDevOps,
	types.CategoryBlockchain: types.ProviderBlockchain,
	types.CategoryGame:       types.ProviderGame,
	types.CategorySecurity:   types.ProviderSecurity,
	types.CategoryGeneral:    types.ProviderGeneral,
}

var multiProvider = map[types.Category]subDispatch{
	types.CategoryFramework: {
		variants: []variantRule{
			{provider: types.ProviderFrameworkNext, contains: []string{"next"}},
			{provider: types.ProviderFrameworkVue, contains: []string{"vue"}},
			{provider: types.ProviderFrameworkReact, contains: []string{"react"}, excludes: []string{"native"}},
			{provider: types.ProviderFrameworkAngular, contains: []string{"angular"}},
		},
		fallback: types.ProviderFramework,
	},
	types.CategoryScripting: {
		variants: []variantRule{
			{provider: types.ProviderScriptingPython, contains: []string{"python"}},
		},
		fallback: types.ProviderScripting,
	},
	types.CategoryBackend: {
		variants: []variantRule{
			{provider: types.ProviderBackendNode, contains: []string{"node"}},
			{provider: types.ProviderBackendJava, contains: []string{"java"}},
			{provider: types.ProviderBackendGo, contains: []string{"go"}},
			{provider: types.ProviderBackendRust, contains: []string{"rust"}},
			{provider: types.ProviderBackendPHP, contains: []string{"php"}},
			{provider: types.ProviderBackendRuby, contains: []string{"ruby", "rails"}},
		},
		fallback: types.ProviderBackend,
	},
	types.CategoryMobile: {
		variants: []variantRule{
			{provider: types.ProviderMobileReactNative, contains: []string{"react-native"}},
			{provider: types.ProviderMobileFlutter, contains: []string{"flutter"}},
			{provider: types.ProviderMobileSwift, contains: []string{"swift"}},
			{provider: types.ProviderMobileKotlin, contains: []string{"kotlin"}},
		},
		fallback: types.ProviderMobileReactNative,
	},
}

// ProviderFor picks the catalog provider for an identifier already classified into category.
func ProviderFor(identifier string, category types.Category) types.ProviderKey {
	if key, ok := singleProvider[category]; ok {
		return key
	}
	dispatch, ok := multiProvider[category]
	if !ok {
		return types.ProviderGeneral
	}
	id := normalization.ParseInputString(identifier)
	for _, v := range dispatch.variants {
		if v.match(id) {
			return v.provider
		}
	}
	return dispatch.fallback
}

// ResolveSpecs returns the raw lesson list for the identifier/category pair.
func (g *Generator) ResolveSpecs(identifier string, category types.Category, displayName string) []types.SectionSpec {
	return g.source.Lessons(ProviderFor(identifier, category), displayName)
}
