package tutorial

import (
	"strings"

	"github.com/yungbote/neurobridge-tutorials/internal/normalization"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

// matcher tests a normalized identifier.
type matcher struct {
	prefixes []string
	contains []string
	exact    []string
	// excludes vetoes the rule when any token is contained in the identifier.
	excludes []string
}

func (m matcher) match(id string) bool {
	for _, ex := range m.excludes {
		if strings.Contains(id, ex) {
			return false
		}
	}
	for _, p := range m.prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	for _, c := range m.contains {
		if strings.Contains(id, c) {
			return true
		}
	}
	for _, e := range m.exact {
		if id == e {
			return true
		}
	}
	return false
}

type classifierRule struct {
	category types.Category
	matcher  matcher
}

var mobileTokens = []string{"react-native", "flutter", "swift", "kotlin"}

// Order is significant: patterns overlap and the first match wins.
var classifierRules = []classifierRule{
	{types.CategoryStyling, matcher{prefixes: []string{"css", "tailwind"}}},
	{types.CategoryMarkup, matcher{prefixes: []string{"html"}}},
	{types.CategoryMobile, matcher{contains: mobileTokens}},
	{types.CategoryFramework, matcher{
		prefixes: []string{"react", "next", "vue", "angular"},
		excludes: mobileTokens,
	}},
	{types.CategoryScripting, matcher{
		prefixes: []string{"javascript", "typescript"},
		excludes: []string{"node", "backend"},
	}},
	{types.CategoryGame, matcher{contains: []string{"unity", "unreal", "godot", "game"}}},
	{types.CategoryBackend, matcher{
		prefixes: []string{"nodejs", "python-backend", "java-backend", "go-backend", "rust-backend", "php", "ruby", "rails", "rust"},
		exact:    []string{"java", "go"},
	}},
	{types.CategoryDatabase, matcher{contains: []string{"sql", "postgres", "postgresql", "mongodb", "redis", "firebase", "database"}}},
	{types.CategoryML, matcher{prefixes: []string{"tensorflow", "pytorch", "scikit", "sklearn", "ai-ml", "ml"}}},
	{types.CategoryDevOps, matcher{contains: []string{"docker", "kubernetes", "terraform", "aws", "github-actions", "devops"}}},
	{types.CategoryBlockchain, matcher{contains: []string{"solidity", "web3", "ethereum", "blockchain"}}},
	{types.CategorySecurity, matcher{contains: []string{"penetration", "network-security", "cryptography", "security"}}},
	{types.CategoryScripting, matcher{
		prefixes: []string{"python", "pandas"},
		exact:    []string{"r"},
	}},
}

// Classify maps a language identifier to its content category. It never fails:
// identifiers that match no rule are general.
func Classify(identifier string) types.Category {
	id := normalization.ParseInputString(identifier)
	for _, rule := range classifierRules {
		if rule.matcher.match(id) {
			return rule.category
		}
	}
	return types.CategoryGeneral
}
