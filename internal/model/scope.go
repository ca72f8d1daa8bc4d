package model

// ScopeVariant is the syntactic role a scope rule applies to.
type ScopeVariant int

const (
	// AttributeName scopes the value of a JSX attribute by the attribute name.
	AttributeName ScopeVariant = iota
	// ObjectPropertyKey scopes the value of an object property by its key.
	ObjectPropertyKey
	// CallCallee scopes the arguments of a call by the callee identifier.
	CallCallee
)

func (v ScopeVariant) String() string {
	switch v {
	case AttributeName:
		return "att"
	case ObjectPropertyKey:
		return "prop"
	case CallCallee:
		return "fn"
	default:
		return "unknown"
	}
}

// MatchKind determines how a pattern is compared against an identifier.
type MatchKind int

const (
	// Exact requires the identifier to equal the pattern.
	Exact MatchKind = iota
	// Contains requires the identifier to contain the pattern.
	Contains
	// StartsWith requires the identifier to start with the pattern.
	StartsWith
	// EndsWith requires the identifier to end with the pattern.
	EndsWith
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Contains:
		return "contains"
	case StartsWith:
		return "starts-with"
	case EndsWith:
		return "ends-with"
	default:
		return "unknown"
	}
}

// ScopeValue is a single pattern of a scope rule.
type ScopeValue struct {
	Kind    MatchKind
	Pattern string
}

// ScopeRule ties a set of patterns to one syntactic variant.
// Values is never empty for rules built by the scope parser.
type ScopeRule struct {
	Variant ScopeVariant
	Values  []ScopeValue
}

// ScopeConfiguration is the ordered list of rules of a run. Matching is the
// logical OR of all rules.
type ScopeConfiguration []ScopeRule
