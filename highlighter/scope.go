package highlighter

import "strings"

// Scope is the closed set of grammar scope categories the style table knows.
// Grammar scope strings are parsed into a Scope once; styling a token is then
// an index into StyleTable.
type Scope uint8

const (
	ScopeText Scope = iota
	ScopeKeyword
	ScopeKeywordControl
	ScopeKeywordOperator
	ScopeKeywordOther
	ScopeKeywordOtherUse
	ScopeKeywordOtherDirective
	ScopeStorageType
	ScopeStorageModifier
	ScopeStorageModifierLifetime
	ScopeString
	ScopeStringQuoted
	ScopeStringQuotedDouble
	ScopeStringQuotedSingle
	ScopeConstant
	ScopeConstantNumeric
	ScopeConstantLanguage
	ScopeConstantCharacter
	ScopeEntityNameFunction
	ScopeEntityNameFunctionMacro
	ScopeEntityNameNamespace
	ScopeEntityNameType
	ScopeEntityNameTypeStruct
	ScopeEntityNameTypeEnum
	ScopeEntityNameClass
	ScopeEntityNameLifetime
	ScopeSupportFunction
	ScopeSupportFunctionMacro
	ScopeSupportType
	ScopeSupportTypePrimitive
	ScopeMetaFunctionCall
	ScopeMetaMacro
	ScopeMetaAttribute
	ScopeMetaPreprocessor
	ScopeMetaUse
	ScopeVariable
	ScopeVariableParameter
	ScopeVariableOther
	ScopeVariableOtherMember
	ScopePunctuation
	ScopePunctuationSeparator
	ScopePunctuationTerminator
	ScopePunctuationDefinition
	ScopePunctuationDefinitionLifetime

	scopeCount
)

// Role is a semantic colour slot of a theme.
type Role uint8

const (
	RoleText Role = iota
	RoleKeyword
	RoleString
	RoleLiteral
	RoleFunction
	RoleType
	RoleVariable
	RolePunctuation
	RolePreprocessor
)

type scopeRule struct {
	name string
	role Role
	bold bool
}

var scopeRules = [scopeCount]scopeRule{
	ScopeText:                          {"text", RoleText, false},
	ScopeKeyword:                       {"keyword", RoleKeyword, true},
	ScopeKeywordControl:                {"keyword.control", RoleKeyword, true},
	ScopeKeywordOperator:               {"keyword.operator", RoleKeyword, false},
	ScopeKeywordOther:                  {"keyword.other", RoleKeyword, true},
	ScopeKeywordOtherUse:               {"keyword.other.use", RoleKeyword, true},
	ScopeKeywordOtherDirective:         {"keyword.other.directive", RolePreprocessor, false},
	ScopeStorageType:                   {"storage.type", RoleKeyword, true},
	ScopeStorageModifier:               {"storage.modifier", RoleKeyword, false},
	ScopeStorageModifierLifetime:       {"storage.modifier.lifetime", RoleKeyword, false},
	ScopeString:                        {"string", RoleString, false},
	ScopeStringQuoted:                  {"string.quoted", RoleString, false},
	ScopeStringQuotedDouble:            {"string.quoted.double", RoleString, false},
	ScopeStringQuotedSingle:            {"string.quoted.single", RoleString, false},
	ScopeConstant:                      {"constant", RoleLiteral, false},
	ScopeConstantNumeric:               {"constant.numeric", RoleLiteral, false},
	ScopeConstantLanguage:              {"constant.language", RoleLiteral, false},
	ScopeConstantCharacter:             {"constant.character", RoleLiteral, false},
	ScopeEntityNameFunction:            {"entity.name.function", RoleFunction, false},
	ScopeEntityNameFunctionMacro:       {"entity.name.function.macro", RolePreprocessor, true},
	ScopeEntityNameNamespace:           {"entity.name.namespace", RoleFunction, false},
	ScopeEntityNameType:                {"entity.name.type", RoleType, false},
	ScopeEntityNameTypeStruct:          {"entity.name.type.struct", RoleType, false},
	ScopeEntityNameTypeEnum:            {"entity.name.type.enum", RoleType, false},
	ScopeEntityNameClass:               {"entity.name.class", RoleType, false},
	ScopeEntityNameLifetime:            {"entity.name.lifetime", RoleKeyword, false},
	ScopeSupportFunction:               {"support.function", RoleFunction, false},
	ScopeSupportFunctionMacro:          {"support.function.macro", RolePreprocessor, true},
	ScopeSupportType:                   {"support.type", RoleType, false},
	ScopeSupportTypePrimitive:          {"support.type.primitive", RoleType, false},
	ScopeMetaFunctionCall:              {"meta.function-call", RoleFunction, false},
	ScopeMetaMacro:                     {"meta.macro", RolePreprocessor, true},
	ScopeMetaAttribute:                 {"meta.attribute", RolePreprocessor, false},
	ScopeMetaPreprocessor:              {"meta.preprocessor", RolePreprocessor, false},
	ScopeMetaUse:                       {"meta.use", RoleText, false},
	ScopeVariable:                      {"variable", RoleVariable, false},
	ScopeVariableParameter:             {"variable.parameter", RoleVariable, false},
	ScopeVariableOther:                 {"variable.other", RoleVariable, false},
	ScopeVariableOtherMember:           {"variable.other.member", RoleVariable, false},
	ScopePunctuation:                   {"punctuation", RolePunctuation, false},
	ScopePunctuationSeparator:          {"punctuation.separator", RolePunctuation, false},
	ScopePunctuationTerminator:         {"punctuation.terminator", RolePunctuation, false},
	ScopePunctuationDefinition:         {"punctuation.definition", RolePunctuation, false},
	ScopePunctuationDefinitionLifetime: {"punctuation.definition.lifetime", RoleKeyword, false},
}

var scopesByName = func() map[string]Scope {
	m := make(map[string]Scope, scopeCount)
	for s := ScopeText; s < scopeCount; s++ {
		m[scopeRules[s].name] = s
	}
	return m
}()

// ParseScope maps a dotted grammar scope name to the most specific known
// Scope, dropping trailing segments until one matches. Unknown names are
// ScopeText.
func ParseScope(name string) Scope {
	for name != "" {
		if s, ok := scopesByName[name]; ok {
			return s
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return ScopeText
}

func (s Scope) String() string {
	if s >= scopeCount {
		return scopeRules[ScopeText].name
	}
	return scopeRules[s].name
}

// Role returns the colour slot s is painted with.
func (s Scope) Role() Role {
	if s >= scopeCount {
		return RoleText
	}
	return scopeRules[s].role
}

// Bold reports whether s is rendered in a bold weight.
func (s Scope) Bold() bool {
	return s < scopeCount && scopeRules[s].bold
}

func (r Role) String() string {
	switch r {
	case RoleKeyword:
		return "keyword"
	case RoleString:
		return "string"
	case RoleLiteral:
		return "literal"
	case RoleFunction:
		return "function"
	case RoleType:
		return "type"
	case RoleVariable:
		return "variable"
	case RolePunctuation:
		return "punctuation"
	case RolePreprocessor:
		return "preprocessor"
	default:
		return "text"
	}
}
