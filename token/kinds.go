/*
File    : ponylex/token/kinds.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

// Kind constants. Grouping mirrors the four static tables plus the handful
// of kinds the lexer produces directly (TK_EOF, TK_ID, TK_INT, TK_FLOAT,
// TK_STRING) rather than pulling from a table. TK_LEX_ERROR is the zero
// value so an uninitialised Kind reads as an error, never as something
// that looks like a valid token.
const (
	TK_LEX_ERROR Kind = iota
	TK_EOF
	TK_ID
	TK_INT
	TK_FLOAT
	TK_STRING

	// Abstract keywords: never produced by the scanner, only by the AST
	// deserialiser via LookupAbstract, and consulted by Print.
	TK_NONE
	TK_PROGRAM
	TK_PACKAGE
	TK_MODULE
	TK_MEMBERS
	TK_FVAR
	TK_FLET
	TK_FFIDECL
	TK_FFICALL
	TK_TYPES
	TK_UNIONTYPE
	TK_ISECTTYPE
	TK_TUPLETYPE
	TK_NOMINAL
	TK_THISTYPE
	TK_BOXTYPE
	TK_FUNTYPE
	TK_INFERTYPE
	TK_ERRORTYPE
	TK_ISO_BIND
	TK_TRN_BIND
	TK_REF_BIND
	TK_VAL_BIND
	TK_BOX_BIND
	TK_TAG_BIND
	TK_ANY_BIND
	TK_BOX_GENERIC
	TK_TAG_GENERIC
	TK_ANY_GENERIC
	TK_LITERAL
	TK_LITERALBRANCH
	TK_OPERATORLITERAL
	TK_TYPEPARAMS
	TK_TYPEPARAM
	TK_PARAMS
	TK_PARAM
	TK_TYPEARGS
	TK_POSITIONALARGS
	TK_NAMEDARGS
	TK_NAMEDARG
	TK_UPDATEARG
	TK_SEQ
	TK_QUALIFY
	TK_CALL
	TK_TUPLE
	TK_ARRAY
	TK_CASES
	TK_CASE
	TK_TRY_NO_CHECK
	TK_REFERENCE
	TK_PACKAGEREF
	TK_TYPEREF
	TK_TYPEPARAMREF
	TK_NEWREF
	TK_NEWBEREF
	TK_BEREF
	TK_FUNREF
	TK_FVARREF
	TK_FLETREF
	TK_VARREF
	TK_LETREF
	TK_PARAMREF
	TK_NEWAPP
	TK_BEAPP
	TK_FUNAPP
	TK_NEWLINE
	TK_TEST

	// Keywords.
	TK_DONTCARE
	TK_COMPILER_INTRINSIC
	TK_USE
	TK_TYPE
	TK_INTERFACE
	TK_TRAIT
	TK_PRIMITIVE
	TK_CLASS
	TK_ACTOR
	TK_OBJECT
	TK_LAMBDA
	TK_AS
	TK_IS
	TK_ISNT
	TK_VAR
	TK_LET
	TK_NEW
	TK_FUN
	TK_BE
	TK_ISO
	TK_TRN
	TK_REF
	TK_VAL
	TK_BOX
	TK_TAG
	TK_THIS
	TK_RETURN
	TK_BREAK
	TK_CONTINUE
	TK_CONSUME
	TK_RECOVER
	TK_IF
	TK_THEN
	TK_ELSE
	TK_ELSEIF
	TK_END
	TK_FOR
	TK_IN
	TK_WHILE
	TK_DO
	TK_REPEAT
	TK_UNTIL
	TK_MATCH
	TK_WHERE
	TK_TRY
	TK_WITH
	TK_ERROR
	TK_NOT
	TK_AND
	TK_OR
	TK_XOR
	TK_IDENTITY
	TK_TRUE
	TK_FALSE

	// Symbols, including the newline-sensitive variants and the
	// parser-only TK_UNARY_MINUS (see symbols table ordering note).
	TK_ELLIPSIS
	TK_ARROW
	TK_DBLARROW
	TK_LSHIFT
	TK_RSHIFT
	TK_EQ
	TK_NE
	TK_LE
	TK_GE
	TK_LBRACE
	TK_RBRACE
	TK_LPAREN
	TK_RPAREN
	TK_LSQUARE
	TK_RSQUARE
	TK_COMMA
	TK_DOT
	TK_TILDE
	TK_COLON
	TK_SEMI
	TK_ASSIGN
	TK_PLUS
	TK_MINUS
	TK_MULTIPLY
	TK_DIVIDE
	TK_MOD
	TK_AT
	TK_LT
	TK_GT
	TK_PIPE
	TK_AMP
	TK_EPHEMERAL
	TK_BORROWED
	TK_QUESTION
	TK_UNARY_MINUS
	TK_LPAREN_NEW
	TK_LSQUARE_NEW
	TK_MINUS_NEW

	// Test-only keywords ($-prefixed), recognised by the lexer wherever
	// they appear (see LookupTestKeyword).
	TK_TEST_SEQ_SCOPE
	TK_TEST_SEQ
	TK_TEST_TRY_NO_CHECK
	TK_TEST_BORROWED
	TK_TEST_UPDATEARG
)

// kindNames backs kindName, used only for diagnostics/debug output; it is
// not part of the textual form a parser would match (see Print for that).
var kindNames = map[Kind]string{
	TK_LEX_ERROR: "TK_LEX_ERROR",
	TK_EOF:       "TK_EOF",
	TK_ID:        "TK_ID",
	TK_INT:       "TK_INT",
	TK_FLOAT:     "TK_FLOAT",
	TK_STRING:    "TK_STRING",
}

func init() {
	for _, e := range abstractTable {
		if _, ok := kindNames[e.Kind]; !ok {
			kindNames[e.Kind] = "TK_" + upper(e.Text)
		}
	}
	// Explicit names win over the derived ones above for kinds whose
	// table text doesn't cleanly uppercase into the original name
	// (e.g. punctuation-keyed symbols, and duplicate-text newline
	// variants).
	for k, v := range explicitKindNames {
		kindNames[k] = v
	}
}

func kindName(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

var explicitKindNames = map[Kind]string{
	TK_DONTCARE:           "TK_DONTCARE",
	TK_COMPILER_INTRINSIC: "TK_COMPILER_INTRINSIC",
	TK_USE:                "TK_USE",
	TK_TYPE:               "TK_TYPE",
	TK_INTERFACE:          "TK_INTERFACE",
	TK_TRAIT:              "TK_TRAIT",
	TK_PRIMITIVE:          "TK_PRIMITIVE",
	TK_CLASS:              "TK_CLASS",
	TK_ACTOR:              "TK_ACTOR",
	TK_OBJECT:             "TK_OBJECT",
	TK_LAMBDA:             "TK_LAMBDA",
	TK_AS:                 "TK_AS",
	TK_IS:                 "TK_IS",
	TK_ISNT:               "TK_ISNT",
	TK_VAR:                "TK_VAR",
	TK_LET:                "TK_LET",
	TK_NEW:                "TK_NEW",
	TK_FUN:                "TK_FUN",
	TK_BE:                 "TK_BE",
	TK_ISO:                "TK_ISO",
	TK_TRN:                "TK_TRN",
	TK_REF:                "TK_REF",
	TK_VAL:                "TK_VAL",
	TK_BOX:                "TK_BOX",
	TK_TAG:                "TK_TAG",
	TK_THIS:               "TK_THIS",
	TK_RETURN:             "TK_RETURN",
	TK_BREAK:              "TK_BREAK",
	TK_CONTINUE:           "TK_CONTINUE",
	TK_CONSUME:            "TK_CONSUME",
	TK_RECOVER:            "TK_RECOVER",
	TK_IF:                 "TK_IF",
	TK_THEN:               "TK_THEN",
	TK_ELSE:               "TK_ELSE",
	TK_ELSEIF:             "TK_ELSEIF",
	TK_END:                "TK_END",
	TK_FOR:                "TK_FOR",
	TK_IN:                 "TK_IN",
	TK_WHILE:              "TK_WHILE",
	TK_DO:                 "TK_DO",
	TK_REPEAT:             "TK_REPEAT",
	TK_UNTIL:              "TK_UNTIL",
	TK_MATCH:              "TK_MATCH",
	TK_WHERE:              "TK_WHERE",
	TK_TRY:                "TK_TRY",
	TK_WITH:               "TK_WITH",
	TK_ERROR:              "TK_ERROR",
	TK_NOT:                "TK_NOT",
	TK_AND:                "TK_AND",
	TK_OR:                 "TK_OR",
	TK_XOR:                "TK_XOR",
	TK_IDENTITY:           "TK_IDENTITY",
	TK_TRUE:               "TK_TRUE",
	TK_FALSE:              "TK_FALSE",

	TK_ELLIPSIS:     "TK_ELLIPSIS",
	TK_ARROW:        "TK_ARROW",
	TK_DBLARROW:     "TK_DBLARROW",
	TK_LSHIFT:       "TK_LSHIFT",
	TK_RSHIFT:       "TK_RSHIFT",
	TK_EQ:           "TK_EQ",
	TK_NE:           "TK_NE",
	TK_LE:           "TK_LE",
	TK_GE:           "TK_GE",
	TK_LBRACE:       "TK_LBRACE",
	TK_RBRACE:       "TK_RBRACE",
	TK_LPAREN:       "TK_LPAREN",
	TK_RPAREN:       "TK_RPAREN",
	TK_LSQUARE:      "TK_LSQUARE",
	TK_RSQUARE:      "TK_RSQUARE",
	TK_COMMA:        "TK_COMMA",
	TK_DOT:          "TK_DOT",
	TK_TILDE:        "TK_TILDE",
	TK_COLON:        "TK_COLON",
	TK_SEMI:         "TK_SEMI",
	TK_ASSIGN:       "TK_ASSIGN",
	TK_PLUS:         "TK_PLUS",
	TK_MINUS:        "TK_MINUS",
	TK_MULTIPLY:     "TK_MULTIPLY",
	TK_DIVIDE:       "TK_DIVIDE",
	TK_MOD:          "TK_MOD",
	TK_AT:           "TK_AT",
	TK_LT:           "TK_LT",
	TK_GT:           "TK_GT",
	TK_PIPE:         "TK_PIPE",
	TK_AMP:          "TK_AMP",
	TK_EPHEMERAL:    "TK_EPHEMERAL",
	TK_BORROWED:     "TK_BORROWED",
	TK_QUESTION:     "TK_QUESTION",
	TK_UNARY_MINUS:  "TK_UNARY_MINUS",
	TK_LPAREN_NEW:   "TK_LPAREN_NEW",
	TK_LSQUARE_NEW:  "TK_LSQUARE_NEW",
	TK_MINUS_NEW:    "TK_MINUS_NEW",

	TK_TEST_SEQ_SCOPE:    "TK_TEST_SEQ_SCOPE",
	TK_TEST_SEQ:          "TK_TEST_SEQ",
	TK_TEST_TRY_NO_CHECK: "TK_TEST_TRY_NO_CHECK",
	TK_TEST_BORROWED:     "TK_TEST_BORROWED",
	TK_TEST_UPDATEARG:    "TK_TEST_UPDATEARG",
}
