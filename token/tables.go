/*
File    : ponylex/token/tables.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The four static tables the lexer and Print/LookupAbstract consult. They are
package-level vars assigned directly from literals (not built in an init
func) so that package-level initialisation order never matters: by the time
any init() in this package runs, every table is already populated.
*/
package token

// Entry pairs a canonical textual spelling with the Kind it denotes.
type Entry struct {
	Text string
	Kind Kind
}

// symbolTable is ordered: a symbol that is a prefix of another must come
// after it, so the longest match wins when scanned front-to-back. The
// newline-sensitive variants (TK_LPAREN_NEW, TK_LSQUARE_NEW, TK_MINUS_NEW)
// and TK_UNARY_MINUS intentionally duplicate earlier text; they exist here
// for Print to find, not to be matched by the symbol scanner (matching
// always stops at the first, earlier entry for that text). See
// symbol matcher in package lexer.
var symbolTable = []Entry{
	{"...", TK_ELLIPSIS},
	{"->", TK_ARROW},
	{"=>", TK_DBLARROW},

	{"<<", TK_LSHIFT},
	{">>", TK_RSHIFT},

	{"==", TK_EQ},
	{"!=", TK_NE},

	{"<=", TK_LE},
	{">=", TK_GE},

	{"{", TK_LBRACE},
	{"}", TK_RBRACE},
	{"(", TK_LPAREN},
	{")", TK_RPAREN},
	{"[", TK_LSQUARE},
	{"]", TK_RSQUARE},
	{",", TK_COMMA},

	{".", TK_DOT},
	{"~", TK_TILDE},
	{":", TK_COLON},
	{";", TK_SEMI},
	{"=", TK_ASSIGN},

	{"+", TK_PLUS},
	{"-", TK_MINUS},
	{"*", TK_MULTIPLY},
	{"/", TK_DIVIDE},
	{"%", TK_MOD},
	{"@", TK_AT},

	{"<", TK_LT},
	{">", TK_GT},

	{"|", TK_PIPE},
	{"&", TK_AMP},
	{"^", TK_EPHEMERAL},
	{"!", TK_BORROWED},

	{"?", TK_QUESTION},
	{"-", TK_UNARY_MINUS},

	{"(", TK_LPAREN_NEW},
	{"[", TK_LSQUARE_NEW},
	{"-", TK_MINUS_NEW},
}

// keywordTable holds the exact ASCII spelling of every reserved word.
var keywordTable = []Entry{
	{"_", TK_DONTCARE},
	{"compiler_intrinsic", TK_COMPILER_INTRINSIC},

	{"use", TK_USE},
	{"type", TK_TYPE},
	{"interface", TK_INTERFACE},
	{"trait", TK_TRAIT},
	{"primitive", TK_PRIMITIVE},
	{"class", TK_CLASS},
	{"actor", TK_ACTOR},
	{"object", TK_OBJECT},
	{"lambda", TK_LAMBDA},

	{"as", TK_AS},
	{"is", TK_IS},
	{"isnt", TK_ISNT},

	{"var", TK_VAR},
	{"let", TK_LET},
	{"new", TK_NEW},
	{"fun", TK_FUN},
	{"be", TK_BE},

	{"iso", TK_ISO},
	{"trn", TK_TRN},
	{"ref", TK_REF},
	{"val", TK_VAL},
	{"box", TK_BOX},
	{"tag", TK_TAG},

	{"this", TK_THIS},
	{"return", TK_RETURN},
	{"break", TK_BREAK},
	{"continue", TK_CONTINUE},
	{"consume", TK_CONSUME},
	{"recover", TK_RECOVER},

	{"if", TK_IF},
	{"then", TK_THEN},
	{"else", TK_ELSE},
	{"elseif", TK_ELSEIF},
	{"end", TK_END},
	{"for", TK_FOR},
	{"in", TK_IN},
	{"while", TK_WHILE},
	{"do", TK_DO},
	{"repeat", TK_REPEAT},
	{"until", TK_UNTIL},
	{"match", TK_MATCH},
	{"where", TK_WHERE},
	{"try", TK_TRY},
	{"with", TK_WITH},
	{"error", TK_ERROR},

	{"not", TK_NOT},
	{"and", TK_AND},
	{"or", TK_OR},
	{"xor", TK_XOR},

	{"identityof", TK_IDENTITY},

	{"true", TK_TRUE},
	{"false", TK_FALSE},
}

// abstractTable holds token kinds the scanner never emits, used only for
// rendering serialised ASTs (LookupAbstract) and for Print.
var abstractTable = []Entry{
	{"x", TK_NONE}, // needed for AST printing

	{"program", TK_PROGRAM},
	{"package", TK_PACKAGE},
	{"module", TK_MODULE},

	{"members", TK_MEMBERS},
	{"fvar", TK_FVAR},
	{"flet", TK_FLET},
	{"ffidecl", TK_FFIDECL},
	{"fficall", TK_FFICALL},

	{"types", TK_TYPES},
	{"uniontype", TK_UNIONTYPE},
	{"isecttype", TK_ISECTTYPE},
	{"tupletype", TK_TUPLETYPE},
	{"nominal", TK_NOMINAL},
	{"thistype", TK_THISTYPE},
	{"boxtype", TK_BOXTYPE},
	{"funtype", TK_FUNTYPE},
	{"infer", TK_INFERTYPE},
	{"errortype", TK_ERRORTYPE},

	{"iso", TK_ISO_BIND},
	{"trn", TK_TRN_BIND},
	{"ref", TK_REF_BIND},
	{"val", TK_VAL_BIND},
	{"box", TK_BOX_BIND},
	{"tag", TK_TAG_BIND},
	{"any", TK_ANY_BIND},

	{"boxgen", TK_BOX_GENERIC},
	{"taggen", TK_TAG_GENERIC},
	{"anygen", TK_ANY_GENERIC},

	{"literal", TK_LITERAL},
	{"branch", TK_LITERALBRANCH},
	{"opliteral", TK_OPERATORLITERAL},

	{"typeparams", TK_TYPEPARAMS},
	{"typeparam", TK_TYPEPARAM},
	{"params", TK_PARAMS},
	{"param", TK_PARAM},
	{"typeargs", TK_TYPEARGS},
	{"positionalargs", TK_POSITIONALARGS},
	{"namedargs", TK_NAMEDARGS},
	{"namedarg", TK_NAMEDARG},
	{"updatearg", TK_UPDATEARG},

	{"seq", TK_SEQ},
	{"qualify", TK_QUALIFY},
	{"call", TK_CALL},
	{"tuple", TK_TUPLE},
	{"array", TK_ARRAY},
	{"cases", TK_CASES},
	{"case", TK_CASE},
	{"try", TK_TRY_NO_CHECK},

	{"reference", TK_REFERENCE},
	{"packageref", TK_PACKAGEREF},
	{"typeref", TK_TYPEREF},
	{"typeparamref", TK_TYPEPARAMREF},
	{"newref", TK_NEWREF},
	{"newberef", TK_NEWBEREF},
	{"beref", TK_BEREF},
	{"funref", TK_FUNREF},
	{"fvarref", TK_FVARREF},
	{"fletref", TK_FLETREF},
	{"varref", TK_VARREF},
	{"letref", TK_LETREF},
	{"paramref", TK_PARAMREF},
	{"newapp", TK_NEWAPP},
	{"beapp", TK_BEAPP},
	{"funapp", TK_FUNAPP},

	{"\n", TK_NEWLINE},

	{"test", TK_TEST},
}

// testKeywordTable holds the $-prefixed identifiers the lexer recognises
// whenever it sees a leading '$'.
var testKeywordTable = []Entry{
	{"$scope", TK_TEST_SEQ_SCOPE},
	{"$seq", TK_TEST_SEQ},
	{"$try_no_check", TK_TEST_TRY_NO_CHECK},
	{"$borrowed", TK_TEST_BORROWED},
	{"$updatearg", TK_TEST_UPDATEARG},
}

// keywordByText and testKeywordByText give the identifier/keyword and
// test-identifier scanners O(1) lookup; table order only matters for the
// symbol scanner's longest-prefix rule above.
var keywordByText = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordTable))
	for _, e := range keywordTable {
		m[e.Text] = e.Kind
	}
	return m
}()

var testKeywordByText = func() map[string]Kind {
	m := make(map[string]Kind, len(testKeywordTable))
	for _, e := range testKeywordTable {
		m[e.Text] = e.Kind
	}
	return m
}()

// LookupKeyword returns the Kind for an exact keyword spelling and whether
// it was found.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywordByText[text]
	return k, ok
}

// LookupTestKeyword returns the Kind for an exact $-prefixed test keyword
// spelling and whether it was found.
func LookupTestKeyword(text string) (Kind, bool) {
	k, ok := testKeywordByText[text]
	return k, ok
}

// Symbols exposes the ordered symbol table to the lexer's symbol matcher.
func Symbols() []Entry { return symbolTable }
