package token

// Built-in terminal kind names, in the fixed order spec.md §6 requires: EOF
// first, COMMENT next, then the literal kinds, then IDENT. Keywords and
// operators are appended after these at registry construction time, each in
// the order given by KeywordTable and OperatorTable.
const (
	NameEOF        = "l_eof"
	NameComment    = "l_comment"
	NameIntChar    = "l_int_char"
	NameIntBin     = "l_int_bin"
	NameIntOct     = "l_int_oct"
	NameIntDec     = "l_int_dec"
	NameIntHex     = "l_int_hex"
	NameFloatDec   = "l_float_dec"
	NameFloatHex   = "l_float_hex"
	NameString     = "l_string"
	NameRawString  = "l_raw_string"
	NameIdentifier = "l_ident"
)

// builtinLiteralNames gives the fixed registration order of the built-in
// literal terminal kinds, after EOF and COMMENT and before keywords.
var builtinLiteralNames = []string{
	NameIntChar,
	NameIntBin,
	NameIntOct,
	NameIntDec,
	NameIntHex,
	NameFloatDec,
	NameFloatHex,
	NameString,
	NameRawString,
	NameIdentifier,
}

// Word is one entry of the keyword or operator table: Text is the literal
// source spelling, which is also the name the Registry registers, displays
// and looks the terminal up by; Name is a descriptive upper-case label that
// the Registry does not register.
type Word struct {
	Text string
	Name string
}

// KeywordTable is the authoritative set of reserved words for the target
// language, in registration order. Both the scanner and the grammar reader
// consult it: the scanner to distinguish keywords from plain identifiers,
// the grammar reader to resolve bare keyword terminals referenced in a rule.
var KeywordTable = []Word{
	{Text: "func", Name: "FUNC"},
	{Text: "var", Name: "VAR"},
	{Text: "const", Name: "CONST"},
	{Text: "struct", Name: "STRUCT"},
	{Text: "if", Name: "IF"},
	{Text: "else", Name: "ELSE"},
	{Text: "while", Name: "WHILE"},
	{Text: "for", Name: "FOR"},
	{Text: "return", Name: "RETURN"},
	{Text: "break", Name: "BREAK"},
	{Text: "continue", Name: "CONTINUE"},
	{Text: "import", Name: "IMPORT"},
	{Text: "package", Name: "PACKAGE"},
	{Text: "true", Name: "TRUE"},
	{Text: "false", Name: "FALSE"},
	{Text: "nil", Name: "NIL"},
}

// OperatorTable is the authoritative set of multi-character and
// single-character operators, in registration order. The scanner's greedy
// longest-match branch (§4.2) is driven by the literal Text of each entry,
// not by this order; the order here only fixes numeric ids.
var OperatorTable = []Word{
	{Text: "(", Name: "LPAREN"},
	{Text: ")", Name: "RPAREN"},
	{Text: "[[", Name: "LDBRACKET"},
	{Text: "]]", Name: "RDBRACKET"},
	{Text: "[", Name: "LBRACKET"},
	{Text: "]", Name: "RBRACKET"},
	{Text: "{", Name: "LBRACE"},
	{Text: "}", Name: "RBRACE"},
	{Text: ",", Name: "COMMA"},
	{Text: "::", Name: "SCOPE"},
	{Text: ":", Name: "COLON"},
	{Text: ";", Name: "SEMICOLON"},
	{Text: "++", Name: "DADD"},
	{Text: "+=", Name: "ADD_ASSIGN"},
	{Text: "+", Name: "ADD"},
	{Text: "--", Name: "DSUB"},
	{Text: "-=", Name: "SUB_ASSIGN"},
	{Text: "->", Name: "POINTER"},
	{Text: "-", Name: "SUB"},
	{Text: "*=", Name: "MUL_ASSIGN"},
	{Text: "*", Name: "MUL"},
	{Text: "/=", Name: "DIV_ASSIGN"},
	{Text: "/", Name: "DIV"},
	{Text: "%=", Name: "MOD_ASSIGN"},
	{Text: "%", Name: "MOD"},
	{Text: "&&", Name: "LAND"},
	{Text: "&=", Name: "BAND_ASSIGN"},
	{Text: "&", Name: "BAND"},
	{Text: "||", Name: "LOR"},
	{Text: "|=", Name: "BOR_ASSIGN"},
	{Text: "|", Name: "BOR"},
	{Text: "^=", Name: "BXOR_ASSIGN"},
	{Text: "^", Name: "XOR"},
	{Text: "<<=", Name: "SHL_ASSIGN"},
	{Text: "<<", Name: "SHL"},
	{Text: "<=>", Name: "COMPARE"},
	{Text: "<=", Name: "LE"},
	{Text: "<", Name: "LT"},
	{Text: ">>=", Name: "SHR_ASSIGN"},
	{Text: ">>", Name: "SHR"},
	{Text: ">=", Name: "GE"},
	{Text: ">", Name: "GT"},
	{Text: "==", Name: "EQ"},
	{Text: "!=", Name: "NE"},
	{Text: "=", Name: "ASSIGN"},
	{Text: ".", Name: "DOT"},
}
