package lex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlowe/grayling/token"
)

func scanAll(t *testing.T, src string) ([]Token, *token.Registry) {
	t.Helper()
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte(src))
	var toks []Token
	for {
		tk, err := s.NextToken()
		require.NoError(t, err)
		toks = append(toks, tk)
		if tk.Kind == mustLookup(reg, token.NameEOF) {
			break
		}
	}
	return toks, reg
}

func kindName(reg *token.Registry, tk Token) string {
	return reg.NameOf(tk.Kind)
}

func TestScanner_NumericLiteralDiscrimination(t *testing.T) {
	cases := []struct {
		src  string
		kind string
	}{
		{"0", token.NameIntDec},
		{"0b10", token.NameIntBin},
		{"0x1f", token.NameIntHex},
		{"012", token.NameIntOct},
		{"0.5", token.NameFloatDec},
		{"1e2", token.NameFloatDec},
		{"0x1.8p3", token.NameFloatHex},
		{".5", token.NameFloatDec},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, reg := scanAll(t, c.src)
			require.GreaterOrEqual(t, len(toks), 2)
			assert.Equal(t, c.kind, kindName(reg, toks[0]))
			assert.Equal(t, c.src, toks[0].Lexeme())
		})
	}
}

func TestScanner_OctalRejectsInvalidDigit(t *testing.T) {
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte("08"))
	_, err := s.NextToken()
	require.Error(t, err)
	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.True(t, errors.Is(err, ErrBadOctalDigit))
}

func TestScanner_HexFloatMissingExponentIsError(t *testing.T) {
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte("0x1.8"))
	_, err := s.NextToken()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHexFloat))
}

func TestScanner_OperatorGreedyMatch(t *testing.T) {
	cases := []struct {
		src   string
		names []string
	}{
		{"a<<=b", []string{token.NameIdentifier, "<<=", token.NameIdentifier, token.NameEOF}},
		{"a<<b", []string{token.NameIdentifier, "<<", token.NameIdentifier, token.NameEOF}},
		{"a<=>b", []string{token.NameIdentifier, "<=>", token.NameIdentifier, token.NameEOF}},
		{"a<=b", []string{token.NameIdentifier, "<=", token.NameIdentifier, token.NameEOF}},
		{"[[a]]", []string{"[[", token.NameIdentifier, "]]", token.NameEOF}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, reg := scanAll(t, c.src)
			require.Len(t, toks, len(c.names))
			for i, want := range c.names {
				got := reg.NameOf(toks[i].Kind)
				if want == token.NameIdentifier {
					assert.Equal(t, token.NameIdentifier, got)
					continue
				}
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestScanner_CommentsAreSkippedLikeWhitespaceByCallers(t *testing.T) {
	toks, reg := scanAll(t, "// line comment\na")
	require.Len(t, toks, 3)
	assert.Equal(t, token.NameComment, kindName(reg, toks[0]))
	assert.Equal(t, token.NameIdentifier, kindName(reg, toks[1]))
}

func TestScanner_BlockCommentUnterminated(t *testing.T) {
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte("/* never closed"))
	_, err := s.NextToken()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedBlockComment))
}

func TestScanner_PeekTokenIsIdempotent(t *testing.T) {
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte("abc def"))
	peek1, err := s.PeekToken()
	require.NoError(t, err)
	peek2, err := s.PeekToken()
	require.NoError(t, err)
	assert.Equal(t, peek1, peek2)
	next, err := s.NextToken()
	require.NoError(t, err)
	assert.Equal(t, peek1, next)
}

func TestScanner_RawStringIsLiteral(t *testing.T) {
	toks, reg := scanAll(t, "`a\\nb`")
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.NameRawString, kindName(reg, toks[0]))
	assert.Equal(t, `a\nb`, toks[0].Lexeme())
}

func TestScanner_HashedRawStringClosesOnMatchingHashes(t *testing.T) {
	toks, reg := scanAll(t, "##`a`b`##")
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.NameRawString, kindName(reg, toks[0]))
	assert.Equal(t, "a`b", toks[0].Lexeme())
}

func TestScanner_KeywordVsIdentifier(t *testing.T) {
	toks, reg := scanAll(t, "if iffy")
	require.Len(t, toks, 3)
	assert.Equal(t, "if", kindName(reg, toks[0]))
	assert.Equal(t, token.NameIdentifier, kindName(reg, toks[1]))
}

func TestScanner_InvalidCharacterErrors(t *testing.T) {
	reg := token.NewRegistry()
	s := New(reg, "test.gl", []byte("@"))
	_, err := s.NextToken()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
}
