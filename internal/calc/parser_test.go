package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

func TestLexerTokens(t *testing.T) {
	tokens, err := NewLexer(`A.B -1.5 x=1 "q \"r\""`).Tokenize()
	require.NoError(t, err)

	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{TokenWord, TokenWord, TokenWord, TokenEquals, TokenWord, TokenString, TokenEOF}, types)
	assert.Equal(t, `q "r"`, tokens[5].Value)
	assert.Equal(t, 5, tokens[1].Column)

	_, err = NewLexer(`A.B 'open`).Tokenize()
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		object  string
		method  string
		args    []string
		options map[string]string
	}{
		{
			name:    "arguments and option",
			input:   "TRIG.SIN 90 unit=deg",
			object:  "TRIG",
			method:  "SIN",
			args:    []string{"90"},
			options: map[string]string{"unit": "deg"},
		},
		{
			name:    "case folding",
			input:   "combin.Choose 5 2 PRECISION=32",
			object:  "COMBIN",
			method:  "CHOOSE",
			args:    []string{"5", "2"},
			options: map[string]string{"precision": "32"},
		},
		{
			name:    "quoted argument",
			input:   `STR.VALID " 42" kind=long`,
			object:  "STR",
			method:  "VALID",
			args:    []string{" 42"},
			options: map[string]string{"kind": "long"},
		},
		{
			name:    "no arguments",
			input:   "  CALC.LIST  ",
			object:  "CALC",
			method:  "LIST",
			options: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.object, cmd.Object)
			assert.Equal(t, tt.method, cmd.Method)
			assert.Equal(t, tt.args, cmd.Args)
			assert.Equal(t, tt.options, cmd.Options)
			assert.Equal(t, tt.input, cmd.Raw)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"TRIG",
		"TRIG.",
		".SIN",
		"TRIG.SIN.X 1",
		"9X.SIN 1",
		"TRIG.SIN unit=",
		"TRIG.SIN =deg",
		"TRIG.SIN 1 unit=deg unit=rad",
		`TRIG.SIN "open`,
		`"TRIG.SIN" 1`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat), "got %v", err)

			var pe *ParseError
			assert.True(t, errors.As(err, &pe), "ParseError should be reachable")
		})
	}
}

func TestParseRejectsLongInput(t *testing.T) {
	long := make([]byte, MaxInputLength+1)
	for i := range long {
		long[i] = 'A'
	}
	_, err := Parse(string(long))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestCommandOption(t *testing.T) {
	cmd, err := Parse("BITS.NOT 1 Width=8")
	require.NoError(t, err)

	v, ok := cmd.Option("WIDTH")
	assert.True(t, ok)
	assert.Equal(t, "8", v)
	assert.Equal(t, "BITS.NOT", cmd.Name())
}
