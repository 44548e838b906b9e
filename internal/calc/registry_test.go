package calc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
)

func noop(context.Context, *Call) (interface{}, error) { return nil, nil }

func testObject(name string, methods ...string) *Object {
	obj := &Object{Name: name, Methods: map[string]*Method{}}
	for _, m := range methods {
		obj.Methods[m] = &Method{Handler: noop}
	}
	return obj
}

func TestRegisterObject(t *testing.T) {
	r := NewRegistry(Options{Logger: mdwlog.Nop()})

	require.NoError(t, r.RegisterObject(testObject("geo", "area", "volume")))

	obj, m, err := r.Lookup("GEO", "area")
	require.NoError(t, err)
	assert.Equal(t, "GEO", obj.Name)
	assert.Equal(t, "AREA", m.Name)
	assert.Equal(t, []string{"AREA", "VOLUME"}, r.MethodNames("geo"))
	assert.Equal(t, []string{"GEO.AREA", "GEO.VOLUME"}, r.Commands())

	err = r.RegisterObject(testObject("GEO", "x"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	assert.Error(t, r.RegisterObject(nil))
	assert.Error(t, r.RegisterObject(testObject("9lives", "x")))
	assert.Error(t, r.RegisterObject(&Object{Name: "EMPTY", Methods: map[string]*Method{"X": {}}}))
}

func TestLookupUnknown(t *testing.T) {
	r := NewRegistry(Options{Logger: mdwlog.Nop()})
	require.NoError(t, r.RegisterObject(testObject("GEO", "AREA")))

	_, _, err := r.Lookup("NOPE", "AREA")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownCommand))

	_, _, err = r.Lookup("GEO", "NOPE")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownCommand))

	assert.Empty(t, r.MethodNames("NOPE"))
}

func TestAliases(t *testing.T) {
	r := NewRegistry(Options{Logger: mdwlog.Nop(), EnableAliases: true})

	require.NoError(t, r.RegisterAlias("sd", " TRIG.SIN unit=deg "))
	assert.Equal(t, "TRIG.SIN unit=deg", r.ResolveAlias("SD"))
	assert.Equal(t, "other", r.ResolveAlias("other"))
	assert.Equal(t, map[string]string{"SD": "TRIG.SIN unit=deg"}, r.Aliases())

	assert.Error(t, r.RegisterAlias("1x", "TRIG.SIN"))
	assert.Error(t, r.RegisterAlias("x", "  "))

	disabled := NewRegistry(Options{Logger: mdwlog.Nop()})
	assert.Error(t, disabled.RegisterAlias("sd", "TRIG.SIN"))
	assert.Equal(t, "sd", disabled.ResolveAlias("sd"))
}

func TestAbbreviations(t *testing.T) {
	r := NewRegistry(Options{Logger: mdwlog.Nop(), EnableAbbreviations: true})
	require.NoError(t, r.RegisterObject(testObject("STRING", "FORMAT", "FIRST")))
	require.NoError(t, r.RegisterObject(testObject("TRIG", "SIN")))

	abbrevs := r.Abbreviations()
	assert.Equal(t, "TRIG.SIN", abbrevs["TRG.SIN"])
	assert.Equal(t, "STRING.FORMAT", abbrevs["STR.FRM"])
	assert.Equal(t, "STRING.FIRST", abbrevs["STR.FRS"])

	_, m, err := r.Lookup("trg", "sin")
	require.NoError(t, err)
	assert.Equal(t, "SIN", m.Name)

	assert.Equal(t, "TRIG.SIN", r.ExpandAbbreviation("trg.sin"))
	assert.Equal(t, "UNKNOWN.X", r.ExpandAbbreviation("UNKNOWN.X"))
}

func TestAbbreviationCollisionsAreDropped(t *testing.T) {
	r := NewRegistry(Options{Logger: mdwlog.Nop(), EnableAbbreviations: true})
	require.NoError(t, r.RegisterObject(testObject("BITS", "FORMAT", "FORMULA", "ROTATE")))

	abbrevs := r.Abbreviations()
	assert.NotContains(t, abbrevs, "BTS.FRM")
	assert.Equal(t, "BITS.ROTATE", abbrevs["BTS.RTT"])
}

func TestGenerateAbbreviation(t *testing.T) {
	tests := map[string]string{
		"SIN":    "SIN",
		"TRIG":   "TRG",
		"ANGLE":  "ANG",
		"COMBIN": "CMB",
		"AEIOUX": "AEI", // too few consonants
	}
	for in, want := range tests {
		assert.Equal(t, want, generateAbbreviation(in), in)
	}
}

func TestDefaultRegistryObjects(t *testing.T) {
	r, err := NewDefaultRegistry(mdwlog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"ANGLE", "BITS", "CALC", "COMBIN", "NUM", "POW", "STR", "TRIG"}, r.ObjectNames())
	assert.Contains(t, r.Commands(), "COMBIN.LOGCHOOSE")
	assert.Contains(t, r.Commands(), "BITS.FLIPW")
}
