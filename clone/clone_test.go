package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyScalars(t *testing.T) {
	for _, v := range []any{nil, "s", true, 7, -1, 3.14} {
		cp, err := Any(v)
		require.NoError(t, err)
		assert.Equal(t, v, cp)
	}
}

func TestAnyNestedStructure(t *testing.T) {
	orig := map[string]any{
		"className": []string{"icon", "icon-link"},
		"nested":    map[string]any{"deep": []any{1, "two", nil}},
	}
	cp, err := Any(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, cp)

	// mutate every level of the copy, the original must not move
	m := cp.(map[string]any)
	m["className"].([]string)[0] = "mutated"
	m["nested"].(map[string]any)["deep"].([]any)[0] = 99
	assert.Equal(t, "icon", orig["className"].([]string)[0])
	assert.Equal(t, 1, orig["nested"].(map[string]any)["deep"].([]any)[0])
}

func TestAnyRejectsNonData(t *testing.T) {
	cases := []any{
		func() {},
		make(chan int),
		map[string]any{"cb": func() {}},
		[]any{1, func() {}},
		struct{ X int }{1},
		&struct{ X int }{1},
	}
	for _, v := range cases {
		_, err := Any(v)
		assert.ErrorIs(t, err, ErrNotPlainData, "value %T", v)
	}
}

func TestAnyRejectsNonStringMapKeys(t *testing.T) {
	_, err := Any(map[int]any{1: "x"})
	assert.ErrorIs(t, err, ErrNotPlainData)
}

func TestMapNil(t *testing.T) {
	cp, err := Map(nil)
	require.NoError(t, err)
	if cp != nil {
		t.Errorf("expected nil map to clone to nil, have %v", cp)
	}
}
