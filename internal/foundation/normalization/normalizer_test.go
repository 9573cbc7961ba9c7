package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	red   color = "red"
	green color = "green"
)

func newColors() *Normalizer[color] {
	return NewNormalizer(map[string]color{"red": red, "Green": green}, red)
}

func TestNormalize(t *testing.T) {
	n := newColors()

	tests := []struct {
		input string
		want  color
	}{
		{"red", red},
		{"  GREEN ", green},
		{"green", green},
		{"", red},
		{"blue", red},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.input), tt.input)
	}
}

func TestNormalizeWithError(t *testing.T) {
	n := newColors()

	v, err := n.NormalizeWithError(" Red")
	require.NoError(t, err)
	assert.Equal(t, red, v)

	v, err = n.NormalizeWithError("")
	require.NoError(t, err)
	assert.Equal(t, red, v)

	_, err = n.NormalizeWithError("blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "green, red")
}

func TestValidKeysIsACopy(t *testing.T) {
	n := newColors()
	keys := n.ValidKeys()
	require.Equal(t, []string{"green", "red"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, []string{"green", "red"}, n.ValidKeys())
}
