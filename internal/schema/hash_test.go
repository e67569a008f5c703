package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Schema {
	return &Schema{
		Version: "2.0",
		Messages: []Message{{
			Name:      "TestMessage",
			Frequency: FrequencyLow,
			Number:    "1",
			Blocks: []Block{{
				Name:     "TestBlock1",
				Quantity: QuantitySingle,
				Fields:   []Field{{Name: "Test1", Type: "U32"}},
			}},
		}},
	}
}

func TestHashDeterministic(t *testing.T) {
	a, err := Hash(sample(), "messages")
	require.NoError(t, err)
	b, err := Hash(sample(), "messages")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashChangesWithContent(t *testing.T) {
	base, err := Hash(sample())
	require.NoError(t, err)

	s := sample()
	s.Messages[0].Number = "2"
	changed, err := Hash(s)
	require.NoError(t, err)
	assert.NotEqual(t, base, changed)

	withOpt, err := Hash(sample(), "other")
	require.NoError(t, err)
	assert.NotEqual(t, base, withOpt)
}

func TestHashOptionBoundaries(t *testing.T) {
	a, err := Hash(sample(), "ab", "c")
	require.NoError(t, err)
	b, err := Hash(sample(), "a", "bc")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMessageFlags(t *testing.T) {
	m := Message{Trust: TrustTrusted, Encoding: EncodingZerocoded}
	assert.True(t, m.Trusted())
	assert.True(t, m.Zerocoded())

	m = Message{Trust: TrustNotTrusted, Encoding: EncodingUnencoded}
	assert.False(t, m.Trusted())
	assert.False(t, m.Zerocoded())
}
