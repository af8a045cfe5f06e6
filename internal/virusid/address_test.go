package virusid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_RoundTrip(t *testing.T) {
	for _, raw := range []string{"origin", "h5n1.clade[2].b", "sars-cov[0].omicron[15]"} {
		t.Run(raw, func(t *testing.T) {
			addr, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, addr.String())

			again, err := Parse(addr.String())
			require.NoError(t, err)
			assert.True(t, addr.Equal(again))
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	a := MustParse("a.b[0]")
	assert.True(t, a.Equal(MustParse("a.b[0]")))
	assert.False(t, a.Equal(MustParse("a.b[1]")))
	assert.False(t, a.Equal(MustParse("a.c[0]")))
	assert.False(t, a.Equal(nil))
	assert.False(t, (*Address)(nil).Equal(a))
	assert.True(t, (*Address)(nil).Equal(nil))
}

func TestAddress_FamilyAndGeneration(t *testing.T) {
	addr := MustParse("h5n1.clade[7]")
	assert.Equal(t, "h5n1", addr.Family())
	assert.Equal(t, 7, addr.Generation())

	assert.Equal(t, NoGeneration, MustParse("h5n1").Generation())
	assert.Equal(t, "", (*Address)(nil).Family())
	assert.Equal(t, "", (*Address)(nil).String())
}
