package questions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	assert.Equal(t, "***** *** ***", Mask("break the ice"))
	assert.Equal(t, "** 42!", Mask("go 42!"))
	assert.Equal(t, "", Mask(""))
}

func TestBankPhrase(t *testing.T) {
	b := NewBank()

	p, err := b.Phrase()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Key)
	assert.NotEmpty(t, p.Hint)
	assert.Equal(t, Mask(p.Key), p.Masked)
	assert.Len(t, p.Masked, len(p.Key))
}

func TestBankChallenge(t *testing.T) {
	b := NewBank()

	c, err := b.Challenge("alice")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.Question, "alice, "))
	assert.True(t, c.Answer >= 'a' && c.Answer <= 'z', "answer %q must be a lowercase letter", c.Answer)
}
