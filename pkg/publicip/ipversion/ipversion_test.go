package ipversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IPVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ipv4", IP4.String())
	assert.Equal(t, "ipv6", IP6.String())
	assert.Equal(t, "A", IP4.RecordType())
	assert.Equal(t, "AAAA", IP6.RecordType())
}
