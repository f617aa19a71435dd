package echoclient

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorURLLiterals(t *testing.T) {
	assert.Equal(t, "https://echocollector-stage.kroger.com/echo/messages", StageCollectorURL.String())
	assert.Equal(t, "https://echocollector.kroger.com/echo/messages", ProdCollectorURL.String())
}

func TestCollectorURLsAreWellFormed(t *testing.T) {
	for _, u := range []CollectorURL{StageCollectorURL, ProdCollectorURL} {
		parsed, err := url.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, "https", parsed.Scheme)
		assert.True(t, strings.HasSuffix(u.String(), "/echo/messages"))
	}
	assert.NotEqual(t, StageCollectorURL.String(), ProdCollectorURL.String())
}

func TestCollectorURLZeroValueIsStage(t *testing.T) {
	var u CollectorURL
	assert.Equal(t, StageCollectorURL, u)
}
