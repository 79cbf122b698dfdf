package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "promptpager configuration", doc["title"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema should expand the root struct")
	for _, key := range []string{"provider", "api_key", "model", "limits", "server", "log"} {
		assert.Contains(t, props, key)
	}
}
