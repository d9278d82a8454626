package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"market=BTC-LTC", "type=both", "market=BTC-ETH", "empty="})
	require.NoError(t, err)
	require.Equal(t, 3, params.Len())

	v, _ := params.Get("market")
	assert.Equal(t, "BTC-ETH", v)
	v, ok := params.Get("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}
