package cfg

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Addr: "127.0.0.1:6680"}.Validate())
	assert.NoError(t, Config{Addr: ":6680"}.Validate())
	assert.Error(t, Config{Addr: "nope"}.Validate())
	assert.Error(t, Config{}.Validate())
}

func TestSetGet(t *testing.T) {
	defer func() {
		require.NoError(t, Set(defaultConfig()))
	}()

	c := Config{Addr: "127.0.0.1:7000", LogRequests: false}
	require.NoError(t, Set(c))
	assert.Equal(t, c, Get())

	assert.Error(t, Set(Config{Addr: "nope"}))
	assert.Equal(t, c, Get(), "rejected config must not be applied")
}

func TestSetYaml(t *testing.T) {
	defer func() {
		require.NoError(t, Set(defaultConfig()))
	}()

	require.NoError(t, SetYaml([]byte("addr: 127.0.0.1:7001\nlog_requests: true\n")))
	assert.Equal(t, Config{Addr: "127.0.0.1:7001", LogRequests: true}, Get())

	assert.Error(t, SetYaml([]byte("addr: [")))
}
