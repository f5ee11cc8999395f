package main

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestLoadConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("defaults", func(t *testcase.T) {
		t.UnsetEnv("IMAGEBRIDGE_LOG_LEVEL")
		c, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	s.Test("level from the environment", func(t *testcase.T) {
		t.SetEnv("IMAGEBRIDGE_LOG_LEVEL", "debug")
		c, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "debug", c.LogLevel)
	})

	s.Test("unknown level", func(t *testcase.T) {
		t.SetEnv("IMAGEBRIDGE_LOG_LEVEL", "chatty")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
