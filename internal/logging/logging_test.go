package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestScopeIsBracketed(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := WithScope(zerolog.New(NewConsoleWriter(&buf, true)), "build")
	logger.Info().Msg("built tree")

	assert.Contains(buf.String(), "[build]")
	assert.Contains(buf.String(), "built tree")
	assert.NotContains(buf.String(), "scope=")
}

func TestDefaultScope(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(NewConsoleWriter(&buf, true))
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "[bstree]")
}

func TestErrorUnwrapped(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ErrorUnwrapped(&logger, "bad input", errors.Join(errors.New("first"), errors.New("second")))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(lines, 2) {
		assert.Contains(lines[0], "first")
		assert.Contains(lines[1], "second")
	}

	buf.Reset()
	ErrorUnwrapped(&logger, "bad input", errors.New("only"))
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(lines, 1)
}
