package spincube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderError(t *testing.T) {
	err := error(&ShaderError{Stage: "fragment", Log: "0:12(3): error: syntax error\n", err: ErrShaderCompile})

	assert.ErrorIs(t, err, ErrShaderCompile)
	assert.NotErrorIs(t, err, ErrShaderLink)
	assert.Equal(t, "fragment: shader compilation failed: 0:12(3): error: syntax error", err.Error())

	var shaderErr *ShaderError
	require.True(t, errors.As(err, &shaderErr))
	assert.Equal(t, "fragment", shaderErr.Stage)
}

func TestShaderError_Link(t *testing.T) {
	err := &ShaderError{Stage: "program", Log: "unresolved varying", err: ErrShaderLink}
	assert.ErrorIs(t, err, ErrShaderLink)
	assert.Equal(t, "program: shader program linking failed: unresolved varying", err.Error())
}

func TestInfoLog(t *testing.T) {
	assert.Equal(t, "bad token", infoLog([]byte("bad token\x00\x00")))
	assert.Equal(t, "no terminator", infoLog([]byte("no terminator")))
	assert.Equal(t, "", infoLog(make([]byte, 4)))
}
