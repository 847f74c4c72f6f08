package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("degree=8, verbose,,name=a=b")
	assert.Equal(t, Params{"degree": "8", "verbose": "", "name": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("degree=8,ratio=0.5,verbose,quiet=false,name=btree,bad=x")

	degree, err := GetParamOr(params, "degree", 2)
	require.NoError(t, err)
	assert.Equal(t, 8, degree)

	missing, err := GetParamOr(params, "capacity", 17)
	require.NoError(t, err)
	assert.Equal(t, 17, missing)

	ratio, err := GetParamOr(params, "ratio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	verbose, err := GetParamOr(params, "verbose", false)
	require.NoError(t, err)
	assert.True(t, verbose)

	quiet, err := GetParamOr(params, "quiet", true)
	require.NoError(t, err)
	assert.False(t, quiet)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "btree", name)

	_, err = GetParamOr(params, "bad", 0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", false)
	assert.Error(t, err)

	// GetParamOr doesn't consume the parameter.
	assert.Contains(t, params, "degree")
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("degree=8,capacity=x")
	degree, err := PopParamOr(params, "degree", 2)
	require.NoError(t, err)
	assert.Equal(t, 8, degree)
	assert.NotContains(t, params, "degree")

	// Failed parsing leaves the parameter in place.
	_, err = PopParamOr(params, "capacity", 0)
	assert.Error(t, err)
	assert.Contains(t, params, "capacity")

	err = CheckAllUsed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")

	delete(params, "capacity")
	assert.NoError(t, CheckAllUsed(params))
}
