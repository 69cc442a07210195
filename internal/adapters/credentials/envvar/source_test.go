package envvar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

func TestServiceAccountSourceReadsVariable(t *testing.T) {
	t.Setenv(ServiceAccountVar, " /home/user/key.json ")

	source := NewServiceAccountSource()
	require.Equal(t, domain.SourceEnv, source.Kind())

	value, err := source.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/user/key.json", value)
}

func TestInlineJSONSourceReadsVariable(t *testing.T) {
	t.Setenv(ServiceAccountJSONVar, `{"type":"service_account"}`)

	source := NewInlineJSONSource()
	require.Equal(t, domain.SourceInlineJSON, source.Kind())

	value, err := source.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, value)
}

func TestSourceFailsWhenVariableUnsetOrBlank(t *testing.T) {
	t.Setenv(ServiceAccountVar, "   ")

	_, err := NewServiceAccountSource().Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, ServiceAccountVar)
}

func TestSourceRereadsEnvironmentEachCall(t *testing.T) {
	t.Setenv(ServiceAccountVar, "first.json")
	source := NewServiceAccountSource()

	value, err := source.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first.json", value)

	t.Setenv(ServiceAccountVar, "second.json")

	value, err = source.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second.json", value)
}

func TestSourceHonorsCanceledContext(t *testing.T) {
	t.Setenv(ServiceAccountVar, "key.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewServiceAccountSource().Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
