package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envValue finds KEY's value in a KEY=VALUE slice.
func envValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}

func TestLoadEnvFiles_OverlayOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_A=base\nTNT_B=from-env\n")
	writeFile(t, dir, ".env.staging", "TNT_B=from-profile\n")

	env, err := LoadEnvFiles(dir, "staging")
	require.NoError(t, err)

	a, _ := envValue(env, "TNT_A")
	b, _ := envValue(env, "TNT_B")
	assert.Equal(t, "base", a)
	assert.Equal(t, "from-profile", b)
}

func TestLoadEnvFiles_FileOverridesProcessEnv(t *testing.T) {
	t.Setenv("TNT_OVERRIDE", "from-process")
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_OVERRIDE=from-file\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	v, ok := envValue(env, "TNT_OVERRIDE")
	require.True(t, ok)
	assert.Equal(t, "from-file", v)
}

func TestLoadEnvFiles_ProcessEnvPreserved(t *testing.T) {
	t.Setenv("TNT_KEEP", "kept")
	dir := t.TempDir()

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	v, ok := envValue(env, "TNT_KEEP")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestLoadEnvFiles_MissingFilesAreFine(t *testing.T) {
	_, err := LoadEnvFiles(t.TempDir(), "nope")
	assert.NoError(t, err)
}

func TestParseEnvFile_Syntax(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", `
# comment
export TNT_EXPORTED=yes
TNT_QUOTED="hello world"
TNT_SINGLE='single quoted'
TNT_SPACED =  padded
not-a-pair
`)

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	exported, _ := envValue(env, "TNT_EXPORTED")
	quoted, _ := envValue(env, "TNT_QUOTED")
	single, _ := envValue(env, "TNT_SINGLE")
	spaced, _ := envValue(env, "TNT_SPACED")
	assert.Equal(t, "yes", exported)
	assert.Equal(t, "hello world", quoted)
	assert.Equal(t, "single quoted", single)
	assert.Equal(t, "padded", spaced)
}

func TestExpansion_SimpleReference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_HOST=localhost\nTNT_URL=http://${TNT_HOST}:3000\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	url, _ := envValue(env, "TNT_URL")
	assert.Equal(t, "http://localhost:3000", url)
}

func TestExpansion_ChainedReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_C=${TNT_B}\nTNT_B=${TNT_A}\nTNT_A=deep\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	c, _ := envValue(env, "TNT_C")
	assert.Equal(t, "deep", c)
}

func TestExpansion_DefaultValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_PORT=${TNT_UNSET_PORT:-5432}\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	port, _ := envValue(env, "TNT_PORT")
	assert.Equal(t, "5432", port)
}

func TestExpansion_UnknownWithoutDefaultIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_EMPTY=pre${TNT_NO_SUCH_VAR}post\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	v, _ := envValue(env, "TNT_EMPTY")
	assert.Equal(t, "prepost", v)
}

func TestExpansion_SelfReferenceLeftAlone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "TNT_PATH=${TNT_PATH}:/usr/local/bin\n")

	env, err := LoadEnvFiles(dir, "")
	require.NoError(t, err)

	v, _ := envValue(env, "TNT_PATH")
	assert.Equal(t, "${TNT_PATH}:/usr/local/bin", v)
}
