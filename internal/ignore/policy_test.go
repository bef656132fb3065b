package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsIgnoredPatterns(t *testing.T) {
	p, err := NewPolicy("", []string{"1password*", "com.apple.keychainaccess", "*vault*"}, zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		app     string
		ignored bool
	}{
		{"1Password", true},
		{"1password 8", true},
		{"com.apple.keychainaccess", true},
		{"MyVaultApp", true},
		{"Safari", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.app, func(t *testing.T) {
			assert.Equal(t, tt.ignored, p.IsIgnored(tt.app))
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"comment", "# password managers", ""},
		{"plain pattern", "1password*", "1password*"},
		{"padded pattern", "  keepassxc  ", "keepassxc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLine(tt.line))
		})
	}
}

func TestNewPolicyReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(path, []byte(`# secrets
1password*

keepassxc
`), 0o600))

	p, err := NewPolicy(path, []string{"bitwarden"}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, p.IsIgnored("1Password 8"))
	assert.True(t, p.IsIgnored("KeePassXC"))
	assert.True(t, p.IsIgnored("Bitwarden"))
	assert.False(t, p.IsIgnored("Safari"))
	assert.Len(t, p.Patterns(), 3)
}

func TestNewPolicyMissingFileIsFine(t *testing.T) {
	p, err := NewPolicy(filepath.Join(t.TempDir(), "does-not-exist"), nil, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.IsIgnored("anything"))
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(path, []byte("1password*\n"), 0o600))

	p, err := NewPolicy(path, nil, zap.NewNop())
	require.NoError(t, err)
	require.True(t, p.IsIgnored("1Password"))
	require.False(t, p.IsIgnored("Signal"))

	require.NoError(t, os.WriteFile(path, []byte("signal\n"), 0o600))
	require.NoError(t, p.Reload())

	assert.False(t, p.IsIgnored("1Password"))
	assert.True(t, p.IsIgnored("Signal"))
}

func TestInvalidPatternSkippedNotFatal(t *testing.T) {
	p, err := NewPolicy("", []string{"[unclosed", "safari"}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, p.IsIgnored("Safari"))
	assert.False(t, p.IsIgnored("[unclosed"))
}
