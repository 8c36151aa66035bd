package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Version
		wantOK bool
	}{
		{
			name:   "well formed",
			raw:    "1234-1.0",
			want:   Version{Code: 1234, Name: "1.0"},
			wantOK: true,
		},
		{
			name:   "name keeps later dashes",
			raw:    "42-2.0-beta-1",
			want:   Version{Code: 42, Name: "2.0-beta-1"},
			wantOK: true,
		},
		{
			name:   "empty name after separator",
			raw:    "7-",
			want:   Version{Code: 7, Name: ""},
			wantOK: true,
		},
		{
			name:   "empty string",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "no separator",
			raw:    "1234",
			wantOK: false,
		},
		{
			name:   "non-numeric code",
			raw:    "abc-1.0",
			wantOK: false,
		},
		{
			name:   "leading dash means empty code",
			raw:    "-5-1.0",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVersion(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVersionUpgradable(t *testing.T) {
	v := Version{Code: 100, Name: "1.2.0"}

	assert.True(t, v.Upgradable(99, "1.1.0"), "higher code upgrades")
	assert.False(t, v.Upgradable(100, "1.2.0"), "identical release does not upgrade")
	assert.True(t, v.Upgradable(100, "1.1.0"), "same code, different name upgrades")
	assert.False(t, v.Upgradable(101, "1.3.0"), "installed newer than index")
}

func TestModuleLatestVersion(t *testing.T) {
	m := &Module{Name: "com.example.mod", LatestRelease: "100-1.2.0"}
	v, ok := m.LatestVersion()
	require.True(t, ok)
	assert.Equal(t, Version{Code: 100, Name: "1.2.0"}, v)

	m = &Module{Name: "com.example.bare"}
	_, ok = m.LatestVersion()
	assert.False(t, ok)
}
