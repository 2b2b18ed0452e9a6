package geoip

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocator_Disabled(t *testing.T) {
	l, err := NewLocator("", zap.NewNop())
	require.NoError(t, err)

	coord, err := l.Locate("8.8.8.8")
	assert.NoError(t, err)
	assert.Nil(t, coord)
	assert.NoError(t, l.Close())
}

func TestLocator_MissingDatabase(t *testing.T) {
	_, err := NewLocator(filepath.Join(t.TempDir(), "missing.mmdb"), zap.NewNop())
	assert.Error(t, err)
}

func TestLocator_SkipsNonPublicAddresses(t *testing.T) {
	// адреса отсеиваются до обращения к базе
	l := &Locator{logger: zap.NewNop()}

	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "10.1.2.3", "192.168.0.1", "::1"} {
		coord, err := l.Locate(ip)
		assert.NoError(t, err, ip)
		assert.Nil(t, coord, ip)
	}
}
