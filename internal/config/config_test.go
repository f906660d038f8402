package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewAppConfig()

	require.Equal(t, ":8080", c.HTTPAddr())
	require.Equal(t, "conecta.sqlite", c.DB())
	require.Equal(t, time.Hour*24*7, c.InviteTTL())
}

func TestLoadFile(t *testing.T) {
	f, err := os.CreateTemp("", "conecta_test")
	require.NoError(t, err)

	fmt.Fprint(f, "---\nbase_url: https://conecta.example.com/\ninvite_ttl_days: 3\n")
	f.Close()

	c := NewAppConfig()
	require.True(t, c.Load(f.Name()))

	require.Equal(t, "https://conecta.example.com", c.BaseURL())
	require.Equal(t, time.Hour*24*3, c.InviteTTL())
}

func TestLoadMissingFile(t *testing.T) {
	c := NewAppConfig()

	require.False(t, c.Load("no_such_file.yml"))
	require.Equal(t, ":8080", c.HTTPAddr())
}
