package posy

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	s, err := Init("ff")
	require.NoError(t, err)
	require.Equal(t, int64(255), s.GetSeed())
	require.Equal(t, "ff", s.Hex())

	require.Equal(t, s.Rand().Int63(), s.Rand().Int63())
	require.NotEqual(t, s, s.Next())

	_, err = Init("not-hex")
	require.Error(t, err)

	before := time.Now().UnixNano() - epoch2020*int64(time.Second)
	s, err = Init("")
	require.NoError(t, err)
	after := time.Now().UnixNano() - epoch2020*int64(time.Second)
	require.GreaterOrEqual(t, s.GetSeed(), before)
	require.LessOrEqual(t, s.GetSeed(), after)
}

func TestGetFilename(t *testing.T) {
	s, err := Init("1f")
	require.NoError(t, err)
	name := s.GetFilename("samples/posy-", ".svg")
	require.Regexp(t, regexp.MustCompile(`^samples/posy-([0-9a-f]{7})?-1f\.svg$`), name)
}
