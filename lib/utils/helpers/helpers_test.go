package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run("join code format", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			code, err := GenerateJoinCode()
			require.NoError(t, err)
			require.Len(t, code, 8)
			for _, ch := range code {
				require.Contains(t, joinCodeAlphabet, string(ch))
			}
			seen[code] = true
		}
		require.Greater(t, len(seen), 1)
	})

	t.Run("join code sampling cutoff", func(t *testing.T) {
		// the cutoff is a multiple of the alphabet size, so the kept
		// range maps onto the alphabet without remainder
		require.Equal(t, 0, int(joinCodeLimit)%len(joinCodeAlphabet))
		require.Equal(t, byte(252), joinCodeLimit)
	})

	t.Run("safe file name", func(t *testing.T) {
		require.Equal(t, "file", SafeFileName(""))
		require.Equal(t, "report.pdf", SafeFileName("report.pdf"))
		require.Equal(t, "_etc_passwd", SafeFileName("/etc/passwd"))
		require.Equal(t, "a_b_c.txt", SafeFileName(`a\b/c.txt`))
	})

	t.Run("file ext", func(t *testing.T) {
		require.Equal(t, "pdf", FileExt("report.pdf"))
		require.Equal(t, "gz", FileExt("archive.tar.gz"))
		require.Equal(t, "", FileExt("README"))
		require.Equal(t, "", FileExt("trailing."))
	})
}
