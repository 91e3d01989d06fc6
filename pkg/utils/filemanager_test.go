package utils

import (
	"testing"

	"github.com/ginjaninja78/customs-describer/internal/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0o644))
}

func TestResolveOutputPath(t *testing.T) {
	t.Run("Should derive the suffixed name when it is free", func(t *testing.T) {
		fm := NewFileManager(afero.NewMemMapFs(), "-with-descriptions")

		out, err := fm.ResolveOutputPath("/data/x.csv", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/data/x-with-descriptions.csv", out)
	})

	t.Run("Should count up from zero when the derived name is taken", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		touch(t, fs, "/data/x-with-descriptions.csv")
		fm := NewFileManager(fs, "-with-descriptions")

		out, err := fm.ResolveOutputPath("/data/x.csv", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/data/x-with-descriptions-0.csv", out)

		touch(t, fs, "/data/x-with-descriptions-0.csv")
		touch(t, fs, "/data/x-with-descriptions-1.csv")
		out, err = fm.ResolveOutputPath("/data/x.csv", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/data/x-with-descriptions-2.csv", out)
	})

	t.Run("Should handle inputs without an extension", func(t *testing.T) {
		fm := NewFileManager(afero.NewMemMapFs(), "-out")

		out, err := fm.ResolveOutputPath("/data/catalog", "", false)
		require.NoError(t, err)
		assert.Equal(t, "/data/catalog-out", out)
	})

	t.Run("Should return a free explicit path unchanged", func(t *testing.T) {
		fm := NewFileManager(afero.NewMemMapFs(), "-with-descriptions")

		out, err := fm.ResolveOutputPath("/data/x.csv", "/tmp/y.csv", false)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/y.csv", out)
	})

	t.Run("Should fail with OutputExists for an existing explicit path", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		touch(t, fs, "/tmp/y.csv")
		fm := NewFileManager(fs, "-with-descriptions")

		_, err := fm.ResolveOutputPath("/data/x.csv", "/tmp/y.csv", false)
		require.Error(t, err)
		assert.True(t, types.IsKind(err, types.KindOutputExists))
		assert.Contains(t, err.Error(), "/tmp/y.csv")
	})

	t.Run("Should allow an existing explicit path with overwrite", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		touch(t, fs, "/tmp/y.csv")
		fm := NewFileManager(fs, "-with-descriptions")

		out, err := fm.ResolveOutputPath("/data/x.csv", "/tmp/y.csv", true)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/y.csv", out)
	})
}
