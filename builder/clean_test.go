package builder

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/unixv11/build/types"
)

func TestCleanRemovesCachesAndImages(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "dist/unix", []byte("kernel"), 0644)
	afero.WriteFile(fs, "unixv11-amd64.disk", []byte{0}, 0644)
	afero.WriteFile(fs, "unixv11-aarch64.disk", []byte{0}, 0644)
	afero.WriteFile(fs, "other.disk", []byte{0}, 0644)

	c := types.NewConfig()
	r := &fakeRunner{}

	err := Clean(fs, c, r)

	assert.Nil(t, err)
	assert.Equal(t, []string{
		"efi: cargo clean",
		"kernel: cargo clean",
	}, r.calls)

	for _, gone := range []string{"dist", "unixv11-amd64.disk", "unixv11-aarch64.disk"} {
		exists, _ := afero.Exists(fs, gone)
		assert.False(t, exists, gone)
	}

	// images of other tools are not ours to delete
	exists, _ := afero.Exists(fs, "other.disk")
	assert.True(t, exists)
}

func TestCleanStopsWhenCargoFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "unixv11-amd64.disk", []byte{0}, 0644)

	c := types.NewConfig()
	r := &fakeRunner{failOn: "cargo clean"}

	err := Clean(fs, c, r)

	assert.NotNil(t, err)
	exists, _ := afero.Exists(fs, "unixv11-amd64.disk")
	assert.True(t, exists)
}
