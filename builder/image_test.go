package builder

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/unixv11/build/types"
)

type fakeProvisioner struct {
	image   string
	distDir string
	err     error
}

func (p *fakeProvisioner) Provision(image, distDir string) error {
	p.image = image
	p.distDir = distDir
	return p.err
}

func writeArtifacts(t *testing.T, fs afero.Fs, c *types.Config) {
	t.Helper()
	d := amd64Descriptor(t)
	assert.Nil(t, afero.WriteFile(fs, EfiArtifact(c, d), []byte("efi application"), 0644))
	assert.Nil(t, afero.WriteFile(fs, KernelArtifact(c, d), []byte("kernel image"), 0644))
}

func TestStageLaysOutEspTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := types.NewConfig()
	d := amd64Descriptor(t)
	writeArtifacts(t, fs, c)

	err := Stage(fs, c, d)

	assert.Nil(t, err)

	boot, err := afero.ReadFile(fs, filepath.Join("dist", "efi", "boot", "bootx64.efi"))
	assert.Nil(t, err)
	assert.Equal(t, "efi application", string(boot))

	kernel, err := afero.ReadFile(fs, filepath.Join("dist", "unix"))
	assert.Nil(t, err)
	assert.Equal(t, "kernel image", string(kernel))
}

func TestStageFailsWithoutArtifacts(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := types.NewConfig()
	d := amd64Descriptor(t)

	err := Stage(fs, c, d)

	assert.NotNil(t, err)
}

func TestAllocateWritesRequestedSize(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Allocate(fs, "unixv11-amd64.disk", 4)

	assert.Nil(t, err)
	info, err := fs.Stat("unixv11-amd64.disk")
	assert.Nil(t, err)
	assert.Equal(t, int64(4)<<20, info.Size())
}

func TestDiskImageName(t *testing.T) {
	assert.Equal(t, "unixv11-amd64.disk", DiskImageName(amd64Descriptor(t)))
}

func TestAssembleStagesAllocatesAndProvisions(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := types.NewConfig()
	c.DiskMB = 2
	d := amd64Descriptor(t)
	writeArtifacts(t, fs, c)

	p := &fakeProvisioner{}
	image, err := Assemble(fs, c, d, p)

	assert.Nil(t, err)
	assert.Equal(t, "unixv11-amd64.disk", image)
	assert.Equal(t, "unixv11-amd64.disk", p.image)
	assert.Equal(t, "dist", p.distDir)

	info, err := fs.Stat(image)
	assert.Nil(t, err)
	assert.Equal(t, int64(2)<<20, info.Size())
}
