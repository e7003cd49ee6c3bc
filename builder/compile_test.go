package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/types"
)

func amd64Descriptor(t *testing.T) arch.Descriptor {
	t.Helper()
	d, err := arch.Resolve("amd64")
	assert.Nil(t, err)
	return d
}

func TestCompileBuildsBothProjectsInOrder(t *testing.T) {
	c := types.NewConfig()
	d := amd64Descriptor(t)
	r := &fakeRunner{}

	err := Compile(c, d, r)

	assert.Nil(t, err)
	assert.Equal(t, []string{
		"efi: cargo build --release --target x86_64-unknown-uefi --quiet",
		"kernel: cargo build --release --target x86_64-unknown-none --quiet",
	}, r.calls)
}

func TestCompileVerboseDropsQuietFlag(t *testing.T) {
	c := types.NewConfig()
	c.Verbose = true
	d := amd64Descriptor(t)
	r := &fakeRunner{}

	err := Compile(c, d, r)

	assert.Nil(t, err)
	for _, call := range r.calls {
		assert.NotContains(t, call, "--quiet")
	}
}

func TestCompileAbortsOnFirstFailure(t *testing.T) {
	c := types.NewConfig()
	d := amd64Descriptor(t)
	r := &fakeRunner{failOn: "x86_64-unknown-uefi"}

	err := Compile(c, d, r)

	assert.NotNil(t, err)
	assert.Len(t, r.calls, 1)
}
