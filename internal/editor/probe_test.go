package editor

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotOrder(t *testing.T) {
	var asked []string
	avail := Snapshot(ProbeFunc(func(tool string) bool {
		asked = append(asked, tool)
		return tool == "nano"
	}))

	assert.Equal(t, []string{"code", "vim", "nano", "gedit"}, asked)
	assert.Equal(t, []bool{false, false, true, false}, avail)
}

func TestPathProbe(t *testing.T) {
	assert.False(t, PathProbe{}.Available("lastoff-no-such-binary"))

	if _, err := exec.LookPath("sh"); err == nil {
		assert.True(t, PathProbe{}.Available("sh"))
	}
}
