package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

func TestRenderLine_KeepsText(t *testing.T) {
	for _, line := range []string{
		osmodel.RootSeparator,
		"+ Directory1.lnxd",
		"--  File1.lnx content => -",
		"CPU has been reset.",
		"(Consumed value from Application A)",
		"[ERROR] boom",
		"plain",
	} {
		assert.Contains(t, RenderLine(line), line)
	}
}
