package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routelab/dtab/pkg/style"
)

func TestRenderWithoutTerminal(t *testing.T) {
	// Test runs are never attached to a terminal, so Render must pass
	// text through unstyled.
	assert.Equal(t, "/iceCreamStore", style.Render(style.PathStyle, "/iceCreamStore"))
	assert.Equal(t, "3 errors", style.Render(style.ErrorStyle, "3 errors"))
}
