package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("# Title\n\nSome **bold** text.")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	out := Render("hello <script>alert(1)</script> world")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}
