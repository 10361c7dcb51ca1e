package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := NewTable("CATEGORY", "ID", "PACKAGES").
		Row("animation", "gsap", "gsap, @gsap/react").
		Row("creative", "lenis", "lenis")

	out := stripAnsi(tbl.String())

	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "@gsap/react")
	assert.Contains(t, out, "lenis")
}
