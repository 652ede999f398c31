package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager(t *testing.T) {
	p := Pager{Size: 10}

	assert.Equal(t, 0, p.Offset(1))
	assert.Equal(t, 20, p.Offset(3))
	assert.Equal(t, 0, p.Offset(0))

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 3, p.TotalPages(25))

	assert.Equal(t, 1, p.Clamp(5, 0))
	assert.Equal(t, 2, p.Clamp(3, 20))
	assert.Equal(t, 1, p.Clamp(-1, 20))
	assert.Equal(t, 2, p.Clamp(2, 20))
}
