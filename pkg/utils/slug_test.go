package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading & trailing!  ", "leading-trailing"},
		{"Go 1.23 Released", "go-1-23-released"},
		{"already-a-slug", "already-a-slug"},
		{"___", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
