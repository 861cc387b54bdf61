package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstImage(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{"prefers images array", Product{Images: []string{"/a.png", "/b.png"}, Image: "/legacy.png"}, "/a.png"},
		{"falls back to legacy image", Product{Image: "/legacy.png"}, "/legacy.png"},
		{"empty images array falls back", Product{Images: []string{}, Image: "/legacy.png"}, "/legacy.png"},
		{"no image at all", Product{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.FirstImage())
		})
	}
}
