package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"AMD Ryzen 7 9700X", "amd-ryzen-7-9700x"},
		{"  Corsair RM850x (2024)  ", "corsair-rm850x-2024"},
		{"NZXT H5 Flow -- White", "nzxt-h5-flow-white"},
		{"DDR5-6000 32GB Kit", "ddr5-6000-32gb-kit"},
		{"!!!", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, GenerateSlug(tc.input), tc.input)
	}
}
