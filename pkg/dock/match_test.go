package dock

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMatcherIsDock(t *testing.T) {
	m := Matcher{VendorID: "413c", ProductID: "b06f"}

	tests := []struct {
		name string
		desc Descriptor
		want bool
	}{
		{"exact match", Descriptor{VendorID: "413c", ProductID: "b06f"}, true},
		{"other vendor", Descriptor{VendorID: "0bda", ProductID: "b06f"}, false},
		{"other product", Descriptor{VendorID: "413c", ProductID: "b06e"}, false},
		{"upper case", Descriptor{VendorID: "413C", ProductID: "B06F"}, false},
		{"prefix only", Descriptor{VendorID: "413", ProductID: "b06"}, false},
		{"longer value", Descriptor{VendorID: "413c0", ProductID: "b06f"}, false},
		{"missing vendor", Descriptor{ProductID: "b06f"}, false},
		{"missing product", Descriptor{VendorID: "413c"}, false},
		{"missing both", Descriptor{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsDock(tt.desc))
		})
	}
}

func TestEmptyMatcherMatchesNothing(t *testing.T) {
	assert.False(t, Matcher{}.IsDock(Descriptor{}))
}
