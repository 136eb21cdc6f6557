package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTaka(t *testing.T) {
	assert.Equal(t, "৳950", FormatTaka(950))
	assert.Equal(t, "৳1,900", FormatTaka(1900))
	assert.Equal(t, "৳0", FormatTaka(0))
}
