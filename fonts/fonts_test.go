package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(20))
	for _, name := range []FontName{Regular, Title, Small} {
		assert.NotNil(t, name.Get())
	}

	small := Small.Get().Metrics().Height
	title := Title.Get().Metrics().Height
	assert.Less(t, small, title)
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 12))
}
