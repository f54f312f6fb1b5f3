package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsCoverSameKeys(t *testing.T) {
	en := catalogs["en"]
	for lang, messages := range catalogs {
		assert.Len(t, messages, len(en), "language %s", lang)
		for k := range en {
			_, ok := messages[k]
			assert.True(t, ok, "language %s missing %s", lang, k)
		}
	}
}

func TestCatalog_T(t *testing.T) {
	c, err := New("ru")
	require.NoError(t, err)
	assert.Equal(t, "ru", c.Lang())
	assert.Equal(t, "Вы ответили правильно на 2 из 3 вопросов.", c.T(ResultText, 2, 3))
	assert.Equal(t, "Answered 1/4", Default().T(AnsweredProgress, 1, 4))
	assert.Equal(t, "missing", Default().T(Key("missing")))
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("xx")
	assert.Error(t, err)
	assert.Equal(t, []string{"en", "ru"}, Languages())
}
