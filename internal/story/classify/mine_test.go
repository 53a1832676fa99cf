package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMineNames(t *testing.T) {
	t.Run("mines titled names, speakers and roles", func(t *testing.T) {
		text := `Sir Cedric declared war on the goblins. "Hello," said Mary.
The dragon roared across the valley.`

		names := MineNames(text)

		assert.Contains(t, names, "Sir Cedric")
		assert.Contains(t, names, "Mary")
		assert.Contains(t, names, "the dragon")
	})

	t.Run("deduplicates", func(t *testing.T) {
		text := `"Hi," said Mary. "Bye," said Mary.`

		names := MineNames(text)

		count := 0
		for _, n := range names {
			if n == "Mary" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("filters stopwords", func(t *testing.T) {
		text := `And said the villagers nothing more.`

		names := MineNames(text)
		assert.NotContains(t, names, "And")
		assert.NotContains(t, names, "The")
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, MineNames(""))
	})
}
