package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xaenox/power-bot/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"bare plus with digits", "+5", models.Delta(models.SignPlus, 5)},
		{"bare minus with digits", "-3", models.Delta(models.SignMinus, 3)},
		{"delta not at start", "gg wp +10", models.Delta(models.SignPlus, 10)},
		{"whitespace between sign and digits", "+ 7", models.Delta(models.SignPlus, 7)},
		{"tab between sign and digits", "-\t12", models.Delta(models.SignMinus, 12)},
		{"leftmost match wins", "gg +5 -3", models.Delta(models.SignPlus, 5)},
		{"leftmost minus wins", "-2 +9", models.Delta(models.SignMinus, 2)},
		{"sign without digits then real delta", "c++ rocks +4", models.Delta(models.SignPlus, 4)},
		{"double sign", "++5", models.Delta(models.SignPlus, 5)},
		{"exact 300", "+300", models.Delta(models.SignPlus, 300)},
		{"cyrillic text around delta", "красавчик +10 держи", models.Delta(models.SignPlus, 10)},
		{"zero magnitude", "+0", models.Delta(models.SignPlus, 0)},
		{"plain text", "hello world", models.NoOp()},
		{"empty text", "", models.NoOp()},
		{"digits without sign", "call me at 555", models.NoOp()},
		{"sign without digits", "a + b", models.NoOp()},
		{"trailing sign", "ok -", models.NoOp()},
		{"emoji only", "👍👍", models.NoOp()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyOverflowFailsClosed(t *testing.T) {
	// A digit run too long for int64 must classify as NoOp, not error out.
	huge := "+" + strings.Repeat("9", 40)
	assert.Equal(t, models.NoOp(), Classify(huge))

	// Just above int64 max.
	assert.Equal(t, models.NoOp(), Classify("+9223372036854775808"))

	// int64 max itself still parses.
	assert.Equal(t,
		models.Delta(models.SignPlus, 9223372036854775807),
		Classify("+9223372036854775807"))
}

func TestClassifySigned(t *testing.T) {
	assert.Equal(t, int64(5), models.Delta(models.SignPlus, 5).Signed())
	assert.Equal(t, int64(-5), models.Delta(models.SignMinus, 5).Signed())
}
