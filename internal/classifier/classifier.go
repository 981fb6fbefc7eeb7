package classifier

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/xaenox/power-bot/internal/models"
)

// Classify scans raw message text for a score delta: a '+' or '-' sign,
// optionally followed by whitespace, then a run of decimal digits. The
// leftmost match wins and the rest of the message is ignored. Messages
// without such a substring carry no signal and classify as NoOp.
func Classify(text string) models.Intent {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '+' && c != '-' {
			continue
		}

		// Optional whitespace between the sign and the digits.
		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}

		start := j
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		if j == start {
			// Sign with no digit run, keep scanning.
			continue
		}

		magnitude, err := strconv.ParseInt(text[start:j], 10, 64)
		if err != nil {
			// Digit run too long for int64: fail closed rather than
			// propagate a parse error for a message nobody meant.
			return models.NoOp()
		}

		sign := models.SignPlus
		if c == '-' {
			sign = models.SignMinus
		}
		return models.Delta(sign, magnitude)
	}

	return models.NoOp()
}
