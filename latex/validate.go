package latex

import (
	"strings"

	"github.com/fwojciec/mdview"
)

// Validate reports whether tex can be typeset: it must be non-empty, keep
// its braces balanced and close every environment it opens.
func Validate(tex string) error {
	if strings.TrimSpace(tex) == "" {
		return mdview.Errorf(mdview.EINVALID, "empty expression")
	}

	depth := 0
	for i := 0; i < len(tex); i++ {
		switch tex[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return mdview.Errorf(mdview.EINVALID, "unexpected '}'")
			}
		}
	}
	if depth != 0 {
		return mdview.Errorf(mdview.EINVALID, "expected '}'")
	}

	if begins, ends := strings.Count(tex, `\begin{`), strings.Count(tex, `\end{`); begins != ends {
		return mdview.Errorf(mdview.EINVALID, "unmatched environment")
	}
	return nil
}
