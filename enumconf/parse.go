package enumconf

import (
	"go.uber.org/zap"

	"github.com/dcshock/enumreg/enum"
)

// Keyword is the directive keyword handled by this package.
const Keyword = "enum"

// Result summarizes one parsed directive.
type Result struct {
	Key     string
	Indexed bool
	Major   uint
	Minor   uint

	// Added counts pairs inserted; Rejected counts pairs the registry
	// refused (duplicate value, out of bounds, capacity).
	Added    int
	Rejected int

	// Truncated is set when a token that is not "value:label" ended the
	// directive early.
	Truncated bool
}

// ParseDirective applies rest, the text following the "enum" keyword, to
// reg. The first word is the key: "major:minor" routes to the indexed table,
// anything else to the named collection. Each following "value:label" word
// is inserted in order. The first word that does not scan ends the
// directive without error; rejected inserts are counted and skipped.
func ParseDirective(reg *enum.Registry, rest string) Result {
	key, rest := nextWord(rest)
	res := Result{Key: key}
	res.Major, res.Minor, res.Indexed = ParseKey(key)
	if key == "" || rest == "" {
		return res
	}

	log := reg.Logger()
	for rest != "" {
		var tok string
		tok, rest = nextWord(rest)
		value, label, ok := scanPair(tok)
		if !ok {
			res.Truncated = true
			log.Debug("enum directive truncated", zap.String("key", key), zap.String("token", tok))
			break
		}

		var err error
		if res.Indexed {
			err = reg.Indexed().Add(res.Major, res.Minor, label, value)
		} else {
			err = reg.Named().Add(key, label, value)
		}
		if err != nil {
			res.Rejected++
			continue
		}
		res.Added++
	}
	return res
}

// Handler returns a directive handler that feeds "enum" lines into reg. It
// matches the host config reader's handler signature and never fails:
// malformed input is truncated, not reported.
func Handler(reg *enum.Registry) func(keyword, rest string) error {
	return func(_ string, rest string) error {
		ParseDirective(reg, rest)
		return nil
	}
}
