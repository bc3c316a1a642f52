package sample

import (
	"fmt"
	"strings"

	"github.com/histdb/ilpsum/conf"
)

type Mode int

const (
	Ramp Mode = iota
	Constant
	Random
)

var modeNames = [...]string{
	Ramp:     "ramp",
	Constant: "constant",
	Random:   "random",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, conf.Invalid("mode", "unknown mode %q", s)
}
