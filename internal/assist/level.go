package assist

import (
	"fmt"
	"strings"
)

// Level is the style an enhancement should move the text towards.
// It is interpolated verbatim into the enhancement prompt.
type Level string

const (
	LevelDefault      Level = "default"
	LevelFormal       Level = "formal"
	LevelCasual       Level = "casual"
	LevelConcise      Level = "concise"
	LevelProfessional Level = "professional"
)

// Levels lists every level in cycling order.
var Levels = []Level{LevelDefault, LevelFormal, LevelCasual, LevelConcise, LevelProfessional}

// ParseLevel validates a level name. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown enhancement level: %q", s)
}

// Next returns the level after l, wrapping around. Unknown levels go back to default.
func (l Level) Next() Level {
	for i, cur := range Levels {
		if cur == l {
			return Levels[(i+1)%len(Levels)]
		}
	}
	return LevelDefault
}

func (l Level) String() string {
	return string(l)
}
