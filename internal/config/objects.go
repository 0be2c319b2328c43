package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Objects maps the recorded objects to their video numbers.
var Objects = map[string]int{
	"Toucan":  1,
	"Dino":    2,
	"Cracker": 3,
	"Ganesh":  4,
}

// ObjectNames returns the known object names ordered by number.
func ObjectNames() []string {
	names := make([]string, 0, len(Objects))
	for name := range Objects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return Objects[names[i]] < Objects[names[j]] })
	return names
}

// ResolveObject accepts an object name (case-insensitive) or its number.
func ResolveObject(s string) (int, error) {
	s = strings.TrimSpace(s)
	for name, n := range Objects {
		if strings.EqualFold(name, s) {
			return n, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("unknown object %q (known: %s)", s, strings.Join(ObjectNames(), ", "))
}
