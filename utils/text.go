package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString converts an orderedmap to a string in the form "[key=value key=value]".
// A nil map is formatted as "[]".
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil || data.Len() == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, key := range data.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		v, _ := data.Get(key)
		fmt.Fprintf(&b, "%s=%v", key, v)
	}
	b.WriteByte(']')
	return b.String()
}
