package endpoints

import (
	"fmt"
	"net/url"
)

// pathf interpolates escaped identifiers into a path template.
func pathf(format string, ids ...fmt.Stringer) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id.String())
	}

	return fmt.Sprintf(format, args...)
}
