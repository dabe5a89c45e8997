package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ParseListParam retrieves a multiselect's values from the URL query. A key
// may be repeated or hold a comma-separated list. The two return shapes
// matter to filtering: (false, nil) means the parameter was absent, i.e. the
// control is at its default and no constraint applies; (true, []) means the
// parameter was present but empty, i.e. the user emptied the multiselect and
// nothing should match.
func ParseListParam(params url.Values, key string) (bool, []string) {
	if !params.Has(key) {
		return false, nil
	}

	var values []string
	for _, raw := range params[key] {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
	}
	return true, values
}

// ParseDateParam parses a YYYY-MM-DD date from the URL query. A missing key
// yields a zero time with no error. Invalid values update fieldErrors.
func ParseDateParam(params url.Values, key string, fieldErrors map[string][]string) (time.Time, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return time.Time{}, fieldErrors
	}

	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return t, fieldErrors
}
