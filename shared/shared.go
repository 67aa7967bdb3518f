package shared

import (
	"strconv"
	"strings"
	"unicode"

	"todoapi/shared/dto"
)

// UnmatchedID is what ParseID yields for input without a leading integer. Store ids start at 1,
// so a lookup with it finds nothing.
const UnmatchedID int64 = -1

// ParseID reads a base-10 integer from the start of value, the way a lenient parser would:
// surrounding whitespace is ignored, an optional sign is accepted and parsing stops at the first
// non-digit ("12abc" is 12, "3.9" is 3). Input with no leading digits, or out of int64 range,
// returns UnmatchedID.
func ParseID(value string) int64 {
	value = strings.TrimLeftFunc(value, unicode.IsSpace)

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return UnmatchedID
	}

	id, err := strconv.ParseInt(value[:end], 10, 64)
	if err != nil {
		return UnmatchedID
	}

	return id
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins non-empty parts with ':'.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, ":")
}
