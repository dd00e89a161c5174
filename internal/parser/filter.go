package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/es-debug/log-analyzer/internal/domain"
)

type Field int

const (
	FieldUnknown Field = iota
	FieldAgent
	FieldMethod
	FieldResource
	FieldStatus
	FieldIP
	FieldUser
)

var fieldNames = map[string]Field{
	"agent":    FieldAgent,
	"method":   FieldMethod,
	"resource": FieldResource,
	"status":   FieldStatus,
	"ip":       FieldIP,
	"user":     FieldUser,
}

var fieldValues = map[Field]func(domain.Record) string{
	FieldAgent:    func(r domain.Record) string { return r.UserAgent },
	FieldMethod:   domain.Record.Method,
	FieldResource: domain.Record.Resource,
	FieldStatus:   func(r domain.Record) string { return strconv.Itoa(r.Status) },
	FieldIP:       func(r domain.Record) string { return r.ClientAddress },
	FieldUser:     func(r domain.Record) string { return r.User },
}

// ParseField resolves a field name case-insensitively.
func ParseField(name string) (Field, bool) {
	f, ok := fieldNames[strings.ToLower(name)]

	return f, ok
}

// Filter decides whether a record is admitted to aggregation.
type Filter struct {
	from    *time.Time
	to      *time.Time
	field   Field
	pattern *regexp.Regexp
}

// NewFilter builds a filter. The field predicate is only active when both
// field and pattern are non-empty; an unknown field rejects every record.
func NewFilter(from, to *time.Time, field, pattern string) *Filter {
	f := &Filter{
		from: from,
		to:   to,
	}

	if field != "" && pattern != "" {
		f.field, _ = ParseField(field)
		f.pattern = globToRegexp(pattern)
	}

	return f
}

// Admit reports whether rec passes both the time window and the field
// predicate. A nil filter admits everything.
func (f *Filter) Admit(rec domain.Record) bool {
	if f == nil {
		return true
	}

	if f.from != nil && rec.Time.Before(*f.from) {
		return false
	}

	if f.to != nil && rec.Time.After(*f.to) {
		return false
	}

	if f.pattern == nil {
		return true
	}

	value, ok := fieldValues[f.field]
	if !ok {
		return false
	}

	return f.pattern.MatchString(value(rec))
}

// globToRegexp turns a pattern where '*' matches any sequence into a regexp
// that must match the whole value.
func globToRegexp(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}

	return regexp.MustCompile(`^(?s:` + strings.Join(parts, ".*") + `)$`)
}
