package types

import (
	"fmt"
	"time"
)

// ISO8601 asks the format constraint for strict ISO 8601 validation instead
// of a specific Go layout.
const ISO8601 = "iso8601"

// Lenient layout lists used for type checks and coercion. The format
// constraint only tightens validation; coercion always parses leniently.
var (
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		time.RFC3339,
	}
	dateTimeLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

func parseTemporal(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func truncateToDate(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// DateType validates and coerces calendar dates. Native values are
// time.Time; coercion truncates to midnight UTC.
type DateType struct {
	format string // ISO8601 or a Go layout string; checked during validation only
	meta   Metadata
}

// TemporalOption configures a DateType or DateTimeType at construction time.
type TemporalOption func(formatDest *string)

// TimeFormat constrains string values to a layout during validation.
// Pass ISO8601 for strict ISO 8601 checking, or any Go time layout.
func TimeFormat(layout string) TemporalOption {
	return func(dest *string) { *dest = layout }
}

// Date creates a date type.
func Date(opts ...TemporalOption) *DateType {
	t := &DateType{}
	for _, o := range opts {
		o(&t.format)
	}
	return t
}

func (t *DateType) Name() string       { return "date" }
func (t *DateType) Kind() Kind         { return KindDate }
func (t *DateType) Required() bool     { return true }
func (t *DateType) Metadata() Metadata { return t.meta }

func (t *DateType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *DateType) Validate(value any) Result     { return runValidate(t, value) }
func (t *DateType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *DateType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *DateType) checkType(v any) []*ValidationError {
	switch ts := v.(type) {
	case time.Time:
		return nil
	case string:
		if _, ok := parseTemporal(ts, dateLayouts); !ok {
			return []*ValidationError{{Reason: fmt.Sprintf("value %q is not a parseable date", ts), Value: v}}
		}
		return nil
	default:
		return []*ValidationError{{Reason: fmt.Sprintf("expected date, got %T", v), Value: v}}
	}
}

func (t *DateType) checkConstraints(v any) []*ValidationError {
	s, ok := v.(string)
	if !ok || t.format == "" {
		return nil
	}
	if t.format == ISO8601 {
		if !isoDatePattern.MatchString(s) {
			return []*ValidationError{{Reason: fmt.Sprintf("value %q is not an ISO 8601 date", s), Value: v}}
		}
		return nil
	}
	if _, err := time.Parse(t.format, s); err != nil {
		return []*ValidationError{{Reason: fmt.Sprintf("value %q does not match time format %q", s, t.format), Value: v}}
	}
	return nil
}

func (t *DateType) coerceValue(v any, _ Policy) (any, error) {
	switch ts := v.(type) {
	case time.Time:
		return truncateToDate(ts), nil
	case string:
		parsed, ok := parseTemporal(ts, dateLayouts)
		if !ok {
			return nil, newCoercionError(v, "date", fmt.Sprintf("cannot parse %q as a date", ts), nil)
		}
		return truncateToDate(parsed), nil
	case int:
		return truncateToDate(time.Unix(int64(ts), 0).UTC()), nil
	case int64:
		return truncateToDate(time.Unix(ts, 0).UTC()), nil
	default:
		return nil, newCoercionError(v, "date", fmt.Sprintf("unsupported type %T", v), nil)
	}
}

func (t *DateType) schemaFragment() map[string]any {
	return map[string]any{"type": "string", "format": "date"}
}

// DateTimeType validates and coerces timestamps. Native values are time.Time.
type DateTimeType struct {
	format string
	meta   Metadata
}

// DateTime creates a datetime type.
func DateTime(opts ...TemporalOption) *DateTimeType {
	t := &DateTimeType{}
	for _, o := range opts {
		o(&t.format)
	}
	return t
}

func (t *DateTimeType) Name() string       { return "datetime" }
func (t *DateTimeType) Kind() Kind         { return KindDateTime }
func (t *DateTimeType) Required() bool     { return true }
func (t *DateTimeType) Metadata() Metadata { return t.meta }

func (t *DateTimeType) WithMetadata(md Metadata) Type {
	c := *t
	c.meta = c.meta.merge(md)
	return &c
}

func (t *DateTimeType) Validate(value any) Result     { return runValidate(t, value) }
func (t *DateTimeType) Coerce(value any) (any, error) { return runCoerce(t, value, Lenient) }
func (t *DateTimeType) JSONSchema() map[string]any    { return buildSchema(t) }

func (t *DateTimeType) checkType(v any) []*ValidationError {
	switch ts := v.(type) {
	case time.Time:
		return nil
	case string:
		if _, ok := parseTemporal(ts, dateTimeLayouts); !ok {
			return []*ValidationError{{Reason: fmt.Sprintf("value %q is not a parseable datetime", ts), Value: v}}
		}
		return nil
	default:
		return []*ValidationError{{Reason: fmt.Sprintf("expected datetime, got %T", v), Value: v}}
	}
}

func (t *DateTimeType) checkConstraints(v any) []*ValidationError {
	s, ok := v.(string)
	if !ok || t.format == "" {
		return nil
	}
	if t.format == ISO8601 {
		if !isoDateTimePattern.MatchString(s) {
			return []*ValidationError{{Reason: fmt.Sprintf("value %q is not an ISO 8601 datetime", s), Value: v}}
		}
		return nil
	}
	if _, err := time.Parse(t.format, s); err != nil {
		return []*ValidationError{{Reason: fmt.Sprintf("value %q does not match time format %q", s, t.format), Value: v}}
	}
	return nil
}

func (t *DateTimeType) coerceValue(v any, _ Policy) (any, error) {
	switch ts := v.(type) {
	case time.Time:
		return ts, nil
	case string:
		parsed, ok := parseTemporal(ts, dateTimeLayouts)
		if !ok {
			return nil, newCoercionError(v, "datetime", fmt.Sprintf("cannot parse %q as a datetime", ts), nil)
		}
		return parsed, nil
	case int:
		return time.Unix(int64(ts), 0).UTC(), nil
	case int64:
		return time.Unix(ts, 0).UTC(), nil
	default:
		return nil, newCoercionError(v, "datetime", fmt.Sprintf("unsupported type %T", v), nil)
	}
}

func (t *DateTimeType) schemaFragment() map[string]any {
	return map[string]any{"type": "string", "format": "date-time"}
}
