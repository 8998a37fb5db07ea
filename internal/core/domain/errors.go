package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to apply environment overrides")

	// ErrConfigInvalidLogLevel is returned when log.level is not a known level.
	ErrConfigInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrConfigInvalidLogFormat is returned when log.format is not a known format.
	ErrConfigInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrConfigInvalidLegacyURL is returned when bridge.legacy_url is not a ws:// or wss:// URL.
	ErrConfigInvalidLegacyURL = zerr.New("invalid legacy bridge url, expected a ws:// or wss:// url")

	// ErrConfigInvalidTitlePattern is returned when badge.title_pattern does not compile
	// or has no capture group.
	ErrConfigInvalidTitlePattern = zerr.New("invalid badge title pattern")

	// ErrConfigInvalidConcurrency is returned when preload.concurrency is not positive.
	ErrConfigInvalidConcurrency = zerr.New("preload concurrency must be positive")

	// ErrBridgeDialFailed is returned when a bridge transport cannot be established.
	ErrBridgeDialFailed = zerr.New("failed to connect to bridge")

	// ErrBridgeCallFailed is returned when the host rejects or fails a command.
	ErrBridgeCallFailed = zerr.New("bridge call failed")

	// ErrBridgeClosed is returned for calls on a bridge whose connection has been closed.
	ErrBridgeClosed = zerr.New("bridge connection closed")

	// ErrUnexpectedResult is returned when a command result has the wrong shape.
	ErrUnexpectedResult = zerr.New("unexpected bridge result")

	// ErrTitleSourceFailed is returned when a window title source cannot be read.
	ErrTitleSourceFailed = zerr.New("failed to read window title")

	// ErrCommandFailed marks a command failure that was already reported to the user.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInvalidCount is returned when a count argument is not an integer.
	ErrInvalidCount = zerr.New("invalid count, expected an integer")

	// ErrInvalidAttribute is returned when an element attribute is not of the form key=value.
	ErrInvalidAttribute = zerr.New("invalid element attribute, expected key=value")
)

// Kind classifies a resolver failure.
type Kind uint8

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindBridgeUnavailable means no host bridge was found at construction.
	KindBridgeUnavailable
	// KindInvalidArgument means the caller passed a value the host must never see.
	KindInvalidArgument
	// KindResolutionFailed means the host rejected an icon or badge path lookup.
	KindResolutionFailed
	// KindListFailed means the host rejected the available-icons listing.
	KindListFailed
	// KindElementConstructionFailed wraps a failure while building an element.
	KindElementConstructionFailed
	// KindSetBadgeFailed means the host rejected a set_badge command.
	KindSetBadgeFailed
)

var kindNames = [...]string{
	KindUnknown:                   "unknown",
	KindBridgeUnavailable:         "bridge_unavailable",
	KindInvalidArgument:           "invalid_argument",
	KindResolutionFailed:          "resolution_failed",
	KindListFailed:                "list_failed",
	KindElementConstructionFailed: "element_construction_failed",
	KindSetBadgeFailed:            "set_badge_failed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a resolver failure tagged with its Kind and the resource it concerns.
//
// errors.Is matches an *Error against the Err* sentinels below by Kind, so
// callers can branch on the failure class while keeping the context fields.
type Error struct {
	Kind   Kind
	Key    string
	Count  int
	Detail string
	Cause  error
}

// Sentinels for errors.Is.
var (
	ErrBridgeUnavailable         = &Error{Kind: KindBridgeUnavailable}
	ErrInvalidArgument           = &Error{Kind: KindInvalidArgument}
	ErrResolutionFailed          = &Error{Kind: KindResolutionFailed}
	ErrListFailed                = &Error{Kind: KindListFailed}
	ErrElementConstructionFailed = &Error{Kind: KindElementConstructionFailed}
	ErrSetBadgeFailed            = &Error{Kind: KindSetBadgeFailed}
)

// Error implements error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message() + ": " + e.Cause.Error()
	}
	return e.Message()
}

// Message returns the failure description without its cause.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBridgeUnavailable:
		return "host bridge unavailable"
	case KindInvalidArgument:
		if e.Detail != "" {
			return "invalid argument: " + e.Detail
		}
		return "invalid argument"
	case KindResolutionFailed:
		if e.Key != "" {
			return "icon not found: " + e.Key
		}
		return "icon not found"
	case KindListFailed:
		return "failed to list icons"
	case KindElementConstructionFailed:
		if e.Key != "" {
			return "element construction failed for key " + e.Key
		}
		return "element construction failed"
	case KindSetBadgeFailed:
		return "failed to set badge to " + strconv.Itoa(e.Count)
	default:
		return "resolver error"
	}
}

// Metadata returns the structured context of the failure.
func (e *Error) Metadata() map[string]any {
	md := map[string]any{"kind": e.Kind.String()}
	if e.Count != 0 || e.Kind == KindSetBadgeFailed {
		md["count"] = e.Count
	}
	return md
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
// A target carrying a Key additionally requires the keys to match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}
