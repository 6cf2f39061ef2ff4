package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Experiment records the experiment name under the key "experiment".
func Experiment(name string) slog.Attr {
	return slog.String("experiment", name)
}

// Alternative records the alternative name under the key "alternative".
func Alternative(name string) slog.Attr {
	return slog.String("alternative", name)
}

// ClientID records the visitor identifier under the key "client_id".
func ClientID(id string) slog.Attr {
	return slog.String("client_id", id)
}

// Endpoint records the remote endpoint under the key "endpoint".
func Endpoint(name string) slog.Attr {
	return slog.String("endpoint", name)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records d in milliseconds under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}
