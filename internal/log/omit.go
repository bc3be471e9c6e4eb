package log

import "log/slog"

// OmitEmpty builds an attribute with fn unless value is the zero value of
// its type. Zero values produce an empty slog.Attr, which handlers skip.
//
//	log.OmitEmpty(slog.String, "cwd", req.CWD)
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, key string, value T) slog.Attr {
	if value == *new(T) {
		return slog.Attr{}
	}
	return fn(key, value)
}
