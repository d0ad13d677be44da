package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Requirement(name string) slog.Attr {
	return slog.String("requirement", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Class(name string) slog.Attr {
	return slog.String("class", name)
}

// SeedFile records the path of a seed document under the key "seed_file".
func SeedFile(path string) slog.Attr {
	return slog.String("seed_file", path)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
