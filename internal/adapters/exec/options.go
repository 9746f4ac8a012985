package exec

import (
	"encoding/json"
	"math"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	optionCommand     = "command"
	optionParallelism = "parallelism"
	optionTimeout     = "timeout"
	optionVersion     = "version"
)

// Options configures the exec scanner.
type Options struct {
	// Command is the detection command followed by its arguments.
	Command []string

	// Parallelism bounds the number of commands running at once.
	Parallelism int

	// Timeout limits a single command run. Zero means no limit.
	Timeout time.Duration

	// Version is reported as the scanner version in every result.
	Version string
}

// ParseOptions reads scanner options from their configuration form.
//
// "command" is either a string split on whitespace or a list of strings.
// "parallelism" defaults to the number of CPUs. "timeout" is a duration string
// such as "5m" or a number of seconds.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := Options{Parallelism: runtime.NumCPU()}

	for key, value := range raw {
		var err error
		switch key {
		case optionCommand:
			opts.Command, err = parseCommand(value)
		case optionParallelism:
			opts.Parallelism, err = parsePositiveInt(value)
		case optionTimeout:
			opts.Timeout, err = parseDuration(value)
		case optionVersion:
			opts.Version, err = parseString(value)
		default:
			err = zerr.New("unknown option")
		}
		if err != nil {
			return Options{}, invalidOption(key, value, err)
		}
	}

	if len(opts.Command) == 0 {
		return Options{}, invalidOption(optionCommand, nil, zerr.New("a detection command is required"))
	}

	return opts, nil
}

func invalidOption(key string, value any, cause error) error {
	err := zerr.With(domain.ErrInvalidScannerOption, "option", key)
	err = zerr.With(err, "value", value)
	return zerr.With(err, "reason", cause.Error())
}

func parseCommand(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return strings.Fields(v), nil
	case []string:
		return v, nil
	case []any:
		args := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, zerr.New("command arguments must be strings")
			}
			args = append(args, s)
		}
		return args, nil
	default:
		return nil, zerr.New("command must be a string or a list of strings")
	}
}

func parseString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int, int64, float64:
		// YAML reads unquoted versions such as 3 or 3.1 as numbers.
		b, _ := json.Marshal(v)
		return string(b), nil
	default:
		return "", zerr.New("must be a string")
	}
}

func parsePositiveInt(value any) (int, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, zerr.New("out of range")
		}
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, zerr.New("must be a whole number")
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, zerr.New("must be a number")
		}
		n = parsed
	default:
		return 0, zerr.New("must be a number")
	}

	if n < 1 {
		return 0, zerr.New("must be at least 1")
	}
	return n, nil
}

func parseDuration(value any) (time.Duration, error) {
	var d time.Duration
	switch v := value.(type) {
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, zerr.New("must be a duration such as 90s or 5m")
		}
		d = parsed
	case int:
		d = time.Duration(v) * time.Second
	case int64:
		d = time.Duration(v) * time.Second
	case float64:
		d = time.Duration(v * float64(time.Second))
	default:
		return 0, zerr.New("must be a duration")
	}

	if d < 0 {
		return 0, zerr.New("must not be negative")
	}
	return d, nil
}
