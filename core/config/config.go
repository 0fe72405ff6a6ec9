package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingConfig wraps every configuration failure: a required environment
// variable that is not set, or a value that cannot be parsed into its field
// type. Callers match the category with errors.Is; the wrapped text names
// the offending variable.
var ErrMissingConfig = errors.New("missing configuration")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed struct value
)

// Load populates cfg from the process environment. A .env file in the
// working directory is loaded once per process before the first parse;
// its absence is not an error. Each configuration type is parsed once and
// cached, so repeated loads of the same type are cheap and consistent.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config pointer", ErrMissingConfig)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup wiring.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
