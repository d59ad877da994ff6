package activecheck

import "os"

// EnvGetter abstracts environment lookup for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the real process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
