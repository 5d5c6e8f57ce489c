//go:build !profile

package profiler

// Stubbed no-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Stats() []Stat { return nil }

func Reset() {}

func Report() {}

func Dump(path string) error { return ErrDisabled }

func OpenProfilerGraph() (string, error) { return "", ErrDisabled }

func Enabled() bool { return false }
