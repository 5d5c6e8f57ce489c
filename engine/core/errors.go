package core

// SurfaceInitError is returned by Run when the window provider cannot open a
// surface. Startup cannot continue.
type SurfaceInitError struct {
	Err error
}

func (e *SurfaceInitError) Error() string { return "core: open surface: " + e.Err.Error() }
func (e *SurfaceInitError) Unwrap() error { return e.Err }
