package lighthouse

// Spawner decouples task spawning from the library, letting a caller route
// the connection's detached work (the receive loop, and every stream
// guard's fire-and-forget STOP) through its own worker pool or runtime
// instrumentation. The zero value is not usable; use defaultSpawner.
type Spawner func(func())

func defaultSpawner(f func()) {
	go f()
}
