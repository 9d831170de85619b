package core

// Board is the contract the shells need from a Game of Life engine.
type Board interface {
	Size() int
	Alive(x, y int) bool
	Set(x, y int, alive bool)
	Step()
	Clear()
	Generation() int
	Population() int
}

// Seeder is implemented by boards that can fill themselves with a seeded soup.
type Seeder interface {
	Randomize(seed int64)
}

// DirtyTracker is implemented by boards that report when they need a redraw.
type DirtyTracker interface {
	TakeDirty() bool
}
