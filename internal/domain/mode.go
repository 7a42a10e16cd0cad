package domain

type RunMode string

const (
	ModeSync  RunMode = "sync"
	ModeForce RunMode = "force"
	ModeClean RunMode = "clean"
)

// ResolveMode interprets the CLI flags with their fixed precedence: clean
// wins over force, force over plain sync.
func ResolveMode(clean, force bool) RunMode {
	switch {
	case clean:
		return ModeClean
	case force:
		return ModeForce
	default:
		return ModeSync
	}
}
