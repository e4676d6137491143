package bible

// Testament is a coarse partition of the catalog and of a versification's
// ordinal space.
type Testament int

const (
	// NoTestament means "unspecified"; counting over it covers a whole canon.
	NoTestament Testament = iota
	// Intro holds front matter for the whole work.
	Intro
	// Old is the Old Testament, deuterocanonical books included.
	Old
	// New is the New Testament.
	New
)

// String returns a short lower-case name for the testament.
func (t Testament) String() string {
	switch t {
	case Intro:
		return "intro"
	case Old:
		return "old"
	case New:
		return "new"
	default:
		return "none"
	}
}
