package entity

// Exercise is a single logged workout entry belonging to one user.
//
// Date holds the canonical YYYY-MM-DD form, normalized to UTC. Canonical
// dates sort lexicographically, so range filters are plain string
// comparisons.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        string
}

// LogFilter narrows an exercise log query. Zero values mean "no bound".
// From and To are canonical YYYY-MM-DD dates.
type LogFilter struct {
	From  string
	To    string
	Limit int
}
