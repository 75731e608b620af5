package domain

type Compilation struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Pinned bool     `json:"pinned"`
	Events []*Event `json:"events"`
}

type CreateCompilationInput struct {
	Title    string
	Pinned   *bool
	EventIDs []string
}

// CompilationPatch replaces the event set when EventIDs is non-nil.
type CompilationPatch struct {
	Title    *string
	Pinned   *bool
	EventIDs []string
}
