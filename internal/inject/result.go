package inject

// Action describes what happened to a single target file.
type Action string

const (
	// ActionCreated means the file was newly written.
	ActionCreated Action = "created"

	// ActionAppended means DevKit content was appended to a pre-existing
	// file, preserving its original bytes.
	ActionAppended Action = "appended"

	// ActionReplaced means the file was backed up and rewritten.
	ActionReplaced Action = "replaced"

	// ActionSkipped means the file was left untouched.
	ActionSkipped Action = "skipped"

	// ActionFailed means the file could not be written.
	ActionFailed Action = "failed"
)

// Artifact records the outcome for one target file.
type Artifact struct {
	// Path is the target file path inside the installation.
	Path string

	// Action is what happened to the target.
	Action Action

	// Backup is the timestamped copy created before a rewrite, if any.
	Backup string

	// Note carries extra information for the user (skip reasons, warnings).
	Note string
}

// RootResult collects the outcomes for one installation root.
type RootResult struct {
	// Root is the planned installation root, as listed in the plan.
	Root string

	// Artifacts lists every target touched or considered under this root.
	Artifacts []Artifact

	// Err is set when the root could not be processed at all.
	Err error
}

// fail records a per-file failure without aborting the root.
func (rr *RootResult) fail(path string, err error) {
	rr.Artifacts = append(rr.Artifacts, Artifact{
		Path:   path,
		Action: ActionFailed,
		Note:   err.Error(),
	})
}

// Result is the outcome of one install run over the whole plan.
type Result struct {
	// Roots holds one entry per plan entry, in plan order.
	Roots []RootResult
}

// Failed returns the number of roots that could not be processed.
func (r *Result) Failed() int {
	n := 0
	for _, rr := range r.Roots {
		if rr.Err != nil {
			n++
		}
	}
	return n
}
