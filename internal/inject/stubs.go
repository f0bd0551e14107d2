package inject

import "path/filepath"

// Commands stubbed into bin/ when an installation has no RubyGems to hook.
var stubCommands = []string{"gcc", "g++", "make", "sh"}

// installStubs writes a forwarding batch script for each build command.
//
// Stubs are always refreshed regardless of the force flag; an existing
// script is renamed to a timestamped backup first.
func (in *Injector) installStubs(root string, rr *RootResult) {
	binDir := filepath.Join(root, "bin")

	for _, command := range stubCommands {
		target := filepath.Join(binDir, command+".bat")
		art := Artifact{Path: target, Action: ActionCreated}

		if exists, err := in.fs.Exists(target); err == nil && exists {
			bak, err := in.backup(target)
			if err != nil {
				rr.fail(target, err)
				continue
			}
			art.Action = ActionReplaced
			art.Backup = bak
		}

		script := StubScript(command, in.paths.DevKitRoot)
		if err := in.fs.WriteFile(target, []byte(script), 0755); err != nil {
			rr.fail(target, err)
			continue
		}
		rr.Artifacts = append(rr.Artifacts, art)
	}
}
