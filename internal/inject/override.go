package inject

import "path/filepath"

// overrideFile is loaded by RubyGems before every gem installation.
const overrideFile = "operating_system.rb"

// installOverrides places the pre-install hook into each rubygems directory.
//
// Conflict policy per target:
//   - absent: create it
//   - present without the DevKit marker: append the hook, preserving the
//     foreign content byte for byte
//   - present with the marker: skip, or back up and rewrite when forced
func (in *Injector) installOverrides(gemDirs []string, force bool, rr *RootResult) {
	fragment := []byte(OverrideFragment(in.paths.DevKitRoot))

	for _, dir := range gemDirs {
		target := filepath.Join(dir, "defaults", overrideFile)

		exists, err := in.fs.Exists(target)
		if err != nil {
			rr.fail(target, err)
			continue
		}

		if !exists {
			if err := in.fs.WriteFile(target, fragment, 0644); err != nil {
				rr.fail(target, err)
				continue
			}
			rr.Artifacts = append(rr.Artifacts, Artifact{Path: target, Action: ActionCreated})
			continue
		}

		content, err := in.fs.ReadFile(target)
		if err != nil {
			rr.fail(target, err)
			continue
		}

		if !in.marker.Present(content) {
			if err := in.fs.AppendFile(target, fragment, 0644); err != nil {
				rr.fail(target, err)
				continue
			}
			rr.Artifacts = append(rr.Artifacts, Artifact{Path: target, Action: ActionAppended})
			continue
		}

		if !force {
			rr.Artifacts = append(rr.Artifacts, Artifact{
				Path:   target,
				Action: ActionSkipped,
				Note:   "already configured for the DevKit; use --force to rewrite",
			})
			continue
		}

		bak, err := in.backup(target)
		if err != nil {
			rr.fail(target, err)
			continue
		}
		if err := in.fs.WriteFile(target, fragment, 0644); err != nil {
			rr.fail(target, err)
			continue
		}
		rr.Artifacts = append(rr.Artifacts, Artifact{
			Path:   target,
			Action: ActionReplaced,
			Backup: bak,
			Note:   "any custom content was moved to the backup; merge it back by hand if needed",
		})
	}
}
