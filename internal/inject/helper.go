package inject

import "path/filepath"

// helperFile is the library users load to enable the DevKit for a single
// ruby process.
const helperFile = "devkit.rb"

// installHelper writes the standalone helper library into dir.
//
// Unlike the override file, an existing devkit.rb is treated as a namespace
// collision without inspecting its content, so --force backs up and rewrites
// even a file that is already current.
func (in *Injector) installHelper(dir string, force bool, rr *RootResult) {
	target := filepath.Join(dir, helperFile)

	exists, err := in.fs.Exists(target)
	if err != nil {
		rr.fail(target, err)
		return
	}

	if exists && !force {
		rr.Artifacts = append(rr.Artifacts, Artifact{
			Path:   target,
			Action: ActionSkipped,
			Note:   "already exists; use --force to overwrite",
		})
		return
	}

	art := Artifact{Path: target, Action: ActionCreated}
	if exists {
		bak, err := in.backup(target)
		if err != nil {
			rr.fail(target, err)
			return
		}
		art.Action = ActionReplaced
		art.Backup = bak
	}

	library := HelperLibrary(in.paths.DevKitRoot)
	if err := in.fs.WriteFile(target, []byte(library), 0644); err != nil {
		rr.fail(target, err)
		return
	}
	rr.Artifacts = append(rr.Artifacts, art)
}
