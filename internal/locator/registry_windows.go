//go:build windows

package locator

import (
	"golang.org/x/sys/windows/registry"
)

// Registry keys populated by the RubyInstaller family of installers. Each
// subkey holds one installation with its root in the InstallLocation value.
var installerKeys = []string{
	`Software\RubyInstaller\MRI`,
	`Software\RubyInstaller\Rubinius`,
}

// scanRegistry collects InstallLocation values from the per-user and
// per-machine installer keys. Missing or unreadable keys are treated as
// empty rather than as errors: an installer may never have run for one of
// the hives.
func scanRegistry() ([]string, error) {
	var roots []string
	for _, hive := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		for _, keyPath := range installerKeys {
			roots = append(roots, scanKey(hive, keyPath)...)
		}
	}
	return roots, nil
}

// scanKey returns the InstallLocation of every subkey under hive\keyPath.
func scanKey(hive registry.Key, keyPath string) []string {
	k, err := registry.OpenKey(hive, keyPath, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var roots []string
	for _, name := range names {
		sub, err := registry.OpenKey(hive, keyPath+`\`+name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		location, _, err := sub.GetStringValue("InstallLocation")
		sub.Close()
		if err == nil && location != "" {
			roots = append(roots, location)
		}
	}
	return roots
}
