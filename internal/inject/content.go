package inject

import (
	"path/filepath"
	"strings"
	"text/template"
)

// Batch stub forwarding a build command to the real binary with the DevKit
// on PATH. %* forwards all arguments.
var stubTmpl = template.Must(template.New("stub").Parse(`@ECHO OFF
SET RI_DEVKIT={{.Root}}
SET PATH={{.Root}}\bin;{{.Root}}\mingw\bin;%PATH%
{{.Command}}.exe %*
`))

// RubyGems pre-install hook. The root path is already escaped for embedding
// in a Ruby string literal, so the rendered file reads back the real path.
var overrideTmpl = template.Must(template.New("override").Parse(`# :DevKit:
# This file registers a pre-install hook with RubyGems so that gems with
# native extensions build against the DevKit toolchain.
Gem.pre_install do |gem_installer|
  unless ENV['PATH'].include?('{{.Root}}\\mingw\\bin') then
    puts 'Temporarily enhancing PATH to include DevKit...'
    ENV['PATH'] = '{{.Root}}\\bin;{{.Root}}\\mingw\\bin;' + ENV['PATH']
  end
end
`))

// Standalone helper. Same PATH logic as the override hook, but executed
// unconditionally at load time so the user can opt in for a single build:
//
//	ruby -rdevkit extconf.rb
var helperTmpl = template.Must(template.New("helper").Parse(`# :DevKit:
# Prepends the DevKit build tools to the PATH of the current ruby process.
# Load it explicitly when building a native gem by hand:
#
#   ruby -rdevkit extconf.rb
#
unless ENV['PATH'].include?('{{.Root}}\\mingw\\bin') then
  puts 'Temporarily enhancing PATH to include DevKit...'
  ENV['PATH'] = '{{.Root}}\\bin;{{.Root}}\\mingw\\bin;' + ENV['PATH']
end
`))

// StubScript renders the forwarding batch script for one build command.
func StubScript(command, devkitRoot string) string {
	return render(stubTmpl, windowsPath(devkitRoot), command)
}

// OverrideFragment renders the RubyGems pre-install override.
func OverrideFragment(devkitRoot string) string {
	return render(overrideTmpl, rubyPath(devkitRoot), "")
}

// HelperLibrary renders the standalone devkit helper library.
func HelperLibrary(devkitRoot string) string {
	return render(helperTmpl, rubyPath(devkitRoot), "")
}

func render(tmpl *template.Template, root, command string) string {
	var b strings.Builder
	// Executing a parsed template over plain strings cannot fail
	_ = tmpl.Execute(&b, struct{ Root, Command string }{Root: root, Command: command})
	return b.String()
}

// windowsPath renders p with backslash separators for generated Windows
// content.
func windowsPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", `\`)
}

// rubyPath renders p as it must appear inside a generated Ruby string
// literal: backslash separators, each escaped once more because the
// rendered fragment is itself source code.
func rubyPath(p string) string {
	return strings.ReplaceAll(windowsPath(p), `\`, `\\`)
}
