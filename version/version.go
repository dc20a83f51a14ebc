// This file is part of Remu.
//
// Remu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Remu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Remu.  If not, see <https://www.gnu.org/licenses/>.

// Package version records what build of the application is running.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Remu"

// number is set through the linker by the release process. it is empty for
// any other kind of build.
var number string

// Version returns the version string and the vcs revision. the revision is
// suffixed with "+dirty" if the source had uncommitted changes at build time.
//
// A version of "unreleased" is a build from the repository without a release
// number. A version of "local" is a build with no vcs information at all,
// from "go run ." for instance.
func Version() (string, string) {
	version := number
	revision := "no revision information"

	var vcs bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				if v.Value != "" {
					revision = v.Value
				}
			case "vcs.modified":
				if v.Value == "true" {
					revision += "+dirty"
				}
			}
		}
	}

	if version == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	}

	return version, revision
}
