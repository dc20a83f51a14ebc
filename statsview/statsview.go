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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/softcpu/remu/logger"
)

// Address the stats server listens on.
const Address = "localhost:12680"

// the page the graphical statistics are served from. pprof is at
// /debug/pprof/ on the same address.
const page = "/debug/statsview"

// Launch the stats server in its own goroutine. The server runs for the
// remainder of the process, there is no way to stop it. The address the
// server can be reached at is reported through output and noted in the
// central log.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	go func() {
		statsview.New().Start()
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, page)
	logger.Logf("statsview", "listening on %s", Address)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
