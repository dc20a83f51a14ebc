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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/softcpu/remu/hardware"
	"github.com/softcpu/remu/hardware/refcore"
	"github.com/softcpu/remu/logger"
	"github.com/softcpu/remu/modalflag"
	"github.com/softcpu/remu/monitor"
	"github.com/softcpu/remu/monitor/terminal"
	"github.com/softcpu/remu/monitor/terminal/colorterm"
	"github.com/softcpu/remu/monitor/terminal/plainterm"
	"github.com/softcpu/remu/statsview"
	"github.com/softcpu/remu/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG")
	ver := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *ver {
		v, rev := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// newMachine creates a machine and loads the image named on the command line
// into its RAM. with no image the machine starts zeroed.
func newMachine(md *modalflag.Modes) (*hardware.Machine, error) {
	if len(md.RemainingArgs()) > 1 {
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	mach := hardware.NewMachine(refcore.Core{})

	if len(md.RemainingArgs()) == 1 {
		image, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, err
		}
		if err := mach.Mem.LoadImage(image); err != nil {
			return nil, err
		}
	}

	return mach, nil
}

// run executes a memory image until the machine halts. it is exactly the
// debug mode's batch facility under a shorter name.
func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo machine log to stdout")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)
	launchStats(*stats)

	mach, err := newMachine(md)
	if err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(mach, &plainterm.PlainTerminal{})
	if err != nil {
		return err
	}
	mon.SetBatchMode()

	return mon.Run()
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	batch := md.AddBool("batch", false, "run to halt without reading commands")
	log := md.AddBool("log", false, "echo machine log to stdout")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)
	launchStats(*stats)

	mach, err := newMachine(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	mon, err := monitor.NewMonitor(mach, term)
	if err != nil {
		return err
	}
	if *batch {
		mon.SetBatchMode()
	}

	return mon.Run()
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

func launchStats(stats bool) {
	if !stats {
		return
	}
	if !statsview.Available() {
		fmt.Println("! statsview not available in this build")
		return
	}
	statsview.Launch(os.Stdout)
}
