// This file is part of MemEdit.
//
// MemEdit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MemEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MemEdit.  If not, see <https://www.gnu.org/licenses/>.

// The memedit command is a self-contained demonstration of the memedit
// package. It maps a block of demonstration RAM, and any files named on the
// command line, into a single address space and opens an editor window onto
// it.
package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/memedit"
	"github.com/jetsetilly/memedit/logger"
	"github.com/jetsetilly/memedit/modalflag"
	"github.com/jetsetilly/memedit/paths"
	"github.com/jetsetilly/memedit/prefs"
	"github.com/jetsetilly/memedit/statsview"
	"github.com/jetsetilly/memedit/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	readOnly := md.AddBool("readonly", false, "open the editor in read-only mode")
	prefsFile := md.AddString("prefs", "", "path to the preferences file")
	override := md.AddString("override", "", "one-shot preference values. eg. memedit.columns::32")
	stats := md.AddBool("statsview", false, "run stats server")

	md.AdditionalHelp("Arguments after the flags are files to map into the demonstration address space. WAV and MP3 files are decoded to 16bit PCM before mapping, any other file is mapped as it is. Files can be inside ZIP archives (eg. samples.zip/tone.wav).")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	// values in the override string take the place of the corresponding
	// values in the preferences file. whatever remains on the stack after
	// preferences initialisation was not recognised
	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	dmo, err := newDemo(md.RemainingArgs(), *readOnly)
	if err != nil {
		return err
	}

	pth := *prefsFile
	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
	}

	prf, err := memedit.NewPreferences(dmo.ed, pth)
	if err != nil {
		return err
	}

	if *override != "" {
		if s := prefs.PopCommandLineStack(); s != "" {
			logger.Logf("memedit", "unrecognised preferences on command line (%s)", s)
		}
	}

	thm, err := loadTheme()
	if err != nil {
		return err
	}

	wnd, err := newWindow()
	if err != nil {
		return err
	}
	defer wnd.destroy()

	wnd.clearColor, err = thm.apply(dmo.ed)
	if err != nil {
		return err
	}

	dmo.ed.SetFontTable(wnd.fonts())

	for !wnd.plt.shouldStop {
		wnd.service(dmo)
	}

	return prf.Save()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vrsn, rev, _ := version.Version()
	fmt.Println(vrsn)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
