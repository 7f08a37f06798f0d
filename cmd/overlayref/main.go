// seehuhn.de/go/marks - overlays for text ranges
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command overlayref generates reference output for the overlay test
// scenarios and shows overlays in a terminal.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/marks"
)

// CLI defines the command-line interface.
var CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Log discarded rectangles and unhandled events"`

	Render RenderCmd `cmd:"" help:"Write PNG and PDF images for all test scenarios"`
	Export ExportCmd `cmd:"" help:"Write the test scenarios and their paint output as JSON"`
	Demo   DemoCmd   `cmd:"" help:"Show highlights and underlines in the terminal"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("overlayref"),
		kong.Description("Reference output for text range overlays"),
		kong.UsageOnError(),
	)

	if CLI.Verbose {
		marks.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
