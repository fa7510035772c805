// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/consensys/go-lil/pkg/address"
	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"github.com/consensys/go-lil/pkg/layout/parser"
	"github.com/consensys/go-lil/pkg/render"
	"github.com/consensys/go-lil/pkg/util"
	"github.com/consensys/go-lil/pkg/util/source"
	"github.com/consensys/go-lil/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lil [flags] DESCRIPTOR",
	Short: "Compute closed-form address functions for 2-D array layouts.",
	Long: `Compute the closed-form address function of a (possibly nested) 2-D array layout.
	Descriptors have the form LAYOUT(rows, cols, element) where LAYOUT is ROWMAJ,
	COLMAJ, ZMORTON or HILBERT (or any prefix thereof), and the element is either
	a size or a nested descriptor.  For example, "ZMORTON(4, 4, ROWMAJ(4, 4, 1))".
	The address function is printed after instantiating it with concrete indices,
	with symbolic indices and with arbitrary index expressions.  Unless --at is
	given, the concrete indices are (3, 7) reduced where necessary to lie within
	the layout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		} else if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			terminal = termio.NewTerminal()
			cfg      = layout.Config{MaxNesting: GetUint(cmd, "max-nesting")}
			options  = render.Options{
				Shared: GetFlag(cmd, "shared"),
				Lisp:   GetFlag(cmd, "lisp"),
				Width:  terminal.Width(),
			}
		)
		// Go!
		af := buildAddressFunction(terminal, args[0], cfg)
		// Read arguments
		var (
			at    = readIndices(GetString(cmd, "at"))
			vars  = readPair("--vars", GetString(cmd, "vars"))
			mixed = readPair("--mixed", GetString(cmd, "mixed"))
		)
		//
		if !cmd.Flags().Changed("at") {
			at = clampIndices(af.Layout(), at)
		}
		//
		req := address.Request{
			Row:     at[0],
			Col:     at[1],
			RowName: vars[0],
			ColName: vars[1],
			Mixed:   readBinding(terminal, mixed),
		}
		//
		printInstantiations(af, req, at, vars, mixed, options)
		//
		if GetFlag(cmd, "check") {
			checkAddressFunction(af)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Print("lil ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}
	//
	fmt.Println()
}

// Parse and build the address function for a given descriptor.  Syntax errors
// and invalid layouts are reported, and terminate execution.
func buildAddressFunction(terminal *termio.Terminal, descriptor string, cfg layout.Config) *layout.AddressFunction {
	stats := util.NewPerfStats()
	// Parse descriptor
	d, errs := parser.Parse(source.NewSourceFile("descriptor", []byte(descriptor)))
	if len(errs) > 0 {
		for _, err := range errs {
			printSyntaxError(terminal, &err)
		}
		//
		os.Exit(2)
	}
	//
	stats.Log("Parsing descriptor")
	// Validate and build
	af, err := layout.Build(d, cfg)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Println(e)
		}
		//
		os.Exit(1)
	}
	//
	stats.Log("Building address function")
	//
	return af
}

// Instantiate an address function in each of the three ways, and print the
// results.
func printInstantiations(af *layout.AddressFunction, req address.Request, at [2]int64, vars []string,
	mixed []string, options render.Options) {
	stats := util.NewPerfStats()
	//
	res, err := address.Instantiate(context.Background(), af, req)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	stats.Log("Instantiating address function")
	//
	var (
		printer  = render.NewPrinter(options)
		concrete = []string{fmt.Sprintf("%d", at[0]), fmt.Sprintf("%d", at[1])}
		lines    []string
	)
	//
	lines = append(lines, printer.Print("Concrete", concrete, res.Concrete)...)
	lines = append(lines, printer.Print("Symbolic", vars, res.Symbolic)...)
	lines = append(lines, printer.Print("Mixed", mixed, res.Mixed)...)
	//
	for _, line := range lines {
		fmt.Println(line)
	}
	//
	stats.Log("Rendering")
}

// Read the concrete row and column indices, such as "3,7".
func readIndices(arg string) [2]int64 {
	var (
		pair    = readPair("--at", arg)
		indices [2]int64
	)
	//
	for i, s := range pair {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Printf("invalid index \"%s\" for --at\n", s)
			os.Exit(2)
		}
		//
		indices[i] = n
	}
	//
	return indices
}

// Clamp concrete indices so that they lie within the logical extents of a
// layout.  Symbolic extents are unbounded.
func clampIndices(d *layout.Descriptor, at [2]int64) [2]int64 {
	for i, extent := range []expr.Expr{d.LogicalRows(), d.LogicalCols()} {
		n, err := expr.Eval(extent, expr.Bindings(nil))
		//
		if err == nil && n.Cmp(big.NewInt(at[i])) <= 0 {
			at[i] = n.Int64() - 1
		}
	}
	//
	return at
}

// Read the mixed row and column expressions, such as "i*3" and "j+m".
func readBinding(terminal *termio.Terminal, pair []string) address.Binding {
	var args [2]expr.Expr
	//
	for i, s := range pair {
		e, errs := expr.Parse(s, layout.IsValidName)
		if len(errs) > 0 {
			for _, err := range errs {
				printSyntaxError(terminal, &err)
			}
			//
			os.Exit(2)
		}
		//
		args[i] = e
	}
	//
	return address.Binding{Row: args[0], Col: args[1]}
}

// Read a comma-separated pair of arguments for a given flag.
func readPair(flag string, arg string) []string {
	pair := strings.Split(arg, ",")
	//
	if len(pair) != 2 {
		fmt.Printf("expected two comma-separated values for %s (got \"%s\")\n", flag, arg)
		os.Exit(2)
	}
	//
	for i := range pair {
		pair[i] = strings.TrimSpace(pair[i])
	}
	//
	return pair
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().String("at", "3,7", "concrete row and column indices")
	rootCmd.Flags().String("vars", "i,j", "variable names for the symbolic row and column")
	rootCmd.Flags().String("mixed", "i*3,j+m", "expressions for the mixed row and column")
	rootCmd.Flags().Bool("lisp", false, "print expressions as S-expressions")
	rootCmd.Flags().Bool("shared", false, "name subexpressions which occur more than once")
	rootCmd.Flags().Bool("check", false, "check the address function against a reference over its whole domain")
	rootCmd.Flags().Uint("max-nesting", layout.DEFAULT_MAX_NESTING, "maximum depth of nested layouts")
}
