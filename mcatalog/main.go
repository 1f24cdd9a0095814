////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// package main is its own utility that is compiled separate from the WASM
// module. It regenerates the Messier common-name table in the catalog package
// from a JSON source file and is not a WASM module itself.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

// Flag variables.
var (
	inputPath, outputPath, logFile string
	logLevel                       int
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Reads the Messier common-name JSON file and generates the Go source file
// holding the name table. Refer to the flags for details.
var cmd = &cobra.Command{
	Use: "mcatalog",
	Short: "Reads the Messier common-name JSON file and generates the Go " +
		"source file holding the name table. Refer to the flags for details.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {

		// Initialize the logging
		initLog(jww.Threshold(logLevel), logFile)

		jww.INFO.Printf("Reading name table from %s", inputPath)
		data, err := os.ReadFile(inputPath)
		if err != nil {
			jww.FATAL.Panicf("Failed to read name table: %+v", err)
		}

		names, err := parseNames(data)
		if err != nil {
			jww.FATAL.Panicf("Failed to parse name table: %+v", err)
		}

		jww.DEBUG.Printf("Parsed %d common names", len(names))

		src, err := generate(names)
		if err != nil {
			jww.FATAL.Panicf("Failed to generate source: %+v", err)
		}

		if err = os.WriteFile(outputPath, src, 0644); err != nil {
			jww.FATAL.Panicf(
				"Failed to write generated source to %s: %+v", outputPath, err)
		}

		jww.INFO.Printf("Wrote generated source to %s", outputPath)
	},
}

// init is the initialization function for Cobra which defines flags.
func init() {
	cmd.Flags().StringVarP(&inputPath, "input", "i", "names.json",
		"JSON file mapping Messier catalog numbers to common names.")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "messierNames.go",
		"Output Go source file path.")
	cmd.Flags().StringVarP(&logFile, "log", "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmd.Flags().IntVarP(&logLevel, "logLevel", "v", 4,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")
}

// parseNames decodes the JSON mapping of catalog numbers to common names and
// validates the catalog numbers.
func parseNames(data []byte) (map[int]string, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(raw))
	for key, name := range raw {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("catalog number %q is not a number", key)
		}
		if n < 1 || n > 110 {
			return nil, fmt.Errorf("catalog number %d out of range", n)
		}
		if name == "" {
			return nil, fmt.Errorf("catalog number %d has an empty name", n)
		}
		names[n] = name
	}
	return names, nil
}

// initLog will enable JWW logging to the given log path with the given
// threshold. If log path is empty, then logging is not enabled. Panics if the
// log file cannot be opened or if the threshold is invalid.
func initLog(threshold jww.Threshold, logPath string) {
	if logPath == "" {
		// Do not enable logging if no log file is set
		return
	} else if logPath != "-" {
		// Set the log file if stdout is not selected

		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)

		// Use log file
		logOutput, err :=
			os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		panic("Invalid log threshold: " + strconv.Itoa(int(threshold)))
	}

	// Display microseconds if the threshold is set to TRACE or DEBUG
	if threshold == jww.LevelTrace || threshold == jww.LevelDebug {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	// Enable logging
	jww.SetStdoutThreshold(threshold)
	jww.SetLogThreshold(threshold)
	jww.INFO.Printf("Log level set to: %s", threshold)
}
