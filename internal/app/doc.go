// Package app provides the application context for vlsm-ctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Paths  *config.Paths  // File system paths
//	    Config *config.Config // User configuration
//	    Out    io.Writer      // Report destination
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	var buf bytes.Buffer
//	a := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithConfig(testConfig),
//	    app.WithOutput(&buf),
//	)
//
// # Allocating
//
// Allocate runs a request and classifies failures with exit codes. Render
// prints the report in the requested or configured format and Export writes
// it to a file.
package app
