// Package cli provides the interactive Teebay command-line client.
//
// Every screen of the marketplace is a view controller from package views;
// the REPL resolves a path through the router, drives the controller and
// renders its state as text. Typical flow: restore the saved session, open
// the product list (or the login prompt when signed out) and execute user
// commands until exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the page handlers for details.
package cli
