// Package views holds the page controllers of the Teebay CLI. A controller
// owns the state of one page (fetch status, form values, dialogs) and talks
// to the services; rendering is left to the caller. Controllers that finish
// with a navigation return the path to open next.
package views
