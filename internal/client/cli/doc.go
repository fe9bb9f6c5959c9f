// Package cli provides the interactive SnapHire terminal client.
//
// It wires configuration, storage, the account and job services and a set of
// numbered menus. Typical flow: the main menu offers login, signup and quit;
// after login the user menu leads to the services menu (browse and post
// jobs), the support screen and the about screen.
//
// The menus are started via App.Run(ctx), which blocks until the user quits
// or the input ends.
package cli
