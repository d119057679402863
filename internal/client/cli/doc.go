// Package cli provides the medianest command-line client.
//
// It wires configuration, logging, the media store client, the gallery
// state and the sync services, then exposes them as cobra subcommands and
// as an interactive shell. Running the binary without a subcommand starts
// the shell, which loads the gallery and accepts commands until the user
// exits.
//
// Commands:
//   - list / refresh / retry: show or reload the gallery
//   - upload <path>, capture: add an image from disk or from the camera
//   - show <id>, download <id>: inspect or save one image
//   - delete <id>: remove an image after entering the delete PIN
//   - support: print how to request the delete PIN
//
// See NewRootCommand, App and runREPL for details.
package cli
