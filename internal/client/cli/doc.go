// Package cli is the interactive terminal front end of the rockside client.
//
// It walks the four screens of the questionnaire app (Welcome, Sign In,
// Sign Up, Home) as a read–eval–print loop. Each screen has its own command
// set; help, back and exit|quit work everywhere. All prompts, including the
// ones raised by the device collaborators, share the App's input reader.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
