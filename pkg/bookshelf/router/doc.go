// Package router runs the book list and book detail screens and applies
// their results to a session.
//
// Each screen has explicit input and result types, and a single transition
// step in Router.Run decides where to go next. Screens never navigate on their
// own: they report what the user did and the router moves the session.
//
// # Basic Usage
//
//	sess := session.New(catalog.Default())
//
//	r := router.New(sess, screens) // screens implements router.Screens
//	if err := r.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resume State
//
// When the list hands off to the detail screen it returns resume state (the
// selected row and scroll position). The router keeps it on a stack and
// passes it back in BookListInput.Resume when the user returns, so the list
// comes back where it was left.
package router
