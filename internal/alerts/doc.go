// Package alerts manages modal dialogs and toast notifications for Bubble Tea
// programs.
//
// A host model owns one Manager, forwards every message to Manager.Update and
// draws its own screen through Manager.View. Each dialog call returns a
// Pending result that settles exactly once, when the dialog's dismissal
// animation completes; the same result is also delivered to the host as a
// DialogClosedMsg.
//
// All Manager state lives on the Bubble Tea event loop. Dismissal first removes
// a record from its active set; a timer, key press or click that finds the
// record gone does nothing. Use Remote to open widgets from other goroutines.
package alerts
