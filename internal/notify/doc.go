// Package notify delivers alarm notifications to the user.
//
// Desktop uses the notification tool of the host OS, Log writes to the
// application log and Nop discards everything. Select picks one by name and
// degrades to Nop when the requested sink cannot work on this host.
package notify
