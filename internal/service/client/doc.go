// Package client implements the alarm-set, alarm-cancel and alarm-status
// commands.
//
// Each command connects to the alarm daemon, performs one request and prints
// the resulting alarm status. Arm gets the alarm time from the command line or
// from the terminal picker and can export the armed alarm as an iCalendar file.
package client
