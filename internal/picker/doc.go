// Package picker supplies the alarm time and pause settings chosen by the user.
//
// Static wraps values given on the command line. Form is a terminal form with
// scrollable hour and minute carousels and a radio choice of pause mode.
package picker
