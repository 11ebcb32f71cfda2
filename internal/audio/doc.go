// Package audio plays the alarm tone.
//
// Tone owns the playback lifecycle: it loads a WAV file (or synthesises a
// beep), hands the samples to a Backend that loops them, and stops the
// playback on its own once the configured duration has passed. Fetch installs
// a tone downloaded from a URL, verifying its SHA-512 checksum.
package audio
