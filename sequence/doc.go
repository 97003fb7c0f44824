// Package sequence quantizes onsets to a beat grid and lays them out as a
// sequence of hit and rest events.
package sequence
