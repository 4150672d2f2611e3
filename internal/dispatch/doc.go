// Package dispatch owns the daemon's message queue semantics: the closed set
// of messages the two producers emit, and the single consumer that translates
// them into compositor commands.
//
// The dispatcher exclusively owns the mutable active-workspace value and the
// immutable x-sorted monitor id list; no other unit reads or writes them.
// Compositor access goes through the Compositor interface so tests can
// substitute a recording fake.
package dispatch
