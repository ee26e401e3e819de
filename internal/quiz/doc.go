// Package quiz generates music-theory questions, grades answers and runs
// ten-question sessions as explicit state transitions.
//
// A session is a value. Start, Answer and Advance each take the current
// Session and return the next one. Surfaces that delay the move to the next
// question (the TUI shows feedback for a moment) schedule Advance with the
// session's AdvanceToken; a token from an earlier quiz or question is
// ignored, so a restart can never be overtaken by an old timer.
package quiz
