// Package buffer provides the line-oriented text buffer edited by chord.
//
// A Buffer is an ordered list of lines. It always holds at least one
// line, so an empty document is a single empty line. Columns are byte
// offsets into a line and range over [0, LineLen(row)], one past the end
// being a valid insertion point.
//
// Basic usage:
//
//	buf := buffer.New()
//	_ = buf.Insert(0, 0, "hello world")
//	_ = buf.Split(0, 5)     // "hello", " world"
//	_ = buf.JoinNext(0)     // "hello world"
//
// Buffers are owned by the editor loop and are not safe for concurrent use.
//
// Persistence is plain newline-delimited text: Load splits on line
// boundaries, Save joins the lines with "\n" and adds nothing else.
package buffer
