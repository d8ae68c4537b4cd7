// Package output implements the console's output buffer: an ordered log of colored
// spans that results, errors and prompt echoes are appended to.
//
// The buffer is not safe for concurrent use; the frontend that owns it serializes access.
package output
