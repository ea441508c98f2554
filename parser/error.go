package parser

import "errors"

// ErrDeadlineExceeded is wrapped into the error Parse returns when
// Config.Deadline passes before the input is fully consumed. The memo.Table
// returned alongside it holds every match found up to that point and
// remains usable by the query package, just incomplete for positions not
// yet reached.
var ErrDeadlineExceeded = errors.New("parser: deadline exceeded")
