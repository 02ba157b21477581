package models

// NoticeKind classifies a user-visible notice.
type NoticeKind int

const (
	// NoticeNone means there is nothing to show.
	NoticeNone NoticeKind = iota
	// NoticeSuccess confirms a completed user action.
	NoticeSuccess
	// NoticeFailure reports that a user action did not complete.
	NoticeFailure
	// NoticeInfo is purely informational, such as the build details.
	NoticeInfo
)

// Notice is a blocking message shown to the user after an action, the
// terminal counterpart of a browser alert.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether n carries nothing to display.
func (n Notice) Empty() bool {
	return n.Kind == NoticeNone
}
