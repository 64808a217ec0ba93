package model

// TagInfo describes an existing git tag, used to explain why a release
// cannot be re-tagged.
type TagInfo struct {
	Name      string
	Commit    string
	CreatedAt string // commit date as reported by git
}
