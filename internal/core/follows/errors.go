package follows

import "errors"

// ErrNotFollowing is returned when unfollowing an author the user does
// not follow
var ErrNotFollowing = errors.New("not following this author")
