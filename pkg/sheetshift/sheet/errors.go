package sheet

import "errors"

// ErrKeyCollision indicates that repositioning moved an entry onto a key
// already held by another entry. The collection is left partially updated.
var ErrKeyCollision = errors.New("repositioned entry collides with an existing key")

// ErrDuplicate indicates an Add for a key that is already present.
var ErrDuplicate = errors.New("entry already exists")

// ErrWorksheetDeleted indicates a structural edit on a deleted worksheet.
var ErrWorksheetDeleted = errors.New("worksheet has been deleted")
