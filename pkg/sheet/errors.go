package sheet

import (
	"errors"
	"fmt"
)

// ErrDetachedAnchor means a sharded Tag would be anchored after a style
// element that is no longer in the document. The document was mutated
// out from under the engine; sheet state is left untouched.
var ErrDetachedAnchor = errors.New("anchor style tag is not in the document")

// ErrNoBackingSheet means a created style element has no reachable
// CSSStyleSheet, neither by direct reference nor by scanning the
// document's sheet list. Correct DOM semantics make this impossible,
// so it signals a broken or unsupported host environment.
var ErrNoBackingSheet = errors.New("style tag has no backing stylesheet")

func detachedAnchorError(production bool) error {
	if production {
		return ErrDetachedAnchor
	}
	return fmt.Errorf("%w: an earlier style tag created by this sheet was removed "+
		"from the document, so a new tag cannot be anchored after it; do not "+
		"unmount the engine's style tags while the sheet is live", ErrDetachedAnchor)
}

func noBackingSheetError(production bool) error {
	if production {
		return ErrNoBackingSheet
	}
	return fmt.Errorf("%w: the created style element exposes no sheet object and "+
		"none of document.styleSheets is owned by it; the host document does not "+
		"implement the CSSOM this engine requires", ErrNoBackingSheet)
}
