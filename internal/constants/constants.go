package constants

// DefaultDocument is the store name used when neither --doc nor saved state
// names a document.
const DefaultDocument = "draft"

// ContinuedMark is shown in the status bar when text runs past the last column.
const ContinuedMark = "続く"
