package view

// FlashKind doubles as the CSS modifier on the flash banner
// (flash-success, flash-error, ...).
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is the one-shot banner carried across a redirect in a signed
// cookie and shown exactly once on the next page.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}
