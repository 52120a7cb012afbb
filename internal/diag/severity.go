package diag

// Severity ranks a diagnostic. Errors abort parsing and suppress output.
// Warnings flag input the parser accepts but a maintainer likely wants to
// hear about, such as duplicate object keys. Info is reserved for tooling
// chatter and never blocks anything.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the upper-case label used in rendered diagnostics.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	case SevInfo:
		return "INFO"
	}
	return "UNKNOWN"
}
