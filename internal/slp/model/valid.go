package model

import "fmt"

// Verdict is the tri-state outcome of token validation.
type Verdict string

const (
	VerdictValid   Verdict = "VALID"
	VerdictInvalid Verdict = "INVALID"
	VerdictUnknown Verdict = "UNKNOWN"
)

const notYetDetermined = "NOT YET DETERMINED"

// SlpValid is a verdict together with the reason it was reached.
type SlpValid struct {
	Verdict Verdict
	Reason  string
}

// ValidVerdict builds a VALID verdict.
func ValidVerdict(reason string) SlpValid {
	return SlpValid{Verdict: VerdictValid, Reason: reason}
}

// InvalidVerdict builds an INVALID verdict.
func InvalidVerdict(reason string) SlpValid {
	return SlpValid{Verdict: VerdictInvalid, Reason: reason}
}

// UnknownVerdict is the placeholder every token transaction is first stored with.
func UnknownVerdict() SlpValid {
	return SlpValid{Verdict: VerdictUnknown, Reason: notYetDetermined}
}

// IsUnknown reports whether no final decision has been made yet.
func (v SlpValid) IsUnknown() bool {
	return v.Verdict == VerdictUnknown || v.Verdict == ""
}

func (v SlpValid) String() string {
	return fmt.Sprintf("%s (%s)", v.Verdict, v.Reason)
}

// ParseVerdict converts a stored verdict string back into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch Verdict(s) {
	case VerdictValid, VerdictInvalid, VerdictUnknown:
		return Verdict(s), nil
	case "":
		return VerdictUnknown, nil
	default:
		return "", fmt.Errorf("unknown verdict %q", s)
	}
}
