package am

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned for modulation modes outside the declared set.
	ErrUnknownMode = errors.New("unknown modulation mode")
	// ErrUnknownDemodMode is returned for receiver modes outside the declared set.
	ErrUnknownDemodMode = errors.New("unknown demodulation mode")
)

// Mode selects the transmitted AM variant.
type Mode int

const (
	// DSBFC transmits the carrier together with both sidebands.
	DSBFC Mode = iota + 1
	// DSBSC suppresses the carrier and transmits only the sidebands.
	DSBSC
)

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool { return m == DSBFC || m == DSBSC }

func (m Mode) String() string {
	switch m {
	case DSBFC:
		return "DSB-FC"
	case DSBSC:
		return "DSB-SC"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves "DSB-FC", "dsb_sc", "full carrier" and similar names.
func ParseMode(name string) (Mode, error) {
	switch normalize(name) {
	case "dsbfc", "fc", "fullcarrier":
		return DSBFC, nil
	case "dsbsc", "sc", "suppressedcarrier":
		return DSBSC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DemodMode selects the receiver.
type DemodMode int

const (
	// Envelope rectifies and lowpass filters; valid for DSB-FC only.
	Envelope DemodMode = iota + 1
	// Coherent mixes with a local oscillator at the carrier frequency.
	Coherent
)

// Valid reports whether d is a declared receiver.
func (d DemodMode) Valid() bool { return d == Envelope || d == Coherent }

func (d DemodMode) String() string {
	switch d {
	case Envelope:
		return "envelope"
	case Coherent:
		return "coherent"
	default:
		return fmt.Sprintf("DemodMode(%d)", int(d))
	}
}

// ParseDemodMode resolves a receiver name, ignoring case and separators.
func ParseDemodMode(name string) (DemodMode, error) {
	switch normalize(name) {
	case "envelope", "env", "envelopedetector":
		return Envelope, nil
	case "coherent", "coh", "synchronous", "coherentdetector":
		return Coherent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDemodMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (d DemodMode) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDemodMode, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DemodMode) UnmarshalText(text []byte) error {
	v, err := ParseDemodMode(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func normalize(name string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}
