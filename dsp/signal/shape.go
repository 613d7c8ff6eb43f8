package signal

import (
	"fmt"
	"strings"
)

// Shape selects the message waveform.
type Shape int

const (
	// Sine is a single cosine tone A·cos(2πft).
	Sine Shape = iota + 1
	// Square is a ±A square wave with 50% duty cycle.
	Square
	// Sawtooth is a rising ±A sawtooth.
	Sawtooth
	// DualTone is the fundamental plus its third harmonic, each at A/2.
	DualTone
)

var shapeNames = map[Shape]string{
	Sine:     "sine",
	Square:   "square",
	Sawtooth: "sawtooth",
	DualTone: "dual_tone",
}

// Shapes returns all supported shapes in declaration order.
func Shapes() []Shape {
	return []Shape{Sine, Square, Sawtooth, DualTone}
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// String returns the canonical lower-case name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// HighestHarmonic returns the highest multiple of the message frequency
// that carries energy the sample rate has to cover explicitly.
func (s Shape) HighestHarmonic() int {
	if s == DualTone {
		return 3
	}
	return 1
}

// ParseShape resolves a shape name. Matching ignores case, spaces, dashes
// and underscores, so "Dual Tone", "dual-tone" and "dual_tone" are equal.
func ParseShape(name string) (Shape, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case "sine", "sin":
		return Sine, nil
	case "square":
		return Square, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	case "dualtone", "dualtonemusic", "music":
		return DualTone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
