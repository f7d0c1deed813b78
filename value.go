package eircode

// Eircode is a normalised code split into its two parts.
type Eircode struct {
	RoutingKey string
	UID        string
}

// Parse normalises input and returns its parts.
func Parse(input string) (Eircode, error) {
	s, err := Normalise(input)
	if err != nil {
		return Eircode{}, err
	}
	rk, id, err := Split(s)
	if err != nil {
		return Eircode{}, err
	}
	return Eircode{RoutingKey: rk, UID: id}, nil
}

// String returns the canonical "RRR UUUU" form, or "" for the zero value.
func (e Eircode) String() string {
	if e.IsZero() {
		return ""
	}
	return e.RoutingKey + " " + e.UID
}

// IsZero reports whether e holds no code.
func (e Eircode) IsZero() bool {
	return e.RoutingKey == "" && e.UID == ""
}

func (e Eircode) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText accepts anything Parse accepts. Empty text yields the zero
// value.
func (e *Eircode) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*e = Eircode{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
