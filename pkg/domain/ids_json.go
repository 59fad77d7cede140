package domain

// Text marshalling so typed IDs serialize as canonical UUID strings in JSON
// payloads rather than as raw byte arrays.

func (id KeyID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id ClaimID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id UserID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }

func (id *KeyID) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ClaimID) UnmarshalText(text []byte) error {
	parsed, err := ParseClaimID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
