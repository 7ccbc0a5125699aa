package account

import "errors"

var (
	// ErrMissingField means one of number, first name, last name or PIN is empty.
	ErrMissingField = errors.New("account number, name and PIN are required")

	// ErrBadPIN means the PIN is not exactly four digits.
	ErrBadPIN = errors.New("PIN must be exactly 4 digits")
)

// Status messages returned by account operations. Callers compare against
// these to branch on the outcome.
const (
	MsgLocked          = "Račun je zaključan!"
	MsgInvalidAmount   = "Iznos mora biti veći od nule."
	MsgInsufficient    = "Nedovoljno sredstava!"
	MsgAlreadyLocked   = "Račun je već zaključan."
	MsgLockOK          = "Račun je zaključan."
	MsgAlreadyUnlocked = "Račun je već otključan."
	MsgUnlockOK        = "Račun je uspešno otključan."
	MsgWrongPIN        = "Neispravan PIN! Pokušaj ponovo."

	MsgMissingField = "Molimo unesite sve podatke, uključujući PIN."
	MsgBadPIN       = "PIN mora imati 4 cifre."
)

// Message returns the display text for a construction error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return MsgMissingField
	case errors.Is(err, ErrBadPIN):
		return MsgBadPIN
	default:
		return err.Error()
	}
}

// Descriptions of notice and attempt records.
const (
	NoteLocked    = "Račun zaključan."
	NoteUnlocked  = "Račun uspešno otključan."
	NoteBadPIN    = "Neispravan PIN pri otključavanju."
	DefaultIncome = "Uplata"
	DefaultSpend  = "Isplata"
)
