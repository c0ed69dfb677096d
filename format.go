package bigint

import (
	"fmt"

	"github.com/pkg/errors"
)

// Format implements fmt.Formatter. It accepts the same verbs and flags as
// big.Int: 'b', 'o', 'O', 'd', 'x', 'X', 's' and 'v', with '+', '#', '0',
// ' ', '-', width and precision.
func (x Int) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a decimal integer either as a JSON string or as a
// bare JSON number.
func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return errors.Wrap(ErrParse, "empty JSON")
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Wrapf(ErrParse, "invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
