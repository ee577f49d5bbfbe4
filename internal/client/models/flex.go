package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes integers the upstream API sometimes sends as strings
// ("1"), as numbers (1), or as null/"" (0).
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil {
			return fmt.Errorf("flexint: cannot decode %s", string(b))
		}
		n = int64(fl)
	}
	*f = FlexInt(n)
	return nil
}

// Bool reports a non-zero value, the API's convention for flags.
func (f FlexInt) Bool() bool { return f != 0 }
