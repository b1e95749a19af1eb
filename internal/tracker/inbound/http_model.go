package inbound

import "encoding/json"

// looseValue captures a JSON scalar as its text form, tolerating both quoted
// strings and bare numbers. Non-scalar values (null, objects, arrays,
// booleans) decode as empty, which downstream validation reports as a missing
// field rather than a malformed body.
type looseValue string

func (v *looseValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = looseValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = looseValue(n.String())
		return nil
	}

	*v = ""
	return nil
}

type CreateUserRequest struct {
	Username looseValue `json:"username"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AddExerciseRequest struct {
	Description looseValue `json:"description"`
	Duration    looseValue `json:"duration"`
	Date        looseValue `json:"date"`
}

type AddExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type UserLogResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int64              `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}
