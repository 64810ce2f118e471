package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "02.01.2006"

	maxAgeYears = 70
	phoneLength = 11
	phonePrefix = '7'

	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// MethodRequest - конверт запроса POST /method.
// Указатели различают отсутствующее поле и пустое значение:
// login, token, arguments и method обязательны, account - нет.
type MethodRequest struct {
	Account   *string         `json:"account"`
	Login     *string         `json:"login"`
	Token     *string         `json:"token"`
	Arguments json.RawMessage `json:"arguments"`
	Method    *string         `json:"method"`
}

func (r *MethodRequest) Validate() []string {
	errs := []string{}
	if r.Login == nil {
		errs = append(errs, "'login' is required")
	}
	if r.Token == nil {
		errs = append(errs, "'token' is required")
	}
	if len(r.Arguments) == 0 || string(r.Arguments) == "null" {
		errs = append(errs, "'arguments' is required")
	}
	if r.Method == nil {
		errs = append(errs, "'method' is required")
	}

	return errs
}

func (r *MethodRequest) IsAdmin() bool {
	return r.Login != nil && *r.Login == adminLogin
}

// phoneField принимает строку или число, как исходный API.
type phoneField string

func (p *phoneField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = phoneField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*p = phoneField(n.String())
		return nil
	}

	return errors.New("'phone' must be a string or number")
}

func (p phoneField) validate() error {
	s := string(p)
	if s == "" {
		return nil
	}
	if len(s) != phoneLength {
		return fmt.Errorf("'phone' must be %d digits", phoneLength)
	}
	if s[0] != phonePrefix {
		return fmt.Errorf("'phone' must start with '%c'", phonePrefix)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return errors.New("'phone' must contain only digits")
		}
	}

	return nil
}

// dateField - дата в формате DD.MM.YYYY.
type dateField struct {
	time.Time
}

func (d *dateField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("date must be a string")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.New("date must be in format 'DD.MM.YYYY'")
	}
	d.Time = t

	return nil
}

type OnlineScoreRequest struct {
	FirstName *string     `json:"first_name"`
	LastName  *string     `json:"last_name"`
	Email     *string     `json:"email"`
	Phone     *phoneField `json:"phone"`
	Birthday  *dateField  `json:"birthday"`
	Gender    *int        `json:"gender"`
}

func (r *OnlineScoreRequest) Validate() []string {
	errs := []string{}
	if r.Email != nil && *r.Email != "" && !strings.Contains(*r.Email, "@") {
		errs = append(errs, "'email' must contain '@'")
	}
	if r.Phone != nil {
		if err := r.Phone.validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if r.Birthday != nil {
		if age := yearsSince(r.Birthday.Time); age > maxAgeYears {
			errs = append(errs, fmt.Sprintf("'birthday' must be less than or equal to %d years old", maxAgeYears))
		}
	}
	if r.Gender != nil && (*r.Gender < GenderUnknown || *r.Gender > GenderFemale) {
		errs = append(errs, "'gender' must be 0, 1, or 2")
	}

	pairs := [][2]bool{
		{r.Phone != nil, r.Email != nil},
		{r.FirstName != nil, r.LastName != nil},
		{r.Gender != nil, r.Birthday != nil},
	}
	hasPair := false
	for _, pair := range pairs {
		if pair[0] && pair[1] {
			hasPair = true
			break
		}
	}
	if !hasPair {
		errs = append(errs, "at least one pair of fields must be provided: "+
			"phone and email, first_name and last_name, or gender and birthday")
	}

	return errs
}

// Provided возвращает имена заполненных полей, пишется в лог запроса.
func (r *OnlineScoreRequest) Provided() []string {
	has := []string{}
	if r.FirstName != nil {
		has = append(has, "first_name")
	}
	if r.LastName != nil {
		has = append(has, "last_name")
	}
	if r.Email != nil {
		has = append(has, "email")
	}
	if r.Phone != nil {
		has = append(has, "phone")
	}
	if r.Birthday != nil {
		has = append(has, "birthday")
	}
	if r.Gender != nil {
		has = append(has, "gender")
	}

	return has
}

// clientIDsField - непустой список целых, null внутри списка недопустим.
type clientIDsField []int

func (c *clientIDsField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var vals []*int
	if err := json.Unmarshal(b, &vals); err != nil {
		return errors.New("'client_ids' must be a list of integers")
	}
	ids := make([]int, 0, len(vals))
	for _, v := range vals {
		if v == nil {
			return errors.New("each item in 'client_ids' must be an integer")
		}
		ids = append(ids, *v)
	}
	*c = ids

	return nil
}

type ClientsInterestsRequest struct {
	ClientIDs clientIDsField `json:"client_ids"`
	Date      *dateField     `json:"date"`
}

func (r *ClientsInterestsRequest) Validate() []string {
	errs := []string{}
	if len(r.ClientIDs) == 0 {
		errs = append(errs, "'client_ids' is required and cannot be empty")
	}

	return errs
}

func yearsSince(t time.Time) int {
	return int(time.Since(t).Hours() / 24 / 365)
}
