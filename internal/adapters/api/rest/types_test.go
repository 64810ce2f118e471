package rest

import (
	"encoding/json"
	"testing"
)

func scoreArgsValid(t *testing.T, raw string) bool {
	t.Helper()
	var args OnlineScoreRequest
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return false
	}
	return len(args.Validate()) == 0
}

func interestsArgsValid(t *testing.T, raw string) bool {
	t.Helper()
	var args ClientsInterestsRequest
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return false
	}
	return len(args.Validate()) == 0
}

func TestOnlineScoreRequestInvalid(t *testing.T) {
	type Case struct {
		Name string
		Args string
	}

	cases := []Case{
		{Name: "first_name not a string", Args: `{"first_name": 123, "last_name": "Doe"}`},
		{Name: "last_name not a string", Args: `{"first_name": "John", "last_name": []}`},
		{Name: "phone is null", Args: `{"phone": null, "email": "email@example.com"}`},
		{Name: "phone not a number", Args: `{"phone": "notaphonenumber", "email": "email@example.com"}`},
		{Name: "email without at", Args: `{"phone": "71234567890", "email": "invalidemail"}`},
		{Name: "birthday wrong format", Args: `{"birthday": "31-12-1999", "gender": 1}`},
		{Name: "birthday too old", Args: `{"birthday": "01.01.1800", "gender": 1}`},
		{Name: "gender out of range", Args: `{"gender": 3, "birthday": "01.01.1990"}`},
		{Name: "gender not a number", Args: `{"gender": "male", "birthday": "01.01.1990"}`},
		{Name: "email without at and names", Args: `{"email": "example.com", "first_name": "Test", "last_name": "User"}`},
		{Name: "phone too long", Args: `{"phone": "712345678901", "email": "email@example.com"}`},
		{Name: "phone wrong prefix", Args: `{"phone": "61234567890", "email": "email@example.com"}`},
		{Name: "no pairs", Args: `{}`},
		{Name: "incomplete pairs", Args: `{"phone": "71234567890", "first_name": "John", "gender": 1}`},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if scoreArgsValid(t, c.Args) {
				t.Errorf("arguments must be invalid: %s", c.Args)
			}
		})
	}
}

func TestOnlineScoreRequestValid(t *testing.T) {
	type Case struct {
		Name string
		Args string
	}

	cases := []Case{
		{Name: "phone and email", Args: `{"phone": "71234567890", "email": "email@example.com"}`},
		{Name: "phone as number", Args: `{"phone": 71234567890, "email": "email@example.com"}`},
		{Name: "names", Args: `{"first_name": "John", "last_name": "Doe"}`},
		{Name: "gender and birthday", Args: `{"gender": 1, "birthday": "01.01.1990"}`},
		{Name: "gender unknown and birthday", Args: `{"gender": 0, "birthday": "01.01.1990"}`},
		{Name: "full set", Args: `{"phone": "71234567890", "email": "a@b", "first_name": "John", "last_name": "Doe", "gender": 2, "birthday": "01.01.1990"}`},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if !scoreArgsValid(t, c.Args) {
				t.Errorf("arguments must be valid: %s", c.Args)
			}
		})
	}
}

func TestClientsInterestsRequestInvalid(t *testing.T) {
	type Case struct {
		Name string
		Args string
	}

	cases := []Case{
		{Name: "client_ids is null", Args: `{"client_ids": null, "date": "01.01.2020"}`},
		{Name: "client_ids is a string", Args: `{"client_ids": "1,2,3", "date": "01.01.2020"}`},
		{Name: "client_ids with null item", Args: `{"client_ids": [1, null, 3], "date": "01.01.2020"}`},
		{Name: "client_ids with string item", Args: `{"client_ids": [1, "2", 3], "date": "01.01.2020"}`},
		{Name: "date wrong format", Args: `{"client_ids": [1, 2, 3], "date": "2020-01-01"}`},
		{Name: "client_ids empty", Args: `{"client_ids": [], "date": "01.01.2020"}`},
		{Name: "client_ids missing", Args: `{"date": "01.01.2020"}`},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if interestsArgsValid(t, c.Args) {
				t.Errorf("arguments must be invalid: %s", c.Args)
			}
		})
	}
}

func TestClientsInterestsRequestValid(t *testing.T) {
	type Case struct {
		Name string
		Args string
	}

	cases := []Case{
		{Name: "ids with date", Args: `{"client_ids": [1, 2, 3], "date": "19.07.2017"}`},
		{Name: "ids without date", Args: `{"client_ids": [1, 2]}`},
		{Name: "single id", Args: `{"client_ids": [0]}`},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if !interestsArgsValid(t, c.Args) {
				t.Errorf("arguments must be valid: %s", c.Args)
			}
		})
	}
}

func TestMethodRequestValidate(t *testing.T) {
	type Case struct {
		Name  string
		Body  string
		Valid bool
	}

	cases := []Case{
		{
			Name:  "all required present",
			Body:  `{"account": "a", "login": "l", "token": "t", "arguments": {}, "method": "online_score"}`,
			Valid: true,
		},
		{
			Name:  "account optional",
			Body:  `{"login": "l", "token": "t", "arguments": {}, "method": "online_score"}`,
			Valid: true,
		},
		{
			Name:  "empty values allowed",
			Body:  `{"login": "", "token": "", "arguments": {}, "method": ""}`,
			Valid: true,
		},
		{
			Name:  "login missing",
			Body:  `{"token": "t", "arguments": {}, "method": "m"}`,
			Valid: false,
		},
		{
			Name:  "token missing",
			Body:  `{"login": "l", "arguments": {}, "method": "m"}`,
			Valid: false,
		},
		{
			Name:  "arguments missing",
			Body:  `{"login": "l", "token": "t", "method": "m"}`,
			Valid: false,
		},
		{
			Name:  "arguments null",
			Body:  `{"login": "l", "token": "t", "arguments": null, "method": "m"}`,
			Valid: false,
		},
		{
			Name:  "method missing",
			Body:  `{"login": "l", "token": "t", "arguments": {}}`,
			Valid: false,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			var req MethodRequest
			if err := json.Unmarshal([]byte(c.Body), &req); err != nil {
				t.Fatal(err)
			}
			errs := req.Validate()
			if c.Valid && len(errs) > 0 {
				t.Errorf("unexpected validation errors: %v", errs)
			}
			if !c.Valid && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}
