package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseID(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

type sampleRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"correo" validate:"required,email"`
	Role  string `json:"rol" validate:"omitempty,oneof=admin supervisor"`
	Skip  string `json:"-"`
}

func TestStruct(t *testing.T) {
	err := Struct(sampleRequest{Email: "bad", Role: "owner"}, map[string]string{
		"nombre": "El nombre es obligatorio",
	})

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct() error = %v, want ValidationErrors", err)
	}

	got := errs.ToMap()
	want := map[string]string{
		"nombre": "El nombre es obligatorio",
		"correo": "correo debe ser un correo válido",
		"rol":    "rol debe ser uno de: admin supervisor",
	}
	if len(got) != len(want) {
		t.Fatalf("Struct() = %v, want %v", got, want)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("Struct()[%q] = %q, want %q", field, got[field], msg)
		}
	}
	if errs.First() != "El nombre es obligatorio" {
		t.Errorf("First() = %q", errs.First())
	}
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleRequest{Name: "Ana", Email: "ana@fundo.cl"}, nil)
	if err != nil {
		t.Errorf("Struct() error = %v, want nil", err)
	}
}
