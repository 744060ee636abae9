package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/zerr"
)

// packageFields are the record keys that are decoded. Keys match exactly.
var packageFields = []string{"name", "version", "id", "manifest_path"}

// Decode parses raw cargo metadata output.
//
// Keys are matched case-sensitively and unknown keys are ignored. A decoded key
// that appears twice in one object is rejected. The returned error is a
// *domain.ResolveError of kind domain.ErrOutputDecode or domain.ErrSchemaParse.
func Decode(raw []byte) (*domain.Metadata, error) {
	if !utf8.Valid(raw) {
		return nil, domain.NewResolveError(domain.ErrOutputDecode, "",
			zerr.With(zerr.New("invalid UTF-8 sequence"), "bytes", len(raw)))
	}

	top, err := decodeObject(raw, []string{"packages"}, true)
	if err != nil {
		return nil, schemaError(err)
	}

	packages, ok := top["packages"]
	if !ok || isNull(packages) {
		return nil, schemaError(zerr.With(zerr.New("missing required field"), "field", "packages"))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(packages, &records); err != nil {
		return nil, schemaError(zerr.With(zerr.Wrap(err, "packages is not an array"), "field", "packages"))
	}

	pkgs := make([]domain.Package, 0, len(records))
	for i, record := range records {
		pkg, err := decodePackage(record)
		if err != nil {
			return nil, schemaError(zerr.With(err, "index", i))
		}
		pkgs = append(pkgs, pkg)
	}

	return &domain.Metadata{
		Packages: pkgs,
		Digest:   xxhash.Sum64(raw),
	}, nil
}

func decodePackage(record json.RawMessage) (domain.Package, error) {
	obj, err := decodeObject(record, packageFields, false)
	if err != nil {
		return domain.Package{}, err
	}

	values := make(map[string]string, len(packageFields))
	for _, field := range packageFields {
		value, ok := obj[field]
		if !ok || isNull(value) {
			return domain.Package{}, zerr.With(zerr.New("missing required package field"), "field", field)
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return domain.Package{}, zerr.With(zerr.Wrap(err, "package field is not a string"), "field", field)
		}
		values[field] = s
	}

	return domain.Package{
		Name:         values["name"],
		Version:      values["version"],
		ID:           values["id"],
		ManifestPath: values["manifest_path"],
	}, nil
}

// decodeObject reads a JSON object and returns the raw values of the keys in
// fields. Other keys are skipped. A key from fields that occurs twice is an
// error. When whole is set, anything after the object other than whitespace is
// an error.
func decodeObject(data []byte, fields []string, whole bool) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse metadata JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.New("expected a JSON object")
	}

	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	obj := make(map[string]json.RawMessage, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse metadata JSON")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, zerr.New("expected an object key")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, zerr.Wrap(err, "failed to parse metadata JSON")
		}
		if !wanted[key] {
			continue
		}
		if _, dup := obj[key]; dup {
			return nil, zerr.With(zerr.New("duplicate field"), "field", key)
		}
		obj[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, zerr.Wrap(err, "failed to parse metadata JSON")
	}

	if whole {
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, zerr.New("unexpected data after metadata object")
		}
	}

	return obj, nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func schemaError(err error) error {
	return domain.NewResolveError(domain.ErrSchemaParse, "", err)
}
