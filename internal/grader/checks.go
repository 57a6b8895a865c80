package grader

import (
	"errors"
	"grader/pkg/domain"
	"grader/pkg/serrors"
	"os"

	"github.com/go-faster/jx"
)

// IsLocalFile reports whether path names an existing file that is not a
// directory.
func IsLocalFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// RequireChecksFile fails with ErrChecksFileMissing unless path is a local
// file. The message mentions a URL fallback that is never attempted for the
// checks file.
func RequireChecksFile(path string) error {
	if !IsLocalFile(path) {
		return serrors.With(ErrChecksFileMissing, "%s does not exist as local file, checking as URL", path)
	}

	return nil
}

// LoadChecks reads the checks file at path and parses it with ParseChecks.
func LoadChecks(path string) ([]domain.Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(ErrChecksUnreadable, err, "could not read checks file")
	}

	checks, err := ParseChecks(data)
	if err != nil {
		return nil, serrors.Wrap(ErrChecksInvalid, err, "%s", path)
	}

	return checks, nil
}

// ParseChecks decodes a JSON array of selector strings. Order and duplicates
// are kept as found.
func ParseChecks(data []byte) ([]domain.Check, error) {
	if err := jx.DecodeBytes(data).Validate(); err != nil {
		return nil, serrors.Wrap(ErrChecksInvalid, err, "invalid JSON")
	}

	d := jx.DecodeBytes(data)
	if d.Next() != jx.Array {
		return nil, serrors.With(ErrChecksInvalid, "checks must be a JSON array of selectors")
	}

	checks := make([]domain.Check, 0)
	if err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.String {
			return errors.New("checks must contain only strings")
		}
		s, err := d.Str()
		if err != nil {
			return err
		}
		checks = append(checks, domain.Check(s))

		return nil
	}); err != nil {
		return nil, serrors.Wrap(ErrChecksInvalid, err, "could not parse checks")
	}

	return checks, nil
}
