package helpers

import (
	"crypto/rand"
	"strings"

	"github.com/pkg/errors"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// joinCodeLimit is the largest multiple of the alphabet size below 256.
// Random bytes at or above it are discarded so every character stays
// equally likely.
const joinCodeLimit = byte(256 / len(joinCodeAlphabet) * len(joinCodeAlphabet))

// GenerateJoinCode returns an 8-char uppercase code suitable for manual entry.
func GenerateJoinCode() (string, error) {
	code := make([]byte, 0, 8)
	buf := make([]byte, 16)
	for len(code) < cap(code) {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "join code generation failed")
		}
		for _, b := range buf {
			if b >= joinCodeLimit {
				continue
			}
			code = append(code, joinCodeAlphabet[int(b)%len(joinCodeAlphabet)])
			if len(code) == cap(code) {
				break
			}
		}
	}
	return string(code), nil
}

// SafeFileName strips path separators from a client-supplied file name.
func SafeFileName(name string) string {
	if name == "" {
		return "file"
	}
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}

// FileExt returns the extension without the dot, empty when there is none.
func FileExt(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
