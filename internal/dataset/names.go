package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

var (
	//go:embed data/firstnames.txt
	defaultFirstNames []byte
	//go:embed data/surnames.txt
	defaultLastNames []byte
)

// NameHelper builds random "First Last" driver names.
type NameHelper struct {
	First []string `json:"first"`
	Last  []string `json:"last"`
}

// DefaultNames returns the built-in name lists.
func DefaultNames() NameHelper {
	return NameHelper{First: parseNames(defaultFirstNames), Last: parseNames(defaultLastNames)}
}

// LoadNames reads newline-separated first and last name files. An empty path
// keeps the built-in list for that half.
func LoadNames(firstPath, lastPath string) (NameHelper, error) {
	n := DefaultNames()

	var err error
	if firstPath != "" {
		if n.First, err = readNameFile(firstPath); err != nil {
			return NameHelper{}, err
		}
	}
	if lastPath != "" {
		if n.Last, err = readNameFile(lastPath); err != nil {
			return NameHelper{}, err
		}
	}

	if err := n.Validate(); err != nil {
		return NameHelper{}, err
	}
	return n, nil
}

func readNameFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names %q: %w", path, err)
	}
	return parseNames(b), nil
}

func parseNames(b []byte) []string {
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func (n NameHelper) Validate() error {
	if len(n.First) == 0 || len(n.Last) == 0 {
		return errors.New("name helper: first and last name lists must not be empty")
	}
	return nil
}

func (n NameHelper) GenerateName(rng *rand.Rand) string {
	return n.First[rng.Intn(len(n.First))] + " " + n.Last[rng.Intn(len(n.Last))]
}
