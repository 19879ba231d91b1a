package books

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the catalog the shop starts with when no books file is
// configured.
func DefaultSeed() []models.Book {
	return []models.Book{
		{
			ISBN:    "9780143127741",
			Title:   "Sapiens: A Brief History of Humankind",
			Author:  "Yuval Noah Harari",
			Reviews: map[string]string{"alice": "Eye-opening!"},
		},
		{
			ISBN:    "9780131103627",
			Title:   "The C Programming Language",
			Author:  "Brian W. Kernighan",
			Reviews: map[string]string{},
		},
		{
			ISBN:    "9780262033848",
			Title:   "Introduction to Algorithms",
			Author:  "Thomas H. Cormen",
			Reviews: map[string]string{},
		},
	}
}

type seedFile struct {
	Books []models.Book `json:"books" yaml:"books"`
}

// LoadSeedFile reads a catalog from a YAML file, or a JSON file when the
// extension is .json, of the form:
//
//	books:
//	  - isbn: "9780262033848"
//	    title: Introduction to Algorithms
//	    author: Thomas H. Cormen
func LoadSeedFile(path string) ([]models.Book, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open books file: %w", err)
	}
	defer file.Close()

	var sf seedFile
	if filepath.Ext(path) == ".json" {
		err = json.NewDecoder(file).Decode(&sf)
	} else {
		err = yaml.NewDecoder(file).Decode(&sf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode books file %s: %w", path, err)
	}

	for i, b := range sf.Books {
		if err := validateBook(b); err != nil {
			return nil, fmt.Errorf("invalid book #%d in %s: %w", i, path, err)
		}
	}

	return sf.Books, nil
}

func validateBook(b models.Book) error {
	if b.ISBN == "" {
		return errors.New("isbn is required")
	}
	if b.Title == "" {
		return errors.New("title is required")
	}
	if b.Author == "" {
		return errors.New("author is required")
	}
	return nil
}
