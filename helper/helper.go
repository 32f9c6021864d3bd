package helper

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"cinecircle-backend/models"
)

// LoadSampleCatalog reads the bundled sample-movie CSV and returns the
// built-in catalog served when no search has run yet.
func LoadSampleCatalog(path string) ([]models.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"id", "title", "year", "genre", "director", "poster"} {
		if _, ok := columns[required]; !ok {
			return nil, errors.New("column " + required + " not found in catalog CSV")
		}
	}

	var catalog []models.Movie
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		id, err := strconv.ParseInt(row[columns["id"]], 10, 64)
		if err != nil {
			continue // malformed rows are skipped, not fatal
		}
		year, err := strconv.Atoi(row[columns["year"]])
		if err != nil {
			year = 0
		}

		catalog = append(catalog, models.Movie{
			ID:       id,
			Title:    row[columns["title"]],
			Year:     year,
			Genre:    row[columns["genre"]],
			Director: row[columns["director"]],
			Poster:   row[columns["poster"]],
		})
	}

	return catalog, nil
}
