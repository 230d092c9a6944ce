package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

func main() {
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	err = os.WriteFile("currency_data.go", code, 0o644) //nolint:gosec
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToCurrencies sorts the records by code and rejects duplicate codes
// and exponents that the money package cannot represent.
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	currs := make([]currency, 0, len(data))
	for i, rec := range data {
		if i > 0 && rec[1] == data[i-1][1] {
			return nil, fmt.Errorf("duplicate code %q", rec[1])
		}
		scale, err := strconv.Atoi(rec[3])
		if err != nil || scale < 0 || scale > 19 {
			return nil, fmt.Errorf("code %q: invalid scale %q", rec[1], rec[3])
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: scale,
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}
	return format.Source(output.Bytes())
}
